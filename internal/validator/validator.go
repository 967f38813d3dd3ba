// Package validator holds the pure request validation rules. Functions here
// have no side effects and report failures as *apierror.APIError values so
// handlers can return them directly.
package validator

import (
	"regexp"

	"go-identity-service/pkg/apierror"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateSignup checks fields in a fixed order: password mismatch, then
// password length, then email format. The first failure wins.
func ValidateSignup(name string, email string, password string, confirm string) error {
	if password != confirm {
		return apierror.BadRequest("PASSWORD_MISMATCH", "passwords do not match", "")
	}

	if len(password) < 8 {
		return apierror.BadRequest("PASSWORD_TOO_SHORT", "password must be at least 8 characters", "password")
	}

	if !ValidateEmail(email) {
		return apierror.BadRequest("INVALID_EMAIL", "invalid email format", "email")
	}

	return nil
}

func ValidateLogin(email string, password string) error {
	if email == "" || password == "" {
		return apierror.BadRequest("MISSING_FIELD", "email and password are required", "")
	}

	if !ValidateEmail(email) {
		return apierror.BadRequest("INVALID_EMAIL", "invalid email format", "email")
	}

	return nil
}

func ValidateProfileCreate(fullname string, phonenumber string) error {
	if len(fullname) < 5 {
		return apierror.BadRequest("INVALID_FULLNAME", "full name must be at least 5 characters", "fullname")
	}

	if len(phonenumber) != 10 {
		return apierror.BadRequest("INVALID_PHONENUMBER", "phone number must be 10 characters long", "phonenumber")
	}

	return nil
}
