package validator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-identity-service/pkg/apierror"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"jane@example.com",
		"jane.doe+tag@example.co.uk",
		"j_d%42@mail-host.io",
	}
	for _, email := range valid {
		require.True(t, ValidateEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"janeexample.com",
		"jane@example",
		"jane@example.c",
		"@example.com",
		"jane@.com",
		"jane@exam ple.com",
	}
	for _, email := range invalid {
		require.False(t, ValidateEmail(email), "expected %q to be invalid", email)
	}
}

func TestValidateSignup(t *testing.T) {
	t.Parallel()

	t.Run("password mismatch checked first", func(t *testing.T) {
		// Everything else is invalid too; mismatch must still win.
		err := ValidateSignup("Jane", "not-an-email", "short", "different")
		requireCode(t, err, "PASSWORD_MISMATCH")
	})

	t.Run("short password", func(t *testing.T) {
		err := ValidateSignup("Jane", "jane@example.com", "seven77", "seven77")
		requireCode(t, err, "PASSWORD_TOO_SHORT")
	})

	t.Run("eight characters passes the length check", func(t *testing.T) {
		err := ValidateSignup("Jane", "jane@example.com", "eight888", "eight888")
		require.NoError(t, err)
	})

	t.Run("invalid email checked last", func(t *testing.T) {
		err := ValidateSignup("Jane", "not-an-email", "longpass1", "longpass1")
		requireCode(t, err, "INVALID_EMAIL")
	})

	t.Run("valid input", func(t *testing.T) {
		require.NoError(t, ValidateSignup("Jane Doe", "jane@example.com", "longpass1", "longpass1"))
	})
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	t.Run("missing email", func(t *testing.T) {
		requireCode(t, ValidateLogin("", "secret123"), "MISSING_FIELD")
	})

	t.Run("missing password", func(t *testing.T) {
		requireCode(t, ValidateLogin("jane@example.com", ""), "MISSING_FIELD")
	})

	t.Run("malformed email", func(t *testing.T) {
		requireCode(t, ValidateLogin("jane@example", "secret123"), "INVALID_EMAIL")
	})

	t.Run("valid input", func(t *testing.T) {
		require.NoError(t, ValidateLogin("jane@example.com", "secret123"))
	})
}

func TestValidateProfileCreate(t *testing.T) {
	t.Parallel()

	t.Run("fullname too short", func(t *testing.T) {
		requireCode(t, ValidateProfileCreate("Jane", "5551234567"), "INVALID_FULLNAME")
	})

	t.Run("phone number wrong length", func(t *testing.T) {
		requireCode(t, ValidateProfileCreate("Jane Doe", "555123"), "INVALID_PHONENUMBER")
	})

	t.Run("valid input", func(t *testing.T) {
		require.NoError(t, ValidateProfileCreate("Jane Doe", "5551234567"))
	})
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	apiErr, ok := err.(*apierror.APIError)
	require.True(t, ok, "expected *apierror.APIError, got %T", err)
	require.Equal(t, code, apiErr.Code)
	require.Equal(t, 400, apiErr.HTTPStatus)
}
