package model

import "errors"

var (
	// User related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token related errors
	ErrTokenSigning = errors.New("token signing failed")
	ErrTokenInvalid = errors.New("invalid token")

	// Profile related errors
	ErrMissingUserID   = errors.New("missing user id")
	ErrNoUpdateFields  = errors.New("no update fields provided")
	ErrProfileNotFound = errors.New("profile not found")
)
