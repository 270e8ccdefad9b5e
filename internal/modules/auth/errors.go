package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidResetCode   = errors.New("invalid or expired reset code")
	ErrWrongPassword      = errors.New("current password is incorrect")
)
