package settings

import "errors"

var (
	ErrNotFound       = errors.New("setting not found")
	ErrInvalidRequest = errors.New("invalid settings data")
)
