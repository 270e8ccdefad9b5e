package visitor

import "errors"

var (
	ErrNotFound       = errors.New("visitor not found")
	ErrInvalidRequest = errors.New("invalid visitor data")
)
