package booking

import "errors"

var (
	ErrNotFound       = errors.New("enquiry booking not found")
	ErrInvalidRequest = errors.New("invalid enquiry data")
	ErrInvalidStatus  = errors.New("invalid enquiry status filter")
)
