package comment

import "errors"

var (
	ErrNotFound       = errors.New("comment not found")
	ErrInvalidRequest = errors.New("invalid comment data")
	ErrInvalidStatus  = errors.New("invalid comment status filter")
)
