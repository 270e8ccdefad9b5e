package gallery

import "errors"

var (
	ErrNotFound   = errors.New("gallery image not found")
	ErrInvalidTag = errors.New("invalid gallery tag")
	ErrNoFiles    = errors.New("no image files uploaded")
)
