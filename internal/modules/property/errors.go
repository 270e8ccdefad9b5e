package property

import "errors"

var (
	ErrNotFound        = errors.New("property not found")
	ErrInvalidRequest  = errors.New("invalid property data")
	ErrImageNotListed  = errors.New("image url not found on property")
	ErrWrongImageCount = errors.New("exactly 4 featured images required")
)
