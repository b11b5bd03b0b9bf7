package bounds

import "github.com/pkg/errors"

var (
	// ErrInvalidRange is returned when an operation would produce lower > upper
	ErrInvalidRange = errors.New("invalid range")
	// ErrNullRange is returned when an operation requires a range and none was given
	ErrNullRange = errors.New("null range")
)
