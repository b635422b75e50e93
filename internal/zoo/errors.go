package zoo

import "errors"

// Common errors.
var (
	ErrUnknownArchitecture = errors.New("unknown architecture")
	ErrInvalidImageShape   = errors.New("invalid image shape")
)
