package directory

import "errors"

var (
	ErrDirectoryUnavailable = errors.New("user directory unavailable")
	ErrMalformedDirectory   = errors.New("malformed user directory")
)
