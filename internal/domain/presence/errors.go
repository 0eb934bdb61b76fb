package presence

import "errors"

// Presence domain errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrSourceUnavailable = errors.New("presence data source unavailable")
)
