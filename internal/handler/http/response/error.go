package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/presence-analyzer/internal/domain/directory"
	"github.com/cmlabs-hris/presence-analyzer/internal/domain/presence"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Presence domain errors
	case errors.Is(err, presence.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, presence.ErrInvalidUserID):
		NotFound(w, "User not found")
	case errors.Is(err, presence.ErrSourceUnavailable):
		slog.Error("Presence data unavailable", "error", err)
		InternalServerError(w, "Presence data unavailable")

	// Directory domain errors
	case errors.Is(err, directory.ErrDirectoryUnavailable), errors.Is(err, directory.ErrMalformedDirectory):
		slog.Error("User directory unavailable", "error", err)
		InternalServerError(w, "User directory unavailable")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
