package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/presence-analyzer/internal/handler/http/response"
)

// RequireXHR rejects requests not sent by the dashboard scripts with 501.
func RequireXHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest") {
			slog.DebugContext(r.Context(), "Not xhr request", "path", r.URL.Path)
			response.NotImplemented(w, "Only XMLHttpRequest is supported")
			return
		}

		next.ServeHTTP(w, r)
	})
}
