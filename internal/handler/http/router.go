package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/presence-analyzer/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterOptions struct {
	AllowedOrigins []string
	StaticDir      string
}

func NewRouter(logger *slog.Logger, opts RouterOptions, presenceHandler PresenceHandler, pageHandler PageHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.Get("/", pageHandler.Redirect)
	r.Get("/{page}", pageHandler.Render)

	if opts.StaticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(opts.StaticDir))))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireXHR)

		r.Get("/users", presenceHandler.ListUsers)
		r.Get("/mean_time_weekday/{userID}", presenceHandler.MeanTimeWeekday)
		r.Get("/presence_weekday/{userID}", presenceHandler.PresenceWeekday)
		r.Get("/presence_start_end/{userID}", presenceHandler.PresenceStartEnd)
	})

	return r
}

// NewLogger builds the JSON slog logger shared by the request logger and the
// rest of the application.
func NewLogger(w io.Writer, level slog.Level, env, version string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presence-analyzer"),
		slog.String("version", version),
		slog.String("env", env),
	)
}
