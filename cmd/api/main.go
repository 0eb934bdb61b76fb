package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/presence-analyzer/internal/config"
	appHTTP "github.com/cmlabs-hris/presence-analyzer/internal/handler/http"
	"github.com/cmlabs-hris/presence-analyzer/internal/pkg/cron"
	"github.com/cmlabs-hris/presence-analyzer/internal/pkg/directory"
	"github.com/cmlabs-hris/presence-analyzer/internal/pkg/storage"
	"github.com/cmlabs-hris/presence-analyzer/internal/repository/csvfile"
	"github.com/cmlabs-hris/presence-analyzer/internal/repository/xmlfile"
	presenceService "github.com/cmlabs-hris/presence-analyzer/internal/service/presence"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.SlogLevel(), cfg.App.Env, version)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataStorage, err := storage.NewLocalStorage(cfg.Data.Dir)
	if err != nil {
		slog.Error("Failed to initialize data storage", "error", err)
		os.Exit(1)
	}

	for _, name := range missingDataFiles(ctx, dataStorage, cfg.Data.CSVFile, cfg.Data.UsersXMLFile) {
		slog.Warn("Data file not found, reports will fail until it is provided", "dir", cfg.Data.Dir, "file", name)
	}

	presenceRepo := csvfile.NewPresenceRepository(dataStorage, cfg.Data.CSVFile)
	usersRepo := xmlfile.NewUsersRepository(dataStorage, cfg.Data.UsersXMLFile)

	presenceSvc := presenceService.NewPresenceService(presenceRepo, usersRepo)

	presenceHandler := appHTTP.NewPresenceHandler(presenceSvc)
	pageHandler, err := appHTTP.NewPageHandler(appHTTP.DefaultTabs)
	if err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	scheduler := cron.NewScheduler()
	if cfg.Directory.URL != "" {
		downloader := directory.NewDownloader(nil, cfg.Directory.URL, dataStorage, cfg.Data.UsersXMLFile)
		cron.NewDirectoryJobs(downloader, cfg.Directory.RefreshInterval).RegisterJobs(scheduler)
	} else {
		slog.Info("USERS_XML_URL not set, users XML will not be refreshed")
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		logger,
		appHTTP.RouterOptions{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			StaticDir:      cfg.App.StaticDir,
		},
		presenceHandler,
		pageHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	slog.Info("Server running", "addr", "http://localhost"+server.Addr, "data_dir", cfg.Data.Dir)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
	}
}

// missingDataFiles lists the names that are not present in store. A lookup
// error is logged and the file counted as missing.
func missingDataFiles(ctx context.Context, store storage.FileStorage, names ...string) []string {
	var missing []string
	for _, name := range names {
		ok, err := store.Exists(ctx, name)
		if err != nil {
			slog.Error("Failed to check data file", "file", name, "error", err)
		}
		if !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
