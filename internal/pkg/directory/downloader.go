package directory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/presence-analyzer/internal/pkg/storage"
)

// maxDocumentSize caps the users XML we are willing to store
const maxDocumentSize = 32 << 20

// Downloader fetches the intranet users XML and stores it where the users
// repository reads it from.
type Downloader struct {
	client  *http.Client
	url     string
	storage storage.FileStorage
	path    string
}

func NewDownloader(client *http.Client, url string, fileStorage storage.FileStorage, path string) *Downloader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Downloader{
		client:  client,
		url:     url,
		storage: fileStorage,
		path:    path,
	}
}

// Download replaces the stored document with a fresh copy. The stored file is
// left untouched on any failure.
func (d *Downloader) Download(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.url, nil)
	if err != nil {
		return fmt.Errorf("failed to build users XML request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download users XML: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download users XML: unexpected status %d", resp.StatusCode)
	}

	if err := d.storage.Replace(ctx, io.LimitReader(resp.Body, maxDocumentSize), d.path); err != nil {
		return fmt.Errorf("failed to store users XML: %w", err)
	}

	slog.InfoContext(ctx, "Users XML refreshed", "url", d.url, "path", d.path)
	return nil
}
