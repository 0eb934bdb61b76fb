package http

import (
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageHandler_Redirect(t *testing.T) {
	router := createTestRouter(t, handlerTestCSV)

	w := doRequest(router, "/", false)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/presence_weekday.html", w.Header().Get("Location"))
}

func TestPageHandler_Render_KnownTabs(t *testing.T) {
	router := createTestRouter(t, handlerTestCSV)

	for _, tab := range DefaultTabs {
		w := doRequest(router, "/"+tab.Name+".html", false)

		assert.Equal(t, http.StatusOK, w.Code, tab.Name)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), tab.Title)
		assert.Contains(t, w.Body.String(), "/static/js/"+tab.Name+".js")
	}
}

func TestRouter_ServesDashboardScripts(t *testing.T) {
	pageHandler, err := NewPageHandler(DefaultTabs)
	require.NoError(t, err)
	logger := NewLogger(io.Discard, slog.LevelError, "test", "test")
	router := NewRouter(logger, RouterOptions{
		AllowedOrigins: []string{"*"},
		StaticDir:      filepath.Join("..", "..", "..", "static"),
	}, NewPresenceHandler(nil), pageHandler)

	scripts := []string{"main"}
	for _, tab := range DefaultTabs {
		scripts = append(scripts, tab.Name)
	}
	for _, name := range scripts {
		w := doRequest(router, "/static/js/"+name+".js", false)

		assert.Equal(t, http.StatusOK, w.Code, name)
		assert.NotEmpty(t, w.Body.String(), name)
	}
}

func TestPageHandler_Render_UnknownTab(t *testing.T) {
	router := createTestRouter(t, handlerTestCSV)

	assert.Equal(t, http.StatusNotFound, doRequest(router, "/nonexistent.html", false).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(router, "/presence_weekday", false).Code)
}

func TestRouter_Heartbeat(t *testing.T) {
	router := createTestRouter(t, handlerTestCSV)

	w := doRequest(router, "/ping", false)

	assert.Equal(t, http.StatusOK, w.Code)
}
