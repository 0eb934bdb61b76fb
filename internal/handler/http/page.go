package http

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/presence-analyzer/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templateFS embed.FS

// Tab is one dashboard page
type Tab struct {
	Name  string
	Title string
}

// DefaultTabs lists the dashboard pages in menu order
var DefaultTabs = []Tab{
	{Name: "presence_weekday", Title: "Presence by weekday"},
	{Name: "mean_time_weekday", Title: "Mean time weekday"},
	{Name: "presence_start_end", Title: "Presence start-end"},
}

type PageHandler interface {
	// Redirect sends / to the first tab
	Redirect(w http.ResponseWriter, r *http.Request)
	// Render serves /{tab}.html
	Render(w http.ResponseWriter, r *http.Request)
}

type pageHandlerImpl struct {
	tabs     []Tab
	template *template.Template
}

func NewPageHandler(tabs []Tab) (PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/base.html")
	if err != nil {
		return nil, err
	}
	return &pageHandlerImpl{
		tabs:     tabs,
		template: tmpl,
	}, nil
}

// Redirect handles GET /
func (h *pageHandlerImpl) Redirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/"+h.tabs[0].Name+".html", http.StatusFound)
}

// Render handles GET /{page}
func (h *pageHandlerImpl) Render(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutSuffix(chi.URLParam(r, "page"), ".html")
	if !ok {
		response.NotFound(w, "Page not found")
		return
	}

	var current *Tab
	for i := range h.tabs {
		if h.tabs[i].Name == name {
			current = &h.tabs[i]
			break
		}
	}
	if current == nil {
		slog.DebugContext(r.Context(), "Page not found", "tab", name)
		response.NotFound(w, "Page not found")
		return
	}

	var buf bytes.Buffer
	err := h.template.ExecuteTemplate(&buf, "base.html", map[string]interface{}{
		"Tab":   current.Name,
		"Title": current.Title,
		"Tabs":  h.tabs,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to render page", "tab", name, "error", err)
		response.InternalServerError(w, "Failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
