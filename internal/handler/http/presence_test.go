package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmlabs-hris/presence-analyzer/internal/pkg/storage"
	"github.com/cmlabs-hris/presence-analyzer/internal/repository/csvfile"
	"github.com/cmlabs-hris/presence-analyzer/internal/repository/xmlfile"
	presenceService "github.com/cmlabs-hris/presence-analyzer/internal/service/presence"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestCSV = `user_id,date,start,end
10,2013-09-10,09:39:05,17:59:52
10,2013-09-12,10:48:46,17:23:51
10,2013-09-13,19:52:13,19:57:53
11,2013-09-14,00:00:10,00:00:30
11,2013-09-21,00:00:20,00:00:40
12,2013-09-09,09:00:00,17:00:00
`

const handlerTestUsersXML = `<?xml version="1.0" encoding="UTF-8"?>
<intranet>
  <server><host>intranet.example.com</host><port>443</port><protocol>https</protocol></server>
  <users>
    <user id="10"><avatar>/api/images/users/10</avatar><name>User 10</name></user>
    <user id="11"><avatar>/api/images/users/11</avatar><name>User 11</name></user>
  </users>
</intranet>
`

func createTestRouter(t *testing.T, csvContent string) *chi.Mux {
	ctx := context.Background()
	fs, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	if csvContent != "" {
		require.NoError(t, fs.Replace(ctx, strings.NewReader(csvContent), "data.csv"))
	}
	require.NoError(t, fs.Replace(ctx, strings.NewReader(handlerTestUsersXML), "users.xml"))

	svc := presenceService.NewPresenceService(
		csvfile.NewPresenceRepository(fs, "data.csv"),
		xmlfile.NewUsersRepository(fs, "users.xml"),
	)
	pageHandler, err := NewPageHandler(DefaultTabs)
	require.NoError(t, err)

	logger := NewLogger(io.Discard, slog.LevelError, "test", "test")
	return NewRouter(logger, RouterOptions{AllowedOrigins: []string{"*"}}, NewPresenceHandler(svc), pageHandler)
}

func doRequest(router http.Handler, path string, xhr bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if xhr {
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ===== USERS =====

func TestPresenceHandler_ListUsers_Success(t *testing.T) {
	router := createTestRouter(t, handlerTestCSV)

	w := doRequest(router, "/api/v1/users", true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var users []map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&users))
	require.Len(t, users, 2)
	assert.Equal(t, float64(10), users[0]["user_id"])
	assert.Equal(t, "User 10", users[0]["name"])
	assert.Equal(t, "https://intranet.example.com:443/api/images/users/10", users[0]["avatar"])
}

func TestPresenceHandler_ListUsers_NotXHR(t *testing.T) {
	router := createTestRouter(t, handlerTestCSV)

	w := doRequest(router, "/api/v1/users", false)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

// ===== MEAN TIME WEEKDAY =====

func TestPresenceHandler_MeanTimeWeekday_Success(t *testing.T) {
	router := createTestRouter(t, handlerTestCSV)

	w := doRequest(router, "/api/v1/mean_time_weekday/10", true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`[["Mon",0],["Tue",30047],["Wed",0],["Thu",23705],["Fri",340],["Sat",0],["Sun",0]]`,
		w.Body.String())
}

func TestPresenceHandler_MeanTimeWeekday_UnknownUser(t *testing.T) {
	router := createTestRouter(t, handlerTestCSV)

	w := doRequest(router, "/api/v1/mean_time_weekday/9", true)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp["success"].(bool))
}

func TestPresenceHandler_MeanTimeWeekday_NotXHRBeforeUnknownUser(t *testing.T) {
	router := createTestRouter(t, handlerTestCSV)

	w := doRequest(router, "/api/v1/mean_time_weekday/9", false)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestPresenceHandler_MeanTimeWeekday_NonNumericUser(t *testing.T) {
	router := createTestRouter(t, handlerTestCSV)

	w := doRequest(router, "/api/v1/mean_time_weekday/abc", true)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ===== PRESENCE WEEKDAY =====

func TestPresenceHandler_PresenceWeekday_Success(t *testing.T) {
	router := createTestRouter(t, handlerTestCSV)

	w := doRequest(router, "/api/v1/presence_weekday/10", true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`[["Weekday","Presence (s)"],["Mon",0],["Tue",30047],["Wed",0],["Thu",23705],["Fri",340],["Sat",0],["Sun",0]]`,
		w.Body.String())
}

func TestPresenceHandler_PresenceWeekday_UnknownUser(t *testing.T) {
	router := createTestRouter(t, handlerTestCSV)

	w := doRequest(router, "/api/v1/presence_weekday/9", true)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ===== PRESENCE START END =====

func TestPresenceHandler_PresenceStartEnd_Success(t *testing.T) {
	router := createTestRouter(t, handlerTestCSV)

	w := doRequest(router, "/api/v1/presence_start_end/11", true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"5":{"start":"1970 01 01 00:00:15","end":"1970 01 01 00:00:35","weekday":"Sat"}}`,
		w.Body.String())
}

func TestPresenceHandler_PresenceStartEnd_UnknownUser(t *testing.T) {
	router := createTestRouter(t, handlerTestCSV)

	w := doRequest(router, "/api/v1/presence_start_end/9", true)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPresenceHandler_PresenceStartEnd_NotXHR(t *testing.T) {
	router := createTestRouter(t, handlerTestCSV)

	w := doRequest(router, "/api/v1/presence_start_end/11", false)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

// ===== SOURCE UNAVAILABLE =====

func TestPresenceHandler_SourceUnavailable(t *testing.T) {
	router := createTestRouter(t, "")

	for _, path := range []string{
		"/api/v1/users",
		"/api/v1/mean_time_weekday/10",
		"/api/v1/presence_weekday/10",
		"/api/v1/presence_start_end/10",
	} {
		w := doRequest(router, path, true)
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
	}
}
