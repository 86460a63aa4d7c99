package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var e map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}

	return entries
}

func loggingRouter(buf *bytes.Buffer, skip ...string) *gin.Engine {
	router := gin.New()
	router.Use(ContextLogger(slog.New(slog.NewJSONHandler(buf, nil))), Logging(skip...))
	router.GET("/api/v1/delivery/quote", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/api/v1/broken", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})
	router.POST("/api/v1/delivery/quote", func(c *gin.Context) {
		c.Status(http.StatusBadRequest)
	})
	router.GET("/-/live", func(c *gin.Context) { c.Status(http.StatusOK) })

	return router
}

func TestLogging_StartAndCompletion(t *testing.T) {
	var buf bytes.Buffer
	router := loggingRouter(&buf)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/delivery/quote?size=SMALL", nil))

	entries := logEntries(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "request started", entries[0]["msg"])
	assert.Equal(t, "/api/v1/delivery/quote?size=SMALL", entries[0]["path"])

	assert.Equal(t, "request completed", entries[1]["msg"])
	assert.Equal(t, "INFO", entries[1]["level"])
	assert.InDelta(t, http.StatusOK, entries[1]["status"], 0)
	assert.InDelta(t, 2, entries[1]["bytes"], 0)
}

func TestLogging_LevelByStatus(t *testing.T) {
	tests := []struct {
		method string
		path   string
		level  string
	}{
		{http.MethodPost, "/api/v1/delivery/quote", "WARN"},
		{http.MethodGet, "/api/v1/broken", "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			loggingRouter(&buf).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.path, nil))

			entries := logEntries(t, &buf)
			require.Len(t, entries, 2)
			assert.Equal(t, tt.level, entries[1]["level"])
		})
	}
}

func TestLogging_SkipsInternalAndListedPaths(t *testing.T) {
	var buf bytes.Buffer
	router := loggingRouter(&buf, "/api/v1/delivery/quote")

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/-/live", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/delivery/quote", nil))

	assert.Empty(t, buf.String())
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelForStatus(http.StatusOK))
	assert.Equal(t, slog.LevelInfo, levelForStatus(http.StatusNoContent))
	assert.Equal(t, slog.LevelWarn, levelForStatus(http.StatusNotFound))
	assert.Equal(t, slog.LevelError, levelForStatus(http.StatusServiceUnavailable))
}
