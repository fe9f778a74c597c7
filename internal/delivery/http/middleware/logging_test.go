package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"nom-1"}`))
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware(logger, next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/nominations", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	out := buf.String()
	require.Contains(t, out, "method=POST")
	require.Contains(t, out, "path=/nominations")
	require.Contains(t, out, "status=201")
}

func TestLoggingMiddleware_DefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware(logger, next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/data", nil))

	require.Contains(t, buf.String(), "status=200")
}
