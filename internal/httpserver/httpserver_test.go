package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"shareit/internal/middleware"
	"shareit/pkg/log"
)

func newTestServer(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	srv, err := New(log.NewNop(), Config{
		Logger:         log.NewNop(),
		Port:           9090,
		Mode:           gin.TestMode,
		Environment:    "test",
		AllowedOrigins: []string{"http://app.test"},
		PostgresDB:     db,
	})
	require.NoError(t, err)

	h, err := srv.Handler()
	require.NoError(t, err)
	return h, mock
}

func TestNewValidates(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 9090})
	require.Error(t, err)
}

func TestReadyCheck(t *testing.T) {
	t.Run("Database Up", func(t *testing.T) {
		h, mock := newTestServer(t)
		mock.ExpectPing()

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Down", func(t *testing.T) {
		h, mock := newTestServer(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRoutesRegistered(t *testing.T) {
	h, _ := newTestServer(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	// Identity header is checked before any store access.
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/items", nil)
	req.Header.Set("Origin", "http://app.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	// Browsers send the requested header names lowercased.
	req.Header.Set("Access-Control-Request-Headers", strings.ToLower(middleware.UserIDHeader))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, "http://app.test", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, log.NewNop(), 0, http.NotFoundHandler())
	}()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
