package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/config"
)

func newTestApp(t *testing.T, c *config.Config) *App {
	t.Helper()
	log, _ := test.NewNullLogger()
	a, err := New(log, c)
	require.NoError(t, err)
	return a
}

func TestRoutes(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	a := newTestApp(t, c)

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","default_params":"10:10:10"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/game/connect?rows=0", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewRejectsBadDefaults(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := New(log, &config.Config{DefaultParams: "1:1:2"})
	assert.Error(t, err)
}

func TestStartStopsWithContext(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	c.Addr = "127.0.0.1:0"
	a := newTestApp(t, c)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
