package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neunato/zed/internal/component"
	"github.com/neunato/zed/internal/infrastructure/config"
	"github.com/neunato/zed/internal/logging"
	"github.com/neunato/zed/internal/render"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	reg := component.NewRegistry()
	reg.RegisterComponent(component.ScopeInput, "Button", "")
	reg.RegisterPreview("Button", func(rc *render.Context) render.Element {
		return render.El("button")
	})

	cfg := config.Default()
	cfg.RateLimit.Enabled = false
	return New(cfg, reg, logging.Nop())
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestRoutes(t *testing.T) {
	srv := testServer(t)

	for _, path := range []string{"/", "/health", "/components", "/components/Button", "/components/Button/preview", "/scopes", "/themes", "/metrics"} {
		w := get(t, srv, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := get(t, srv, "/components/Missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	w := get(t, testServer(t), "/health")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRateLimitRejects(t *testing.T) {
	reg := component.NewRegistry()
	cfg := config.Default()
	cfg.RateLimit.RequestsPerSecond = 1
	cfg.RateLimit.Burst = 1
	srv := New(cfg, reg, logging.Nop())

	first := get(t, srv, "/health")
	require.Equal(t, http.StatusOK, first.Code)

	second := get(t, srv, "/health")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
