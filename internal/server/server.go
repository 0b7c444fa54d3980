package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/neunato/zed/internal/api/http"
	"github.com/neunato/zed/internal/api/middleware"
	"github.com/neunato/zed/internal/component"
	"github.com/neunato/zed/internal/infrastructure/config"
	"github.com/neunato/zed/internal/infrastructure/monitoring"
	"github.com/neunato/zed/internal/logging"
	"github.com/neunato/zed/internal/ws"
)

// Server wraps the showcase HTTP server and its dependencies.
type Server struct {
	router   *gin.Engine
	registry *component.Registry
	log      *logging.Logger
	http     *http.Server
}

// New creates a server over the given registry. The registry handle is
// passed in rather than reached for globally so tests can serve isolated
// catalogs.
func New(cfg *config.Config, registry *component.Registry, log *logging.Logger) *Server {
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector())
	metrics := monitoring.New(promRegistry)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS())
	router.Use(monitoring.Middleware(metrics))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(registry, metrics, cfg.Catalog.DefaultTheme)
	wsHandler := ws.NewHandler(registry, metrics, log, cfg.Catalog.DefaultTheme)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))

	router.GET("/components", handlers.ListComponents)
	router.GET("/components/:id", handlers.GetComponent)
	router.GET("/components/:id/preview", handlers.RenderPreview)
	router.GET("/scopes", handlers.ListScopes)
	router.GET("/themes", handlers.ListThemes)

	router.GET("/stream", wsHandler.HandleConnection)

	return &Server{
		router:   router,
		registry: registry,
		log:      log,
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler: router,
		},
	}
}

// Router exposes the underlying router for tests.
func (s *Server) Router() *gin.Engine { return s.router }

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.log.Info("showcase listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
