package server

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/lumen/internal/api/http"
	"github.com/GriffinCanCode/lumen/internal/api/middleware"
	"github.com/GriffinCanCode/lumen/internal/engine"
	"github.com/GriffinCanCode/lumen/internal/infrastructure/config"
	"github.com/GriffinCanCode/lumen/internal/infrastructure/logging"
	"github.com/GriffinCanCode/lumen/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/lumen/internal/providers"
	"github.com/GriffinCanCode/lumen/internal/providers/apps"
	"github.com/GriffinCanCode/lumen/internal/providers/calculator"
	"github.com/GriffinCanCode/lumen/internal/providers/clipboard"
	"github.com/GriffinCanCode/lumen/internal/providers/command"
	"github.com/GriffinCanCode/lumen/internal/shared/paths"
	"github.com/GriffinCanCode/lumen/internal/theme"
)

// Server wires the launcher daemon: provider set, engine, theme store
// and the HTTP adapter.
type Server struct {
	router  *gin.Engine
	engine  *engine.Engine
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// NewServer builds a fully wired daemon from configuration.
func NewServer(cfg *config.Config) (*Server, error) {
	logger, err := logging.NewWithLevel(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}

	logger.Info("initializing lumen daemon",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
	)

	metrics := monitoring.NewMetrics()

	// App index over the XDG directories plus any configured extras.
	dirs := append(apps.DefaultDirs(), cfg.File.ExtraAppDirs...)
	index := apps.NewIndex(dirs, logger.Named("apps"))
	if err := index.Rebuild(); err != nil {
		// A failed scan leaves an empty but reloadable index.
		logger.Warn("initial app scan failed", zap.Error(err))
	}
	metrics.IndexedApps.Set(float64(index.Len()))

	stateDir := cfg.Engine.StateDir
	if stateDir == "" {
		stateDir = paths.StateDir()
	}
	frecencyPath := ""
	if stateDir != "" {
		frecencyPath = filepath.Join(stateDir, "frecency.json")
	}
	frecency := apps.LoadFrecency(frecencyPath)

	history := clipboard.NewHistory(cfg.Engine.ClipboardCapacity)

	registry := providers.NewRegistry()
	for _, p := range []providers.Provider{
		calculator.NewProvider(),
		apps.NewProvider(index, frecency, logger.Named("apps")),
		command.NewProvider(),
		clipboard.NewProvider(history, logger.Named("clipboard")),
	} {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
		logger.Info("provider registered", zap.String("provider", p.ID()))
	}

	themes, err := theme.NewStore(cfg.File.Themes)
	if err != nil {
		return nil, err
	}

	eng := engine.New(registry, logger.Named("engine"),
		engine.WithMetrics(metrics),
		engine.WithMaxQueryLen(cfg.Engine.MaxQueryLen),
	)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(eng, themes, logger.Named("http")).
		WithMaxResults(cfg.Engine.MaxResults)

	router.GET("/health", handlers.Health)
	router.POST("/search", handlers.Search)
	router.POST("/execute", handlers.Execute)
	router.GET("/results/count", handlers.ResultCount)
	router.POST("/clipboard/poll", handlers.PollClipboard)
	router.POST("/reload", reloadWithGauge(handlers, metrics, index))
	router.GET("/themes", handlers.ListThemes)
	router.GET("/themes/:id", handlers.GetTheme)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("daemon initialized",
		zap.Int("indexed_apps", index.Len()),
		zap.Int("providers", registry.Len()),
	)

	return &Server{
		router:  router,
		engine:  eng,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

// reloadWithGauge refreshes the indexed-app gauge after a reload.
func reloadWithGauge(handlers *apihttp.Handlers, metrics *monitoring.Metrics, index *apps.Index) gin.HandlerFunc {
	return func(c *gin.Context) {
		handlers.Reload(c)
		metrics.IndexedApps.Set(float64(index.Len()))
	}
}

// Engine exposes the engine for embedding hosts.
func (s *Server) Engine() *engine.Engine { return s.engine }

// Run starts the HTTP adapter and blocks until it stops.
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("starting HTTP adapter", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close releases the engine and flushes logs.
func (s *Server) Close() error {
	s.logger.Info("shutting down")
	s.engine.Close()
	s.logger.Sync()
	return nil
}

// PollClipboard forwards to the engine; the daemon's poll loop calls
// this on a timer.
func (s *Server) PollClipboard(ctx context.Context) error {
	return s.engine.PollClipboard(ctx)
}
