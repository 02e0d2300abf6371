package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	healthTimeout   = 2 * time.Second
	shutdownTimeout = 5 * time.Second
)

// RouteRegistrar is implemented by every resource service.
type RouteRegistrar interface {
	RegisterRoutes(r gin.IRouter)
}

// HealthChecker is an interface for components that can report their health status.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Options struct {
	Addr          string
	Mode          string // debug | release
	MaxBodySizeMB int
	Database      HealthChecker
	// Cache is optional. A failing cache degrades /health but never fails it.
	Cache HealthChecker
}

type Server struct {
	Engine *gin.Engine
	Addr   string
	db     HealthChecker
	cache  HealthChecker
}

func New(opts Options, services ...RouteRegistrar) *Server {
	if opts.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(requestID(), recordMetrics())
	if opts.MaxBodySizeMB > 0 {
		r.Use(limitBody(int64(opts.MaxBodySizeMB) << 20))
	}

	s := &Server{
		Engine: r,
		Addr:   opts.Addr,
		db:     opts.Database,
		cache:  opts.Cache,
	}

	r.GET("/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	for _, svc := range services {
		svc.RegisterRoutes(r)
	}

	return s
}

func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			slog.Error("Health check failed: database unreachable", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}
	}

	resp := gin.H{
		"status":   "healthy",
		"database": "connected",
		"cache":    "disabled",
	}
	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			slog.Warn("Health check: cache unreachable", "error", err)
			resp["status"] = "degraded"
			resp["cache"] = "unreachable"
		} else {
			resp["cache"] = "connected"
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("Starting HTTP Server...", "address", s.Addr)

	go func() {
		<-ctx.Done()
		slog.Info("Stopping HTTP Server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP Server forced to shutdown", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
