package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rcmkit/contract-analyzer/internal/contracts"
	"github.com/rcmkit/contract-analyzer/internal/export"
	"github.com/rcmkit/contract-analyzer/internal/repository"
)

// Server owns the HTTP surface: the REST API, the health endpoint, and the
// dashboard stats.
type Server struct {
	http   *http.Server
	logger *slog.Logger
}

func New(
	addr string,
	logger *slog.Logger,
	svc *contracts.Service,
	exporter *export.Service,
	db *repository.Database,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	h := &contractHandler{svc: svc, exporter: exporter, logger: logger}

	r.GET("/healthz", func(c *gin.Context) {
		if err := db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/contracts/upload", h.upload)
		api.GET("/contracts", h.list)
		api.GET("/contracts/:id", h.get)
		api.GET("/contracts/:id/fields", h.fields)
		api.GET("/contracts/:id/analyses", h.listAnalyses)
		api.GET("/contracts/:id/export", h.exportXLSX)
		api.POST("/contracts/:id/reanalyze", h.reanalyze)
		api.DELETE("/contracts/:id", h.remove)
		api.GET("/dashboard/stats", h.stats)
	}

	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Run blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Run() error {
	s.logger.Info("http server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
