// Package api serves maze sessions over HTTP with gin.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Router manages the HTTP server and its controllers.
type Router struct {
	addr   string
	engine *gin.Engine
	logger *log.Logger
}

// RouterConfig holds configuration settings for creating a new Router instance.
type RouterConfig struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []Controller
	Logger      *log.Logger
}

// NewRouter creates a Router with every controller registered under
// BaseURL + "/v1".
func NewRouter(config RouterConfig) *Router {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(config.Logger))

	v1 := engine.Group(config.BaseURL).Group("/v1")
	for _, c := range config.Controllers {
		c.RegisterPublic(v1)
	}

	return &Router{
		addr:   config.Addr,
		engine: engine,
		logger: config.Logger,
	}
}

// Handler returns the router as an http.Handler.
func (r *Router) Handler() http.Handler {
	return r.engine
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (r *Router) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              r.addr,
		Handler:           r.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("HTTP server listening", "addr", r.addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	r.logger.Info("stopping HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// requestLogger logs one line per request.
func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start).Round(time.Microsecond),
		)
	}
}
