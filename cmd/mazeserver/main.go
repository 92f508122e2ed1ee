// Package main serves maze sessions over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/samdwyer/mazewalk/internal/api"
	"github.com/samdwyer/mazewalk/internal/config"
	"github.com/samdwyer/mazewalk/internal/telemetry"
)

func main() {
	config.LoadDotEnv()
	telemetry.ConfigureHoneycomb()

	level, err := config.LogLevel("MAZEWALK_LOG_LEVEL", log.InfoLevel)
	if err != nil {
		log.Fatal("invalid log level", "err", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazeserver",
		Level:           level,
	})

	cfg, err := api.LoadConfig()
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx, "server")
		if err != nil {
			logger.Warn("telemetry setup failed, running untraced", "err", err)
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error("shutting down telemetry", "err", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	store := api.NewSessionStore(cfg.MaxSessions, logger)
	router := api.NewRouter(api.RouterConfig{
		Addr:        cfg.Addr,
		BaseURL:     "/api",
		Controllers: []api.Controller{api.NewMazeController(store)},
		Logger:      logger,
	})

	if err := router.Run(ctx); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
	logger.Info("server stopped")
}
