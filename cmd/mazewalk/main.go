// Package main is the entry point for the terminal maze game.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"

	"github.com/samdwyer/mazewalk/internal/config"
	"github.com/samdwyer/mazewalk/internal/game"
	"github.com/samdwyer/mazewalk/internal/gamedata"
	"github.com/samdwyer/mazewalk/internal/telemetry"
)

func main() {
	config.LoadDotEnv()
	telemetry.ConfigureHoneycomb()

	// The terminal belongs to the screen once the game starts.
	logFile, err := os.OpenFile(config.String("MAZEWALK_LOG_FILE", "mazewalk.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal("could not open log file", "err", err)
	}
	defer logFile.Close()

	level, err := config.LogLevel("MAZEWALK_LOG_LEVEL", log.InfoLevel)
	if err != nil {
		log.Fatal("invalid log level", "err", err)
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazewalk",
		Level:           level,
	})

	ctx := context.Background()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx, "terminal")
		if err != nil {
			logger.Warn("telemetry setup failed, running untraced", "err", err)
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error("shutting down telemetry", "err", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	difficulties := gamedata.MustLoadDifficultyRegistry()
	cfg, err := game.LoadConfig(difficulties)
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	g, err := game.New(cfg, difficulties, logger)
	if err != nil {
		log.Fatal("failed to initialize game", "err", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatal("game error", "err", err)
	}
}
