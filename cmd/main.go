package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"ytnotes/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	// Missing .env is fine; credentials may come from the config file or
	// the process environment.
	godotenv.Load()

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("ignoring unreadable config.toml", "err", err)
		}
	}
	config.ApplyEnv()

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "ytnotes",
		Usage:    "Turn YouTube videos and playlists into structured study notes",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
