package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"

	"dixit/internal/config"
	"dixit/internal/feed"
	"dixit/internal/game"
	"dixit/internal/logger"
)

type summary struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Status   game.Status `json:"status"`
	Playable bool        `json:"playable"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Error("Failed to load .env file", slog.String("error", err.Error()))
		return 1
	}
	cfg := config.Load()
	if len(args) > 0 {
		cfg.PayloadsPath = args[0]
	}
	if len(cfg.PayloadsPath) == 0 {
		slog.Error("No payload file given and GAMECHECK_PAYLOADS not set")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reader := &feed.Reader{
		Source: feed.FileSource{Path: cfg.PayloadsPath},
		Logger: logger.NewWithWriter("gamecheck", os.Stderr, cfg.LogLevel),
		Strict: cfg.Strict,
	}
	games, err := reader.Games(ctx)
	if err != nil {
		return 1
	}
	out := json.NewEncoder(os.Stdout)
	for _, g := range games {
		if err := out.Encode(summary{g.ID, g.Name, g.Status, g.IsPlayable()}); err != nil {
			reader.Logger.Error("Failed to write summary", err)
			return 1
		}
	}
	return 0
}
