package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/classhub/internal/cli"
	"github.com/dmitrijs2005/classhub/internal/config"
	"github.com/dmitrijs2005/classhub/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, err.Error())
		os.Exit(1)
	}

	app.Run(ctx)
}
