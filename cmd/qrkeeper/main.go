package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/qrkeeper/internal/blobs"
	"github.com/dmitrijs2005/qrkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/qrkeeper/internal/cli"
	"github.com/dmitrijs2005/qrkeeper/internal/config"
	"github.com/dmitrijs2005/qrkeeper/internal/logging"
	"github.com/dmitrijs2005/qrkeeper/internal/services"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	ctx := context.Background()

	cfg := config.LoadConfig()

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("%v", err)
	}

	repo, closeRepo, err := blobs.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := closeRepo(); err != nil {
			logger.Warn(ctx, "closing storage failed", "error", err)
		}
	}()

	history := services.NewHistoryService(repo, cfg.HistoryKey, logger)
	if err := history.Load(ctx); err != nil {
		logger.Warn(ctx, "history not loaded", "error", err)
	}

	cli.NewApp(cfg, history, logger).Run(ctx)

}
