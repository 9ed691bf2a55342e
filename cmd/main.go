package main

import (
	"context"
	"log/slog"
	"os"

	"freebooks_cli/config"
	"freebooks_cli/internal/catalogsource"
	"freebooks_cli/internal/downloader"
	"freebooks_cli/internal/parser"
	"freebooks_cli/internal/service/catalogService"
	"freebooks_cli/internal/transport/cli"
	"freebooks_cli/utils"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.Any("cfg", cfg))

	ctx := utils.CtxWithRequestID(context.Background())

	source := catalogsource.New(cfg)

	catalogParser := parser.NewXlsxParser(cfg)

	fileDownloader := downloader.NewFileDownloader(cfg)

	service := catalogService.New(cfg, source, catalogParser, fileDownloader)

	controller := cli.NewController(cfg, service)

	if err := controller.Root().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
