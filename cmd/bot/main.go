package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/project12/keuanganbot/internal/ai"
	"github.com/project12/keuanganbot/internal/bot"
	"github.com/project12/keuanganbot/internal/bot/handlers"
	"github.com/project12/keuanganbot/internal/config"
	"github.com/project12/keuanganbot/internal/ledger"
	"github.com/project12/keuanganbot/internal/logging"
	"github.com/project12/keuanganbot/internal/sheets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(logging.Config{
		Level: logging.ParseLevel(cfg.LogLevel),
		JSON:  cfg.LogJSON,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := sheets.New(ctx, sheets.Config{
		CredentialsFile: cfg.CredentialsFile,
		SpreadsheetID:   cfg.SheetID,
		SheetName:       cfg.SheetName,
		ReportRange:     cfg.ReportRange,
	}, logger)
	if err != nil {
		logger.Error("failed to initialize sheets store", "error", err)
		os.Exit(1)
	}

	var aiClient *ai.Client
	if cfg.AIAPIKey != "" {
		aiClient = ai.New(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
		logger.Info("ai client initialized", "model", cfg.AIModel)
	} else {
		logger.Info("ai client not configured, natural language suggestions disabled")
	}

	categories := ledger.DefaultCategories()
	wallets := ledger.DefaultWallets()

	b, err := bot.New(cfg.TelegramToken, bot.Options{
		Ingestor:   ledger.NewIngestor(categories, wallets, store, logger),
		Reports:    store,
		Categories: categories,
		Wallets:    wallets,
		Sessions:   handlers.NewSessions(cfg.BatchTimeout, logger),
		AI:         aiClient,
		Logger:     logger,
	})
	if err != nil {
		logger.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		cancel()
	}()

	logger.Info("starting bot")
	if err := b.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("bot stopped", "error", err)
		os.Exit(1)
	}
}
