package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/project12/keuanganbot/internal/ai"
	"github.com/project12/keuanganbot/internal/bot/handlers"
	"github.com/project12/keuanganbot/internal/ledger"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	handlers *handlers.Handlers
	logger   *slog.Logger
}

// Options collects the collaborators the bot dispatches to.
type Options struct {
	Ingestor   *ledger.Ingestor
	Reports    handlers.ReportReader
	Categories *ledger.Registry
	Wallets    *ledger.Registry
	Sessions   *handlers.Sessions
	AI         *ai.Client
	Logger     *slog.Logger
}

func New(token string, opts Options) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram api: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Bot{
		api: api,
		handlers: handlers.New(api, opts.Ingestor, opts.Reports,
			opts.Categories, opts.Wallets, opts.Sessions, opts.AI, logger),
		logger: logger,
	}, nil
}

func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("authorized on telegram", "account", b.api.Self.UserName)

	go b.handlers.Sessions().Run(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		return
	}

	if update.Message.IsCommand() {
		b.handlers.HandleCommand(ctx, update.Message)
		return
	}

	b.handlers.HandleMessage(ctx, update.Message)
}
