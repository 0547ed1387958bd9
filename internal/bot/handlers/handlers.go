package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/project12/keuanganbot/internal/ai"
	"github.com/project12/keuanganbot/internal/ledger"
)

// ReportReader reads the raw report range from the backing store.
type ReportReader interface {
	ReadReport(ctx context.Context) ([][]string, error)
}

type Handlers struct {
	api        *tgbotapi.BotAPI
	ingestor   *ledger.Ingestor
	reports    ReportReader
	categories *ledger.Registry
	wallets    *ledger.Registry
	sessions   *Sessions
	ai         *ai.Client
	logger     *slog.Logger
}

func New(
	api *tgbotapi.BotAPI,
	ingestor *ledger.Ingestor,
	reports ReportReader,
	categories, wallets *ledger.Registry,
	sessions *Sessions,
	aiClient *ai.Client,
	logger *slog.Logger,
) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		api:        api,
		ingestor:   ingestor,
		reports:    reports,
		categories: categories,
		wallets:    wallets,
		sessions:   sessions,
		ai:         aiClient,
		logger:     logger,
	}
}

// Sessions exposes the session table for the expiry sweeper.
func (h *Handlers) Sessions() *Sessions {
	return h.sessions
}

func (h *Handlers) HandleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		h.handleStart(msg)
	case "help":
		h.handleHelp(msg)
	case "input":
		h.handleInput(msg)
	case "laporan":
		h.handleReport(ctx, msg)
	case "batal":
		h.handleCancel(msg)
	default:
		h.sendMessage(msg.Chat.ID, "Perintah tidak dikenal. Ketik /start untuk melihat cara pakai.")
	}
}

// HandleMessage routes non-command text: a chat awaiting a batch gets its
// message ingested, everything else gets a nudge (or an AI suggestion).
func (h *Handlers) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if h.sessions.TakeBatch(msg.Chat.ID) {
		h.handleBatch(ctx, msg)
		return
	}
	h.handleFreeText(ctx, msg)
}

func (h *Handlers) handleStart(msg *tgbotapi.Message) {
	text := "👋 Halo! Ini *Bot Keuangan Project12*.\n\n" +
		"Ketik `/input` untuk input transaksi.\n" +
		"Ketik `/laporan` untuk lihat pengeluaran harian.\n"
	h.sendMessage(msg.Chat.ID, text)
}

func (h *Handlers) handleHelp(msg *tgbotapi.Message) {
	h.sendMessage(msg.Chat.ID, helpText())
}

func helpText() string {
	return "📖 *Daftar Perintah*\n\n" +
		"/input - mulai input transaksi\n" +
		"/laporan - lihat pengeluaran harian\n" +
		"/batal - batalkan input yang sedang berjalan\n" +
		"/help - tampilkan daftar ini\n\n" +
		"Setelah /input, kirim satu baris per transaksi dengan format:\n" +
		"`deskripsi, kategori_nomor, nominal, saldo_nomor`"
}

func (h *Handlers) handleCancel(msg *tgbotapi.Message) {
	if h.sessions.State(msg.Chat.ID) != StateAwaitingBatch {
		h.sendMessage(msg.Chat.ID, "Tidak ada input yang sedang berjalan.")
		return
	}
	h.sessions.Reset(msg.Chat.ID)
	h.sendMessage(msg.Chat.ID, "Input transaksi dibatalkan.")
}

func (h *Handlers) handleFreeText(ctx context.Context, msg *tgbotapi.Message) {
	if h.ai == nil {
		h.sendMessage(msg.Chat.ID, "Ketik /input dulu untuk mulai mencatat transaksi.")
		return
	}

	line, ok, err := h.ai.SuggestLine(ctx, msg.Text, h.categoryList(), h.walletList())
	if err != nil {
		h.logger.Error("ai suggestion failed", "chat_id", msg.Chat.ID, "error", err)
		h.sendMessage(msg.Chat.ID, "Ketik /input dulu untuk mulai mencatat transaksi.")
		return
	}
	if !ok {
		h.sendMessage(msg.Chat.ID, "Ketik /input dulu untuk mulai mencatat transaksi.")
		return
	}

	// Only forward a suggestion that actually parses.
	if _, err := ledger.ParseLine(line, h.categories, h.wallets); err != nil {
		h.logger.Warn("ai suggested an invalid line", "line", line, "error", err)
		h.sendMessage(msg.Chat.ID, "Ketik /input dulu untuk mulai mencatat transaksi.")
		return
	}

	h.sendMessage(msg.Chat.ID, fmt.Sprintf(
		"Mungkin maksudmu:\n`%s`\n\nKetik /input lalu kirim baris di atas untuk menyimpannya.", line))
}

func (h *Handlers) categoryList() string {
	var sb strings.Builder
	for _, code := range h.categories.Codes() {
		name, _ := h.categories.Resolve(code)
		fmt.Fprintf(&sb, "%s. %s\n", code, name)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (h *Handlers) walletList() string {
	var sb strings.Builder
	for _, code := range h.wallets.Codes() {
		name, _ := h.wallets.Resolve(code)
		fmt.Fprintf(&sb, "%s. %s\n", code, name)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (h *Handlers) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := h.api.Send(msg); err != nil {
		h.logger.Error("failed to send message", "chat_id", chatID, "error", err)
	}
}
