package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/project12/keuanganbot/internal/ledger"
)

func (h *Handlers) handleInput(msg *tgbotapi.Message) {
	text := "🧾 *Daftar Kategori:*\n" + h.categoryList() +
		"\n\n💰 *Daftar Saldo:*\n" + h.walletList() +
		"\n\nKirim data transaksi dengan format:\n" +
		"`deskripsi, kategori_nomor, nominal, saldo_nomor`\n" +
		"Contoh: `mie ayam, 1, 15000, 2`"

	h.sessions.AwaitBatch(msg.Chat.ID)
	h.sendMessage(msg.Chat.ID, text)
}

// handleBatch runs after the caller has claimed the chat's pending batch
// via Sessions.TakeBatch.
func (h *Handlers) handleBatch(ctx context.Context, msg *tgbotapi.Message) {
	user := ledger.User{ID: msg.From.ID, Name: userDisplayName(msg.From)}
	result := h.ingestor.IngestBatch(ctx, msg.Text, time.Now(), user)

	h.logger.Info("processed transaction batch",
		"chat_id", msg.Chat.ID,
		"user_id", user.ID,
		"added", result.Added,
		"failed", len(result.Errors),
	)

	h.sendMessage(msg.Chat.ID, batchSummary(result))
}

func batchSummary(result ledger.BatchResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "✅ %d transaksi berhasil ditambahkan.", result.Added)
	if len(result.Errors) > 0 {
		sb.WriteString("\n\n⚠️ Error:")
		for _, lineErr := range result.Errors {
			fmt.Fprintf(&sb, "\nBaris %d: %s", lineErr.Line, lineErr.Message)
		}
	}
	return sb.String()
}

func userDisplayName(u *tgbotapi.User) string {
	if u.UserName != "" {
		return u.UserName
	}
	return u.FirstName
}
