package handlers

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/project12/keuanganbot/internal/ledger"
)

// handleReport is stateless: it never touches the session table, so it
// works even while a chat is collecting a batch.
func (h *Handlers) handleReport(ctx context.Context, msg *tgbotapi.Message) {
	rows, err := h.reports.ReadReport(ctx)
	if err != nil {
		h.logger.Error("failed to read report range", "chat_id", msg.Chat.ID, "error", err)
		h.sendMessage(msg.Chat.ID, "Gagal membaca laporan, coba lagi nanti.")
		return
	}

	report, err := ledger.FormatReport(rows)
	if errors.Is(err, ledger.ErrNoReportData) {
		h.sendMessage(msg.Chat.ID, "❌ Tidak ada data pengeluaran di laporan.")
		return
	}
	if err != nil {
		h.logger.Error("failed to format report", "chat_id", msg.Chat.ID, "error", err)
		h.sendMessage(msg.Chat.ID, "Laporan berisi data yang tidak valid, periksa sheet laporan.")
		return
	}

	h.sendMessage(msg.Chat.ID, report)
}
