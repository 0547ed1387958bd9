package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Sink persists one finalized transaction.
type Sink interface {
	Append(ctx context.Context, tx Transaction) error
}

// LineError records a failed line of a batch, tagged with its 1-based
// position among the non-blank lines.
type LineError struct {
	Line    int
	Message string
}

// BatchResult summarizes one multi-line submission.
type BatchResult struct {
	Added  int
	Errors []LineError
}

// Ingestor runs parsed batch lines through validation and into the sink.
type Ingestor struct {
	categories *Registry
	wallets    *Registry
	sink       Sink
	logger     *slog.Logger
}

func NewIngestor(categories, wallets *Registry, sink Sink, logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{
		categories: categories,
		wallets:    wallets,
		sink:       sink,
		logger:     logger,
	}
}

// IngestBatch processes every non-blank line of rawText independently.
// A failed line never aborts its siblings; each failure is recorded with
// its position and the batch continues.
func (ing *Ingestor) IngestBatch(ctx context.Context, rawText string, today time.Time, user User) BatchResult {
	var result BatchResult

	lineNo := 0
	for _, raw := range strings.Split(rawText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lineNo++

		parsed, err := ParseLine(line, ing.categories, ing.wallets)
		if err != nil {
			result.Errors = append(result.Errors, LineError{Line: lineNo, Message: err.Error()})
			continue
		}

		category, _ := ing.categories.Resolve(parsed.CategoryCode)
		wallet, _ := ing.wallets.Resolve(parsed.WalletCode)

		tx := Transaction{
			Date:        today,
			Description: parsed.Description,
			Category:    category,
			Amount:      parsed.Amount,
			Wallet:      wallet,
			Direction:   ClassifyDirection(parsed.CategoryCode),
			User:        user,
		}

		if err := ing.sink.Append(ctx, tx); err != nil {
			ing.logger.Error("failed to append transaction",
				"line", lineNo, "user_id", user.ID, "error", err)
			result.Errors = append(result.Errors, LineError{
				Line:    lineNo,
				Message: fmt.Sprintf("gagal menyimpan transaksi: %v", err),
			})
			continue
		}

		result.Added++
	}

	return result
}
