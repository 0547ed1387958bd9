// Package sheets persists transactions to a Google Sheets spreadsheet and
// reads back the precomputed report range.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/avast/retry-go"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/project12/keuanganbot/internal/ledger"
)

const (
	retryAttempts = 3
	retryDelay    = 30 * time.Second
)

// Config holds the store's configuration.
type Config struct {
	// CredentialsFile is a service-account JSON key with access to the
	// spreadsheet.
	CredentialsFile string
	// SpreadsheetID identifies the spreadsheet.
	SpreadsheetID string
	// SheetName is the tab transactions are appended to.
	SheetName string
	// ReportRange is the A1-notation range the daily report is read from,
	// e.g. "Laporan!C18:G30".
	ReportRange string
}

// Store is the spreadsheet-backed system of record.
type Store struct {
	service *sheets.Service
	cfg     Config
	logger  *slog.Logger
}

// New authenticates with the service-account key and verifies the
// spreadsheet is reachable.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	key, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	jwtCfg, err := google.JWTConfigFromJSON(key, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing service account key: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	spreadsheet, err := service.Spreadsheets.Get(cfg.SpreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("getting spreadsheet: %w", err)
	}

	logger.Info("sheets store initialized",
		"title", spreadsheet.Properties.Title,
		"spreadsheet_id", cfg.SpreadsheetID,
		"sheet_name", cfg.SheetName,
	)

	return &Store{service: service, cfg: cfg, logger: logger}, nil
}

// Append writes one transaction as a new row at the bottom of the
// transactions sheet.
func (s *Store) Append(ctx context.Context, tx ledger.Transaction) error {
	writeRange := fmt.Sprintf("%s!A:H", s.cfg.SheetName)
	valueRange := &sheets.ValueRange{Values: [][]any{tx.Row()}}

	err := retry.Do(
		func() error {
			_, err := s.service.Spreadsheets.Values.Append(s.cfg.SpreadsheetID, writeRange, valueRange).
				ValueInputOption("USER_ENTERED").
				InsertDataOption("INSERT_ROWS").
				Context(ctx).
				Do()
			return err
		},
		retry.RetryIf(s.isRateLimited),
		retry.Attempts(retryAttempts),
		retry.Delay(retryDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("appending transaction row: %w", err)
	}

	s.logger.Debug("appended transaction",
		"description", tx.Description,
		"category", tx.Category,
		"user_id", tx.User.ID,
	)
	return nil
}

// ReadReport fetches the raw report range. The returned rows may be ragged;
// the formatter tolerates short rows.
func (s *Store) ReadReport(ctx context.Context) ([][]string, error) {
	var resp *sheets.ValueRange
	err := retry.Do(
		func() error {
			var err error
			resp, err = s.service.Spreadsheets.Values.Get(s.cfg.SpreadsheetID, s.cfg.ReportRange).
				Context(ctx).
				Do()
			return err
		},
		retry.RetryIf(s.isRateLimited),
		retry.Attempts(retryAttempts),
		retry.Delay(retryDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("reading report range %s: %w", s.cfg.ReportRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *Store) isRateLimited(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		s.logger.Warn("rate limited by sheets api, will retry", "error", err)
		return true
	}
	return false
}
