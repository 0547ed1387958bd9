package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// TelegramToken is the bot token from @BotFather.
	TelegramToken string `koanf:"TELEGRAM_TOKEN"`

	// SheetID is the spreadsheet that acts as the system of record.
	SheetID string `koanf:"SHEET_ID"`

	// CredentialsFile is the service-account JSON key used for Sheets.
	CredentialsFile string `koanf:"GOOGLE_CREDENTIALS_FILE"`

	// SheetName is the tab transactions are appended to.
	SheetName string `koanf:"SHEET_NAME"`

	// ReportRange is the A1-notation range the daily report is read from.
	ReportRange string `koanf:"REPORT_RANGE"`

	// BatchTimeout bounds how long a chat stays in the collecting state
	// after /input before it falls back to idle.
	BatchTimeout time.Duration `koanf:"BATCH_TIMEOUT"`

	// AI settings are optional; without an API key the natural-language
	// suggestion feature is disabled.
	AIAPIKey  string `koanf:"AI_API_KEY"`
	AIBaseURL string `koanf:"AI_BASE_URL"`
	AIModel   string `koanf:"AI_MODEL"`

	LogLevel string `koanf:"LOG_LEVEL"`

	// LogJSON switches logs to JSON output, for running under a log
	// collector.
	LogJSON bool `koanf:"LOG_JSON"`
}

// Load reads configuration from the environment, with an optional .env
// file for local development.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env file is optional in production
	}

	cfg := &Config{
		CredentialsFile: "credentials.json",
		SheetName:       "Transaksi",
		ReportRange:     "Laporan!C18:G30",
		BatchTimeout:    10 * time.Minute,
		AIBaseURL:       "https://openrouter.ai/api/v1",
		AIModel:         "openai/gpt-4o-mini",
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields the bot cannot run without.
func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required")
	}
	if c.SheetID == "" {
		return fmt.Errorf("SHEET_ID is required")
	}
	return nil
}
