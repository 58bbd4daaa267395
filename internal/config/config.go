package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	TwelveAPIKey   string
	Symbols        []string
	Timeframe      string
	CandleCount    int
	DualSource     bool
	SecondarySeed  int64
	PolicyFile     string
	MACDSignalMode string // "snapshot" or "ema9"
	LogLevel       string
	RequestTimeout int // seconds

	DatabaseURL      string
	TelegramBotToken string
	TelegramChatID   int64
}

// Load initializes configuration from environment variables, reading a .env
// file first when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := &Config{
		TwelveAPIKey:     os.Getenv("TWELVE_API_KEY"),
		Symbols:          splitList(getEnvWithDefault("SYMBOLS", "EUR/USD")),
		Timeframe:        getEnvWithDefault("TIMEFRAME", "15m"),
		CandleCount:      getEnvIntWithDefault("CANDLE_COUNT", 90),
		DualSource:       getEnvBoolWithDefault("DUAL_SOURCE", false),
		SecondarySeed:    int64(getEnvIntWithDefault("SECONDARY_SEED", 0)),
		PolicyFile:       getEnvWithDefault("POLICY_FILE", "policy.yaml"),
		MACDSignalMode:   getEnvWithDefault("MACD_SIGNAL_MODE", "snapshot"),
		LogLevel:         getEnvWithDefault("LOG_LEVEL", "info"),
		RequestTimeout:   getEnvIntWithDefault("REQUEST_TIMEOUT", 30),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   int64(getEnvIntWithDefault("TELEGRAM_CHAT_ID", 0)),
	}

	return cfg, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
