package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"wms/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBEmbedded bool
	DBDataPath string

	LogLevel string

	// LowStockDefaultThreshold applies to items without a reorder point.
	LowStockDefaultThreshold decimal.Decimal
	LowStockReportSchedule   string
}

// LoadConfig reads the process environment, optionally primed from a .env file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	threshold, err := decimal.NewFromString(envOrDefault("LOW_STOCK_DEFAULT_THRESHOLD", "10"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOW_STOCK_DEFAULT_THRESHOLD: %w", err)
	}

	embedded, err := strconv.ParseBool(envOrDefault("DB_EMBEDDED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_EMBEDDED: %w", err)
	}

	return Config{
		HTTPPort:                 envOrDefault("HTTP_PORT", "8080"),
		DBHost:                   os.Getenv("DB_HOST"),
		DBPort:                   envOrDefault("DB_PORT", "5432"),
		DBUser:                   os.Getenv("DB_USER"),
		DBPassword:               os.Getenv("DB_PASSWORD"),
		DBName:                   os.Getenv("DB_NAME"),
		DBSslMode:                os.Getenv("DB_SSLMODE"),
		DBEmbedded:               embedded,
		DBDataPath:               envOrDefault("DB_DATA_PATH", "./data/postgres"),
		LogLevel:                 envOrDefault("LOG_LEVEL", "info"),
		LowStockDefaultThreshold: threshold,
		LowStockReportSchedule:   os.Getenv("LOW_STOCK_REPORT_SCHEDULE"),
	}, nil
}

func (c Config) ConnConfig() postgres.ConnConfig {
	return postgres.ConnConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
		Embedded: c.DBEmbedded,
		DataPath: c.DBDataPath,
		LogLevel: postgres.ParseLogLevel(c.LogLevel),
	}
}

// NewLogger builds the JSON logger shared by the binaries.
func NewLogger(level string) *slog.Logger {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
