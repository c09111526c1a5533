package config

import (
	"os"
	"strings"
	"time"

	"github.com/fjod/go_pos/internal/pricing"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort        string
	DBPath          string
	MigrationsPath  string
	RedisAddr       string
	KafkaBrokers    []string
	ReceiptDir      string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	Rates           pricing.Rates
}

func Load() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "pos.db"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "internal/repository/migrations"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers:    splitCSV(getEnv("KAFKA_BROKERS", "localhost:9092")),
		ReceiptDir:      getEnv("RECEIPT_DIR", "."),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		Rates:           loadRates(),
	}
}

func loadRates() pricing.Rates {
	rates := pricing.DefaultRates()
	rates.TaxRate = getDecimal("TAX_RATE", rates.TaxRate)
	rates.DiscountRate = getDecimal("DISCOUNT_RATE", rates.DiscountRate)
	rates.DiscountThreshold = getDecimal("DISCOUNT_THRESHOLD", rates.DiscountThreshold)
	return rates
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
