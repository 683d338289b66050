package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	SMTP      SMTPConfig
	Discounts DiscountConfig
	Media     MediaConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JWTSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

// DiscountConfig carries the generic discount code table plus the fixed
// campaign percentages. Codes are normalized to upper case; entries with a
// negative percent are dropped.
type DiscountConfig struct {
	GenericCodes         map[string]float64
	BirthdayCode         string
	BirthdayPercent      float64
	FirstPurchasePercent float64
}

type MediaConfig struct {
	Root        string
	ReceiptsDir string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JWTSecret:          getEnv("JWT_SECRET", "change-me"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "FitBite"),
		},
		Discounts: DiscountConfig{
			GenericCodes:         parseDiscountCodes(getEnv("DISCOUNT_CODES", "FITSTART10:0.10,VASARA20:0.20")),
			BirthdayCode:         getEnv("BIRTHDAY_DISCOUNT_CODE", "BIRTHDAY15"),
			BirthdayPercent:      getEnvAsFloat("BIRTHDAY_DISCOUNT_PERCENT", 0.15),
			FirstPurchasePercent: getEnvAsFloat("FIRST_PURCHASE_DISCOUNT_PERCENT", 0.15),
		},
		Media: MediaConfig{
			Root:        getEnv("MEDIA_ROOT", "media"),
			ReceiptsDir: getEnv("MEDIA_RECEIPTS_DIR", "receipts"),
		},
	}
}

// parseDiscountCodes reads a "CODE:percent,CODE:percent" list. Later duplicates
// overwrite earlier ones after upper-casing, matching the dedup rule for codes.
func parseDiscountCodes(raw string) map[string]float64 {
	codes := make(map[string]float64)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			continue
		}
		code := strings.ToUpper(strings.TrimSpace(parts[0]))
		percent, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || code == "" || percent < 0 {
			continue
		}
		codes[code] = percent
	}
	return codes
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
