package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds environment driven settings for the enrollment API server.
type Config struct {
	Env            string
	Host           string
	Port           string
	AllowedOrigins []string
	LogLevel       string

	JWTSecret string

	Database   DatabaseConfig
	Redis      RedisConfig
	Payment    PaymentConfig
	Enrollment EnrollmentConfig
	Email      EmailConfig
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime int // seconds
	ConnMaxIdleTime int // seconds
	RunMigrations   bool
}

// RedisConfig contains cache connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// PaymentConfig tunes the simulated payment gateway.
type PaymentConfig struct {
	// ApprovalRate is the probability a simulated charge succeeds.
	ApprovalRate float64
	Currency     string
}

// EnrollmentConfig carries enrollment workflow defaults.
type EnrollmentConfig struct {
	DefaultMinAge     int
	PromotionInterval int // seconds between waitlist promotion sweeps
}

// EmailConfig contains email/SMTP configuration.
type EmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Secure   bool
}

// Load builds a Config from environment variables with sensible defaults.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Env:       getEnv("ENROLL_SERVER_ENV", "development"),
		Host:      getEnv("ENROLL_SERVER_HOST", "0.0.0.0"),
		Port:      getEnv("ENROLL_SERVER_PORT", "8080"),
		LogLevel:  getEnv("ENROLL_LOG_LEVEL", "info"),
		JWTSecret: getEnv("JWT_SECRET", "your-secret-key-change-me"),
	}

	cfg.AllowedOrigins = splitAndTrim(os.Getenv("ENROLL_ALLOWED_ORIGINS"))
	cfg.Database = loadDatabaseConfig()
	cfg.Redis = loadRedisConfig()
	cfg.Payment = loadPaymentConfig()
	cfg.Enrollment = loadEnrollmentConfig()
	cfg.Email = loadEmailConfig()

	if cfg.Payment.ApprovalRate < 0 || cfg.Payment.ApprovalRate > 1 {
		return nil, fmt.Errorf("payment approval rate must be within [0,1], got %v", cfg.Payment.ApprovalRate)
	}

	return cfg, nil
}

// ServerAddress joins the host and port into a listen address.
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsProduction reports whether the app is running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// DSN builds a PostgreSQL DSN for gorm.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
		d.SSLMode,
		d.TimeZone,
	)
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:            getEnv("ENROLL_DB_HOST", "127.0.0.1"),
		Port:            getEnv("ENROLL_DB_PORT", "5432"),
		User:            getEnv("ENROLL_DB_USER", "postgres"),
		Password:        os.Getenv("ENROLL_DB_PASSWORD"),
		Name:            getEnv("ENROLL_DB_NAME", "enrollment"),
		SSLMode:         getEnv("ENROLL_DB_SSLMODE", "disable"),
		TimeZone:        getEnv("ENROLL_DB_TIMEZONE", "UTC"),
		MaxIdleConns:    getEnvAsInt("ENROLL_DB_MAX_IDLE_CONNS", 5),
		MaxOpenConns:    getEnvAsInt("ENROLL_DB_MAX_OPEN_CONNS", 20),
		ConnMaxLifetime: getEnvAsInt("ENROLL_DB_CONN_MAX_LIFETIME", 1800),
		ConnMaxIdleTime: getEnvAsInt("ENROLL_DB_CONN_MAX_IDLE_TIME", 300),
		RunMigrations:   getEnvAsBool("ENROLL_DB_RUN_MIGRATIONS", false),
	}
}

func loadRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:     os.Getenv("ENROLL_REDIS_ADDR"),
		Password: os.Getenv("ENROLL_REDIS_PASSWORD"),
		DB:       getEnvAsInt("ENROLL_REDIS_DB", 0),
	}
}

func loadPaymentConfig() PaymentConfig {
	return PaymentConfig{
		ApprovalRate: getEnvAsFloat("ENROLL_PAYMENT_APPROVAL_RATE", 0.5),
		Currency:     getEnv("ENROLL_PAYMENT_CURRENCY", "USD"),
	}
}

func loadEnrollmentConfig() EnrollmentConfig {
	return EnrollmentConfig{
		DefaultMinAge:     getEnvAsInt("ENROLL_DEFAULT_MIN_AGE", 18),
		PromotionInterval: getEnvAsInt("ENROLL_PROMOTION_INTERVAL", 300),
	}
}

func loadEmailConfig() EmailConfig {
	secure := getEnv("SMTP_SECURE", "false") == "true"
	return EmailConfig{
		Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:     getEnv("SMTP_PORT", "587"),
		Username: getEnv("SMTP_USER", ""),
		Password: getEnv("SMTP_PASS", ""),
		From:     getEnv("SMTP_FROM", "noreply@example.com"),
		Secure:   secure,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return fallback
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ';'
	})

	var cleaned []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	return cleaned
}
