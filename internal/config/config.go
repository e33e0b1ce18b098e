package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	JWT      JWTConfig
	Payroll  PayrollConfig
	Storage  StorageConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// PayrollConfig holds the payroll tunables. Overtime thresholds, pay
// multipliers and session bounds vary per venue, so they are environment
// configuration rather than constants.
type PayrollConfig struct {
	StandardShiftHours  decimal.Decimal // daily hours before OT kicks in
	OTMultiplier        decimal.Decimal
	HolidayMultiplier   decimal.Decimal
	SalariedHourDivisor decimal.Decimal // base salary / divisor = derived hourly rate
	MinSessionHours     decimal.Decimal
	MaxSessionHours     decimal.Decimal
	MinDailyHours       decimal.Decimal
	MaxDailyHours       decimal.Decimal
}

type StorageConfig struct {
	BasePath string
	BaseURL  string
}

func Load() (*Config, error) {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "lengolf"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	payroll, err := loadPayrollConfig()
	if err != nil {
		return nil, err
	}
	config.Payroll = payroll

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "./storage"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "/files"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPayrollConfig() (PayrollConfig, error) {
	cfg := PayrollConfig{}

	fields := []struct {
		name     string
		fallback string
		dst      *decimal.Decimal
	}{
		{"PAYROLL_STANDARD_SHIFT_HOURS", "8", &cfg.StandardShiftHours},
		{"PAYROLL_OT_MULTIPLIER", "1.5", &cfg.OTMultiplier},
		{"PAYROLL_HOLIDAY_MULTIPLIER", "2", &cfg.HolidayMultiplier},
		{"PAYROLL_SALARIED_HOUR_DIVISOR", "208", &cfg.SalariedHourDivisor},
		{"PAYROLL_MIN_SESSION_HOURS", "0.5", &cfg.MinSessionHours},
		{"PAYROLL_MAX_SESSION_HOURS", "12", &cfg.MaxSessionHours},
		{"PAYROLL_MIN_DAILY_HOURS", "1", &cfg.MinDailyHours},
		{"PAYROLL_MAX_DAILY_HOURS", "14", &cfg.MaxDailyHours},
	}

	for _, f := range fields {
		v, err := decimal.NewFromString(getEnv(f.name, f.fallback))
		if err != nil {
			return PayrollConfig{}, fmt.Errorf("invalid %s: %w", f.name, err)
		}
		*f.dst = v
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.SalariedHourDivisor.IsZero() {
		return fmt.Errorf("PAYROLL_SALARIED_HOUR_DIVISOR must be non-zero")
	}
	if !c.Payroll.OTMultiplier.IsPositive() {
		return fmt.Errorf("PAYROLL_OT_MULTIPLIER must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
