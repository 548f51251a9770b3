package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds compensation and shift-timing constants.
// DaysInMonth is a fixed divisor, not calendar-aware.
type PayrollConfig struct {
	DaysInMonth        int
	StandardShiftHours float64
	OTDecisionWindow   time.Duration
	MaxOTDuration      time.Duration
}

func Load() (*Config, error) {
	// .env is optional; deployments may set env vars directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "fastep_work"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Payroll configuration
	daysInMonth, err := strconv.Atoi(getEnv("DAYS_IN_MONTH", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid DAYS_IN_MONTH: %w", err)
	}

	shiftHours, err := strconv.ParseFloat(getEnv("STANDARD_SHIFT_HOURS", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid STANDARD_SHIFT_HOURS: %w", err)
	}

	otWindow, err := time.ParseDuration(getEnv("OT_DECISION_WINDOW", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid OT_DECISION_WINDOW: %w", err)
	}

	maxOT, err := time.ParseDuration(getEnv("MAX_OT_DURATION", "4h"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_OT_DURATION: %w", err)
	}

	config.Payroll = PayrollConfig{
		DaysInMonth:        daysInMonth,
		StandardShiftHours: shiftHours,
		OTDecisionWindow:   otWindow,
		MaxOTDuration:      maxOT,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.DaysInMonth <= 0 {
		return fmt.Errorf("DAYS_IN_MONTH must be positive")
	}
	if c.Payroll.StandardShiftHours <= 0 {
		return fmt.Errorf("STANDARD_SHIFT_HOURS must be positive")
	}
	if c.Payroll.OTDecisionWindow <= 0 {
		return fmt.Errorf("OT_DECISION_WINDOW must be positive")
	}
	if c.Payroll.MaxOTDuration <= 0 {
		return fmt.Errorf("MAX_OT_DURATION must be positive")
	}
	return nil
}

// StandardShift returns the standard shift length as a duration.
func (p PayrollConfig) StandardShift() time.Duration {
	return time.Duration(p.StandardShiftHours * float64(time.Hour))
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
