package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string

	// Security settings
	SecretKey    string
	Debug        bool
	AllowedHosts []string
	CORSOrigins  []string

	// Database settings
	DBDriver     string
	DatabasePath string
	DBHost       string
	DBPort       string
	DBName       string
	DBUser       string
	DBPassword   string
	DBSSLMode    string

	// Logging settings
	LogLevel  string
	LogFormat string
	LogFile   string

	// Upload settings
	UploadDir         string
	MaxUploadSize     int64
	AllowedExtensions []string

	// API settings
	APIRateLimit  int
	APIRateWindow time.Duration

	// Auth settings
	TokenTTL time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Not an error if .env doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Host:         getEnv("HOST", "0.0.0.0"),
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		SecretKey:    getEnv("SECRET_KEY", ""),
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		DatabasePath: getEnv("DATABASE_PATH", "./data/appeal_cases.db"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBName:       getEnv("DB_NAME", "criminal_appeal"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", ""),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		LogFile:      getEnv("LOG_FILE", ""),
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
	}

	cfg.Debug = getEnv("DEBUG", "false") == "true"
	cfg.AllowedHosts = splitList(getEnv("ALLOWED_HOSTS", "*"))
	cfg.CORSOrigins = splitList(getEnv("CORS_ORIGINS", "*"))
	cfg.AllowedExtensions = splitList(getEnv("ALLOWED_EXTENSIONS", "pdf,docx,txt"))

	maxUpload, err := strconv.ParseInt(getEnv("MAX_UPLOAD_SIZE", "52428800"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE: %w", err)
	}
	cfg.MaxUploadSize = maxUpload

	cfg.APIRateLimit, err = strconv.Atoi(getEnv("API_RATE_LIMIT", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_RATE_LIMIT: %w", err)
	}

	rateWindow, err := strconv.Atoi(getEnv("API_RATE_WINDOW", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_RATE_WINDOW: %w", err)
	}
	cfg.APIRateWindow = time.Duration(rateWindow) * time.Second

	tokenTTL, err := strconv.Atoi(getEnv("TOKEN_TTL", "3600"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = time.Duration(tokenTTL) * time.Second

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces production hardening rules. A development environment
// falls back to a default secret key so local runs work out of the box.
func (c *Config) validate() error {
	if c.IsProduction() {
		if c.SecretKey == "" {
			return fmt.Errorf("SECRET_KEY environment variable must be set in production")
		}
		if c.Debug {
			return fmt.Errorf("DEBUG must be false in production")
		}
		for _, host := range c.AllowedHosts {
			if host == "*" {
				return fmt.Errorf("ALLOWED_HOSTS must not contain a wildcard in production")
			}
		}
	} else if c.SecretKey == "" {
		c.SecretKey = "dev-secret-key-DO-NOT-USE-IN-PRODUCTION"
	}
	return nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ExtensionAllowed checks a file extension (without dot) against the
// configured allow-list.
func (c *Config) ExtensionAllowed(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range c.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// PostgresDSN builds the connection string for the postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, strings.ToLower(trimmed))
		}
	}
	return out
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
