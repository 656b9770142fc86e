package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	APIVersion     string
	APIPrefix      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// Database configuration
	Database DatabaseConfig

	// Redis configuration
	Redis RedisConfig

	// JWT configuration
	JWT JWTConfig

	// Kafka configuration
	Kafka KafkaConfig

	// Rate limiting
	RateLimit RateLimitConfig

	// Price alerts
	Alerts AlertConfig

	// Logging
	LogLevel string

	// Email
	Email EmailConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	DSN      string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string

	// TTL values for different operations
	CryptoCacheTTL time.Duration
	TempDataTTL    time.Duration
}

// JWTConfig holds JWT configuration. Access and refresh tokens are signed
// with independent secrets so a leaked access key cannot mint refresh tokens.
type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// KafkaConfig holds Kafka configuration for the notification pipeline
type KafkaConfig struct {
	Brokers       []string
	AlertTopic    string
	ConsumerGroup string
	Enabled       bool
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled         bool          `json:"enabled"`
	WindowDuration  time.Duration `json:"window_duration"`
	DefaultRequests int           `json:"default_requests"`
	PublicRequests  int           `json:"public_requests"`
	AuthRequests    int           `json:"auth_requests"`
	TradingRequests int           `json:"trading_requests"`
	AdminRequests   int           `json:"admin_requests"`
	WhitelistedIPs  []string      `json:"whitelisted_ips"`
}

// AlertConfig holds price alert evaluation settings
type AlertConfig struct {
	EvaluationInterval time.Duration
	BatchSize          int
}

// EmailConfig holds email configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server configuration
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		APIVersion:     getEnv("API_VERSION", "v1"),
		APIPrefix:      getEnv("API_PREFIX", "/api"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB

		// Database configuration
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "cryptofolio_db"),
			User:     getEnv("DB_USER", "cryptofolio_user"),
			Password: getEnv("DB_PASSWORD", "cryptofolio_password"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		// Redis configuration
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),

			CryptoCacheTTL: getDurationEnv("REDIS_CRYPTO_CACHE_TTL", 1*time.Minute),
			TempDataTTL:    getDurationEnv("REDIS_TEMP_DATA_TTL", 5*time.Minute),
		},

		// JWT configuration
		JWT: JWTConfig{
			AccessSecret:     getEnv("JWT_ACCESS_SECRET", "dev-access-secret"),
			RefreshSecret:    getEnv("JWT_REFRESH_SECRET", "dev-refresh-secret"),
			AccessExpiresIn:  getDurationEnvSeconds("JWT_EXPIRES_IN", 1*time.Hour),
			RefreshExpiresIn: getDurationEnvSeconds("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
		},

		// Kafka configuration
		Kafka: KafkaConfig{
			Brokers:       getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
			AlertTopic:    getEnv("KAFKA_ALERT_TOPIC", "price-alerts"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "cryptofolio-notifications"),
			Enabled:       getBoolEnv("KAFKA_ENABLED", false),
		},

		// Rate limiting
		RateLimit: RateLimitConfig{
			Enabled:         getBoolEnv("RATE_LIMIT_ENABLED", true),
			WindowDuration:  getDurationEnv("RATE_LIMIT_WINDOW_DURATION", 60*time.Second),
			DefaultRequests: getIntEnv("RATE_LIMIT_DEFAULT_REQUESTS", 60),
			PublicRequests:  getIntEnv("RATE_LIMIT_PUBLIC_REQUESTS", 100),
			AuthRequests:    getIntEnv("RATE_LIMIT_AUTH_REQUESTS", 10),
			TradingRequests: getIntEnv("RATE_LIMIT_TRADING_REQUESTS", 30),
			AdminRequests:   getIntEnv("RATE_LIMIT_ADMIN_REQUESTS", 200),
			WhitelistedIPs:  getStringSliceEnv("RATE_LIMIT_WHITELISTED_IPS", []string{}),
		},

		// Price alerts
		Alerts: AlertConfig{
			EvaluationInterval: getDurationEnv("ALERT_EVALUATION_INTERVAL", 30*time.Second),
			BatchSize:          getIntEnv("ALERT_BATCH_SIZE", 100),
		},

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		// Email configuration
		Email: EmailConfig{
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getIntEnv("SMTP_PORT", 587),
			SMTPUsername: getEnv("SMTP_USERNAME", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			FromEmail:    getEnv("FROM_EMAIL", "noreply@cryptofolio.com"),
		},
	}

	// Build composite values
	cfg.Database.DSN = buildDatabaseDSN(cfg.Database)
	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// Validate checks invariants the rest of the system relies on
func (c *Config) Validate() error {
	if c.JWT.AccessSecret == "" || c.JWT.RefreshSecret == "" {
		return fmt.Errorf("JWT secrets must not be empty")
	}
	if c.JWT.AccessSecret == c.JWT.RefreshSecret {
		return fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	}
	return nil
}

// buildDatabaseDSN builds the database connection string
func buildDatabaseDSN(db DatabaseConfig) string {
	return "host=" + db.Host +
		" port=" + db.Port +
		" user=" + db.User +
		" password=" + db.Password +
		" dbname=" + db.Name +
		" sslmode=" + db.SSLMode
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getDurationEnvSeconds gets an environment variable as seconds (int) and converts to time.Duration
func getDurationEnvSeconds(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GinMode == "debug"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the API base path
func (c *Config) GetAPIBasePath() string {
	return c.APIPrefix + "/" + c.APIVersion
}
