// internal/config/config.go
// Centralized configuration management
// Loads from environment variables with sensible defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string
	BaseURL     string

	// Persistence (key-value snapshots; Redis is optional)
	RedisURL string

	// Security
	JWTSecret         string
	AccessTokenExpiry time.Duration
	BCryptCost        int

	// Response window (chat accountability timer)
	ResponseWindow    time.Duration
	TimerPollInterval time.Duration

	// Simulated inbound messages
	AutoReplyUserID string
	AutoReplyText   string
	AutoReplyDelay  time.Duration

	// Reputation
	DefaultApproval int

	// Matching
	MaxSelections int

	// Profile picture storage
	UseS3          bool
	S3Bucket       string
	S3Region       string
	LocalUploadDir string
}

// Load reads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", ""),

		// Persistence
		RedisURL: getEnv("REDIS_URL", ""),

		// Security
		JWTSecret:         getEnv("JWT_SECRET", "your-super-secret-key-change-this-in-production"),
		AccessTokenExpiry: getEnvDuration("ACCESS_TOKEN_EXPIRY", "24h"),
		BCryptCost:        getEnvInt("BCRYPT_COST", 10),

		// Response window
		ResponseWindow:    getEnvDuration("RESPONSE_WINDOW", "2m"),
		TimerPollInterval: getEnvDuration("TIMER_POLL_INTERVAL", "200ms"),

		// Auto-reply simulation
		AutoReplyUserID: getEnv("AUTO_REPLY_USER_ID", "1"),
		AutoReplyText:   getEnv("AUTO_REPLY_TEXT", "k"),
		AutoReplyDelay:  getEnvDuration("AUTO_REPLY_DELAY", "2s"),

		// Reputation
		DefaultApproval: getEnvInt("DEFAULT_APPROVAL", 100),

		// Matching
		MaxSelections: getEnvInt("MAX_SELECTIONS", 5),

		// Storage
		UseS3:          getEnvBool("USE_S3", false),
		S3Bucket:       getEnv("S3_BUCKET_NAME", "aviato-uploads"),
		S3Region:       getEnv("AWS_REGION", "us-east-1"),
		LocalUploadDir: getEnv("LOCAL_UPLOAD_DIR", "./uploads"),
	}

	// Set BaseURL if not provided
	if cfg.BaseURL == "" {
		if cfg.Environment == "production" {
			cfg.BaseURL = "https://api.aviato.app"
		} else {
			cfg.BaseURL = fmt.Sprintf("http://localhost:%s", cfg.Port)
		}
	}

	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWTSecret == "your-super-secret-key-change-this-in-production" && c.Environment == "production" {
		return fmt.Errorf("JWT secret must be changed for production")
	}

	if c.ResponseWindow <= 0 {
		return fmt.Errorf("response window must be positive")
	}

	// Window state is recomputed from wall clock on every tick, so a coarse
	// poll only delays the expiry prompt; keep it at 250ms or finer
	if c.TimerPollInterval <= 0 || c.TimerPollInterval > 250*time.Millisecond {
		return fmt.Errorf("timer poll interval must be between 0 and 250ms")
	}

	if c.AutoReplyDelay < 0 {
		return fmt.Errorf("auto-reply delay cannot be negative")
	}

	if c.MaxSelections < 1 {
		return fmt.Errorf("max selections must be at least 1")
	}

	if c.UseS3 && c.S3Bucket == "" {
		return fmt.Errorf("S3 configuration incomplete")
	}

	if !c.UseS3 && c.LocalUploadDir == "" {
		return fmt.Errorf("local upload directory not specified")
	}

	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Helper functions

// getEnv gets a string value from environment with a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment with a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration value from environment with a default
func getEnvDuration(key string, defaultValue string) time.Duration {
	value := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(value)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

// getEnvBool gets a boolean value from environment with a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
