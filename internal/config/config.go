package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	StoreDriver string `mapstructure:"STORE_DRIVER"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	JWTTTLHours int    `mapstructure:"JWT_TTL_HOURS"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Group rules
	MaxGroupSize         int `mapstructure:"MAX_GROUP_SIZE"`
	MinDifficulty        int `mapstructure:"MIN_DIFFICULTY"`
	MaxDifficulty        int `mapstructure:"MAX_DIFFICULTY"`
	GroupExpiryHours     int `mapstructure:"GROUP_EXPIRY_HOURS"`
	SweepIntervalMinutes int `mapstructure:"SWEEP_INTERVAL_MINUTES"`
	MaxWriteRetries      int `mapstructure:"MAX_WRITE_RETRIES"`

	ActivitiesFile string `mapstructure:"ACTIVITIES_FILE"`

	// Reputation (Raider.IO) configuration
	ReputationBaseURL         string `mapstructure:"REPUTATION_BASE_URL"`
	ReputationRegion          string `mapstructure:"REPUTATION_REGION"`
	ReputationTimeoutSec      int    `mapstructure:"REPUTATION_TIMEOUT_SEC"`
	ReputationCacheTTLMinutes int    `mapstructure:"REPUTATION_CACHE_TTL_MINUTES"`

	// Redis is optional; an empty URL disables the score cache
	RedisURL string `mapstructure:"REDIS_URL"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_DRIVER", StoreDriverPostgres)

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "lfg")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_TTL_HOURS", 24)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Group rules
	viper.SetDefault("MAX_GROUP_SIZE", 5)
	viper.SetDefault("MIN_DIFFICULTY", 2)
	viper.SetDefault("MAX_DIFFICULTY", 30)
	viper.SetDefault("GROUP_EXPIRY_HOURS", 24)
	viper.SetDefault("SWEEP_INTERVAL_MINUTES", 60)
	viper.SetDefault("MAX_WRITE_RETRIES", 5)
	viper.SetDefault("ACTIVITIES_FILE", "config/activities.yaml")

	// Reputation defaults
	viper.SetDefault("REPUTATION_BASE_URL", "https://raider.io")
	viper.SetDefault("REPUTATION_REGION", "us")
	viper.SetDefault("REPUTATION_TIMEOUT_SEC", 10)
	viper.SetDefault("REPUTATION_CACHE_TTL_MINUTES", 30)
	viper.SetDefault("REDIS_URL", "")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	switch config.StoreDriver {
	case StoreDriverPostgres:
		if config.DatabaseName == "" && config.DatabaseURL == "" {
			return fmt.Errorf("database name is required")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", config.StoreDriver)
	}

	if config.MaxGroupSize < 2 {
		return fmt.Errorf("MAX_GROUP_SIZE must be at least 2, got %d", config.MaxGroupSize)
	}
	if config.MinDifficulty > config.MaxDifficulty {
		return fmt.Errorf("MIN_DIFFICULTY (%d) must not exceed MAX_DIFFICULTY (%d)", config.MinDifficulty, config.MaxDifficulty)
	}
	if config.GroupExpiryHours <= 0 {
		return fmt.Errorf("GROUP_EXPIRY_HOURS must be positive")
	}
	if config.SweepIntervalMinutes <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL_MINUTES must be positive")
	}
	if config.MaxWriteRetries <= 0 {
		return fmt.Errorf("MAX_WRITE_RETRIES must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ExpiryHorizon is the age after which a group is reclaimed by the sweep
func (c *Config) ExpiryHorizon() time.Duration {
	return time.Duration(c.GroupExpiryHours) * time.Hour
}

// SweepInterval is how often the expiry sweep runs
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalMinutes) * time.Minute
}

// TokenTTL is how long an issued bearer token stays valid
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}

// ReputationTimeout bounds a single score lookup
func (c *Config) ReputationTimeout() time.Duration {
	return time.Duration(c.ReputationTimeoutSec) * time.Second
}

// ReputationCacheTTL is how long a fetched score is reused
func (c *Config) ReputationCacheTTL() time.Duration {
	return time.Duration(c.ReputationCacheTTLMinutes) * time.Minute
}
