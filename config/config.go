package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	RateLimit RateLimitConfig
	Session   SessionConfig
	Recommend RecommendConfig
	Inventory InventoryConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute per client IP
}

// SessionConfig holds session store configuration
type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RecommendConfig holds recommendation engine configuration
type RecommendConfig struct {
	BaseScore  int `mapstructure:"base_score"`
	MaxResults int `mapstructure:"max_results"`
}

// InventoryConfig holds inventory seeding configuration
type InventoryConfig struct {
	SeedFile string `mapstructure:"seed_file"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/gearfit/")

	// Environment variable settings
	v.SetEnvPrefix("GEARFIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)

	// Session defaults
	v.SetDefault("session.ttl", "24h")

	// Recommendation defaults
	v.SetDefault("recommend.base_score", 75)
	v.SetDefault("recommend.max_results", 10)

	// Inventory defaults
	v.SetDefault("inventory.seed_file", "")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Recommend.BaseScore < 0 || config.Recommend.BaseScore > 100 {
		return fmt.Errorf("recommend base_score must be in [0, 100], got: %d", config.Recommend.BaseScore)
	}

	if config.Recommend.MaxResults <= 0 {
		return fmt.Errorf("recommend max_results must be positive, got: %d", config.Recommend.MaxResults)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit per_ip must be positive, got: %d", config.RateLimit.PerIP)
	}

	if config.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got: %s", config.Session.TTL)
	}

	return nil
}
