package config

import (
	"fmt"
	"time"

	apperrors "sos-escalation-backend/internal/errors"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTTTL    time.Duration `mapstructure:"JWT_TTL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Escalation timeline
	SecondaryDelay         time.Duration `mapstructure:"SOS_SECONDARY_DELAY"`
	SupervisorDelay        time.Duration `mapstructure:"SOS_SUPERVISOR_DELAY"`
	EmergencyServicesDelay time.Duration `mapstructure:"SOS_EMERGENCY_SERVICES_DELAY"`
	LocationTimeout        time.Duration `mapstructure:"SOS_LOCATION_TIMEOUT"`
	FanoutConcurrency      int           `mapstructure:"SOS_FANOUT_CONCURRENCY"`
	RescanEnabled          bool          `mapstructure:"SOS_RESCAN_ENABLED"`
	RescanInterval         time.Duration `mapstructure:"SOS_RESCAN_INTERVAL"`
	EmergencyServicesPhone string        `mapstructure:"EMERGENCY_SERVICES_NUMBER"`

	// Notification dispatch
	NotifyMaxAttempts   int           `mapstructure:"NOTIFY_MAX_ATTEMPTS"`
	NotifyRetryInterval time.Duration `mapstructure:"NOTIFY_RETRY_INTERVAL"`
	NotifyRatePerSecond float64       `mapstructure:"NOTIFY_RATE_PER_SECOND"`
	NotifyBurst         int           `mapstructure:"NOTIFY_BURST"`
	NotifyLanguage      string        `mapstructure:"NOTIFY_LANGUAGE"`

	// Location sources
	LocationFixTTL time.Duration `mapstructure:"LOCATION_FIX_TTL"`
	GeoIPDBPath    string        `mapstructure:"GEOIP_DB_PATH"`
	RedisURL       string        `mapstructure:"REDIS_URL"`

	// Lifecycle event stream
	KafkaBrokers []string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic   string   `mapstructure:"KAFKA_TOPIC"`
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

	// Database defaults, DATABASE_URL wins over the parts when set
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "sos_escalation")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_TTL", time.Hour)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Escalation defaults, kept at the 2/5/10 minute timeline
	viper.SetDefault("SOS_SECONDARY_DELAY", 2*time.Minute)
	viper.SetDefault("SOS_SUPERVISOR_DELAY", 5*time.Minute)
	viper.SetDefault("SOS_EMERGENCY_SERVICES_DELAY", 10*time.Minute)
	viper.SetDefault("SOS_LOCATION_TIMEOUT", 5*time.Second)
	viper.SetDefault("SOS_FANOUT_CONCURRENCY", 8)
	viper.SetDefault("SOS_RESCAN_ENABLED", true)
	viper.SetDefault("SOS_RESCAN_INTERVAL", time.Minute)
	viper.SetDefault("EMERGENCY_SERVICES_NUMBER", "911")

	// Notification defaults
	viper.SetDefault("NOTIFY_MAX_ATTEMPTS", 3)
	viper.SetDefault("NOTIFY_RETRY_INTERVAL", 500*time.Millisecond)
	viper.SetDefault("NOTIFY_RATE_PER_SECOND", 20.0)
	viper.SetDefault("NOTIFY_BURST", 10)
	viper.SetDefault("NOTIFY_LANGUAGE", "en")

	// Location defaults
	viper.SetDefault("LOCATION_FIX_TTL", 10*time.Minute)
	viper.SetDefault("GEOIP_DB_PATH", "")
	viper.SetDefault("REDIS_URL", "")

	// Kafka defaults - publishing is disabled without brokers
	viper.SetDefault("KAFKA_BROKERS", []string{})
	viper.SetDefault("KAFKA_TOPIC", "sos.lifecycle")
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

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.SecondaryDelay <= 0 ||
		config.SupervisorDelay <= config.SecondaryDelay ||
		config.EmergencyServicesDelay <= config.SupervisorDelay {
		return apperrors.ErrInvalidEscalationThresholds
	}

	if config.FanoutConcurrency < 1 {
		return fmt.Errorf("SOS_FANOUT_CONCURRENCY must be at least 1")
	}

	if config.NotifyMaxAttempts < 1 {
		return fmt.Errorf("NOTIFY_MAX_ATTEMPTS must be at least 1")
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

// AuthEnabled reports whether API routes require a bearer token
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != "" && c.JWTSecret != defaultJWTSecret
}
