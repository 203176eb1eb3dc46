package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Services ServicesConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	Launch   LaunchConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// ServicesConfig holds external service configuration
type ServicesConfig struct {
	WebAppURI string
	// WorkflowWebhookURL receives the post-launch caption generation trigger. Empty disables it.
	WorkflowWebhookURL string
}

// KafkaConfig holds event streaming configuration. Empty Brokers disables launch events.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// RedisConfig holds the redis address shared by session storage and the job queue
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LaunchConfig holds launch orchestration settings
type LaunchConfig struct {
	StepTimeout time.Duration
	Timezone    *time.Location
	// RateLimitPerMinute caps launch confirmations per user. Zero disables the limit.
	RateLimitPerMinute int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current process environment
func FromEnv() (*Config, error) {
	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")
	cfg.Services.WorkflowWebhookURL = os.Getenv("WORKFLOW_WEBHOOK_URL")

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, b)
			}
		}
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "campaign-events")

	cfg.Redis.Addr = getEnvWithDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}

	cfg.Launch.StepTimeout, err = time.ParseDuration(getEnvWithDefault("LAUNCH_STEP_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse LAUNCH_STEP_TIMEOUT: %w", err)
	}
	if cfg.Launch.StepTimeout <= 0 {
		return nil, fmt.Errorf("LAUNCH_STEP_TIMEOUT must be positive, got %s", cfg.Launch.StepTimeout)
	}
	cfg.Launch.Timezone, err = time.LoadLocation(getEnvWithDefault("SCHEDULE_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SCHEDULE_TIMEZONE: %w", err)
	}
	cfg.Launch.RateLimitPerMinute, err = strconv.Atoi(getEnvWithDefault("LAUNCH_RATE_LIMIT_PER_MINUTE", "5"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse LAUNCH_RATE_LIMIT_PER_MINUTE: %w", err)
	}

	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
