package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the catalog service
type Config struct {
	// App configuration
	App AppConfig

	// Database configuration
	Database DatabaseConfig

	// Messaging configuration
	Messaging MessagingConfig

	// NATS configuration
	NATS NATSConfig

	// Kafka configuration
	Kafka KafkaConfig

	// Storage configuration
	Storage StorageConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	ServiceName  string
	Environment  string
	LogLevel     string
	ShutdownTime time.Duration
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// DSN returns the postgres connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// MessagingConfig selects the broker used for integration events
type MessagingConfig struct {
	Broker string // nats or kafka
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL                   string
	Stream                string
	MediaCreatedSubject   string
	EncoderResultsSubject string
	DurableName           string
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers           []string
	MediaCreatedTopic string
}

// StorageConfig holds media storage configuration
type StorageConfig struct {
	Type            string // memory or s3
	FilenamePattern string
	LocationPattern string
	S3              S3Config
}

// S3Config holds S3 configuration
type S3Config struct {
	Region   string
	Bucket   string
	Endpoint string
}

// Load reads configuration from the environment, honoring a local .env
// file when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			ServiceName:  getEnv("SERVICE_NAME", "catalog"),
			Environment:  getEnv("ENVIRONMENT", "development"),
			LogLevel:     getEnv("LOG_LEVEL", "info"),
			ShutdownTime: getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getIntEnv("DB_PORT", 5432),
			User:         getEnv("DB_USER", "catalog"),
			Password:     getEnv("DB_PASSWORD", "catalog"),
			Database:     getEnv("DB_NAME", "catalog"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 30*time.Minute),
		},
		Messaging: MessagingConfig{
			Broker: getEnv("MESSAGING_BROKER", "nats"),
		},
		NATS: NATSConfig{
			URL:                   getEnv("NATS_URL", "nats://localhost:4222"),
			Stream:                getEnv("NATS_STREAM", "CATALOG"),
			MediaCreatedSubject:   getEnv("NATS_MEDIA_CREATED_SUBJECT", "catalog.videos.media.created"),
			EncoderResultsSubject: getEnv("NATS_ENCODER_RESULTS_SUBJECT", "catalog.videos.encoded"),
			DurableName:           getEnv("NATS_DURABLE_NAME", "catalog-encoder-results"),
		},
		Kafka: KafkaConfig{
			Brokers:           []string{getEnv("KAFKA_BROKER", "localhost:9092")},
			MediaCreatedTopic: getEnv("KAFKA_MEDIA_CREATED_TOPIC", "catalog.videos.media.created"),
		},
		Storage: StorageConfig{
			Type:            getEnv("STORAGE_TYPE", "memory"),
			FilenamePattern: getEnv("STORAGE_FILENAME_PATTERN", "type-{type}"),
			LocationPattern: getEnv("STORAGE_LOCATION_PATTERN", "videoId-{videoId}"),
			S3: S3Config{
				Region:   getEnv("S3_REGION", "us-east-1"),
				Bucket:   getEnv("S3_BUCKET", "catalog-media"),
				Endpoint: getEnv("S3_ENDPOINT", ""),
			},
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
