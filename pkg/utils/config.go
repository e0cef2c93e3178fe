package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Catalog  CatalogConfig
	Booking  BookingConfig
	Ledger   LedgerConfig
	Database DatabaseConfig
	Lock     LockConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Ollama   OllamaConfig
	Admin    AdminConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type CatalogConfig struct {
	Path string
}

type BookingConfig struct {
	MaxVisitorsPerDay int
	HorizonDays       int
	MatchThreshold    int
}

type LedgerConfig struct {
	Driver string // "file" or "postgres"
	Path   string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type LockConfig struct {
	Driver string // "local" or "redis"
	TTL    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

type OllamaConfig struct {
	URL     string
	Model   string
	Timeout time.Duration
}

type AdminConfig struct {
	TokenHash string
}

// LoadConfig reads envFile (if present) and the process environment.
func LoadConfig(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "museumpass")
	v.SetDefault("PORT", "8000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("CATALOG_PATH", "data/museums.json")
	v.SetDefault("MAX_VISITORS_PER_DAY", 500)
	v.SetDefault("BOOKING_HORIZON_DAYS", 60)
	v.SetDefault("MATCH_THRESHOLD", 80)
	v.SetDefault("LEDGER_DRIVER", "file")
	v.SetDefault("LEDGER_PATH", "bookings.json")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("LOCK_DRIVER", "local")
	v.SetDefault("LOCK_TTL", "5s")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("KAFKA_ENABLED", false)
	v.SetDefault("KAFKA_BROKERS", []string{"localhost:9092"})
	v.SetDefault("KAFKA_TOPIC", "booking.confirmed")
	v.SetDefault("OLLAMA_URL", "http://localhost:11434")
	v.SetDefault("OLLAMA_MODEL", "llama2")
	v.SetDefault("OLLAMA_TIMEOUT", "60s")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Catalog: CatalogConfig{
			Path: v.GetString("CATALOG_PATH"),
		},
		Booking: BookingConfig{
			MaxVisitorsPerDay: v.GetInt("MAX_VISITORS_PER_DAY"),
			HorizonDays:       v.GetInt("BOOKING_HORIZON_DAYS"),
			MatchThreshold:    v.GetInt("MATCH_THRESHOLD"),
		},
		Ledger: LedgerConfig{
			Driver: v.GetString("LEDGER_DRIVER"),
			Path:   v.GetString("LEDGER_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Lock: LockConfig{
			Driver: v.GetString("LOCK_DRIVER"),
			TTL:    v.GetDuration("LOCK_TTL"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Kafka: KafkaConfig{
			Enabled: v.GetBool("KAFKA_ENABLED"),
			Brokers: v.GetStringSlice("KAFKA_BROKERS"),
			Topic:   v.GetString("KAFKA_TOPIC"),
		},
		Ollama: OllamaConfig{
			URL:     v.GetString("OLLAMA_URL"),
			Model:   v.GetString("OLLAMA_MODEL"),
			Timeout: v.GetDuration("OLLAMA_TIMEOUT"),
		},
		Admin: AdminConfig{
			TokenHash: v.GetString("ADMIN_TOKEN_HASH"),
		},
	}

	return config, nil
}
