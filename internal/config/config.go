package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache `validate:"required"`
	Redis Redis

	Orders Orders `validate:"required"`

	Auth Auth `validate:"required"`

	SMTP SMTP `validate:"required"`

	Ollama Ollama `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`

	// Топик уведомлений о заказах; сообщения с ошибкой уходят в <topic>-dlq.
	NotificationsTopic string `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Backend  string        `validate:"required,oneof=memory redis"`
	Capacity int           `validate:"gt=0"`
	TTL      time.Duration `validate:"gt=0"`
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
}

type Orders struct {
	MaxLines            int           `validate:"gt=0"`
	DefaultPageSize     int           `validate:"gt=0"`
	MaxPageSize         int           `validate:"gtefield=DefaultPageSize"`
	NotificationTimeout time.Duration `validate:"gt=0"`
}

type Auth struct {
	JWTSecret string        `validate:"required,min=16"`
	TokenTTL  time.Duration `validate:"gt=0"`
	Issuer    string        `validate:"required"`
}

type SMTP struct {
	Host     string `validate:"required"`
	Port     int    `validate:"gt=0,lte=65535"`
	Username string
	Password string
	From     string `validate:"required,email"`
}

type Ollama struct {
	BaseURL string        `validate:"required,url"`
	Model   string        `validate:"required"`
	Timeout time.Duration `validate:"gt=0"`

	// Параметры circuit breaker
	MaxFailures  int           `validate:"gt=0"`
	OpenInterval time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:            env("KAFKA_GROUP_ID", "garden-shop"),
			NotificationsTopic: env("KAFKA_NOTIFICATIONS_TOPIC", "order-notifications"),
			Brokers:            strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "garden_shop"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Backend:  env("CACHE_BACKEND", "memory"),
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		},

		Orders: Orders{
			MaxLines:            envInt("ORDER_MAX_LINES", 50),
			DefaultPageSize:     envInt("ORDER_DEFAULT_PAGE_SIZE", 20),
			MaxPageSize:         envInt("ORDER_MAX_PAGE_SIZE", 100),
			NotificationTimeout: envDuration("ORDER_NOTIFICATION_TIMEOUT", 5*time.Second),
		},

		Auth: Auth{
			JWTSecret: env("JWT_SECRET", ""),
			TokenTTL:  envDuration("JWT_TTL", 24*time.Hour),
			Issuer:    env("JWT_ISSUER", "garden-shop"),
		},

		SMTP: SMTP{
			Host:     env("SMTP_HOST", "localhost"),
			Port:     envInt("SMTP_PORT", 1025),
			Username: env("SMTP_USERNAME", ""),
			Password: env("SMTP_PASSWORD", ""),
			From:     env("SMTP_FROM", "shop@garden.local"),
		},

		Ollama: Ollama{
			BaseURL: env("OLLAMA_BASE_URL", "http://localhost:11434"),
			Model:   env("OLLAMA_MODEL", "llama3"),
			Timeout: envDuration("OLLAMA_TIMEOUT", 30*time.Second),

			MaxFailures:  envInt("OLLAMA_BREAKER_MAX_FAILURES", 5),
			OpenInterval: envDuration("OLLAMA_BREAKER_OPEN_INTERVAL", 30*time.Second),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
