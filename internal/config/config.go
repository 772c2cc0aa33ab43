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

	Postgres Postgres `validate:"required"`

	Redis Redis `validate:"required"`

	Kafka Kafka `validate:"required"`

	Stripe Stripe `validate:"required"`

	Auth Auth `validate:"required"`

	Checkout Checkout `validate:"required"`

	Cache Cache

	Telemetry Telemetry
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
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

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`

	// How long a pending payment survives without activity.
	PendingTTL time.Duration `validate:"gt=0"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`

	PaymentEventsTopic  string `validate:"required"`
	OrderConfirmedTopic string `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Stripe struct {
	SecretKey     string `validate:"required"`
	WebhookSecret string
}

type Auth struct {
	JWTSecret string `validate:"required,min=16"`
}

type Checkout struct {
	Currency string `validate:"required,len=3"`

	// Where the gateway sends the browser after a hosted confirmation.
	ReturnURL string `validate:"required,url"`

	PaymentBackendURL string        `validate:"required,url"`
	BackendTimeout    time.Duration `validate:"gt=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=0"`
	TTL      time.Duration `validate:"gte=0"`
}

type Telemetry struct {
	ServiceName  string
	OTLPEndpoint string
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

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "checkout"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: Redis{
			Addr:       env("REDIS_ADDR", "localhost:6379"),
			Password:   env("REDIS_PASSWORD", ""),
			DB:         envInt("REDIS_DB", 0),
			PendingTTL: envDuration("PENDING_PAYMENT_TTL", 24*time.Hour),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "checkout-service"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			PaymentEventsTopic:  env("KAFKA_PAYMENT_EVENTS_TOPIC", "payment-events"),
			OrderConfirmedTopic: env("KAFKA_ORDER_CONFIRMED_TOPIC", "orders-confirmed"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Stripe: Stripe{
			SecretKey:     env("STRIPE_SECRET_KEY", ""),
			WebhookSecret: env("STRIPE_WEBHOOK_SECRET", ""),
		},

		Auth: Auth{
			JWTSecret: env("JWT_SECRET", ""),
		},

		Checkout: Checkout{
			Currency:          strings.ToUpper(env("CHECKOUT_CURRENCY", "USD")),
			ReturnURL:         env("CHECKOUT_RETURN_URL", "http://localhost:3000/checkout/return"),
			PaymentBackendURL: env("PAYMENT_BACKEND_URL", "http://localhost:8080/payments"),
			BackendTimeout:    envDuration("PAYMENT_BACKEND_TIMEOUT", 10*time.Second),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Telemetry: Telemetry{
			ServiceName:  env("OTEL_SERVICE_NAME", "checkout-service"),
			OTLPEndpoint: env("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
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
