package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB credentials)
// - default: Values common across all environments (timeouts, pool size, schedules)
// - optional integrations (Redis, RabbitMQ, OTLP) are disabled when their address is empty
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Redis     RedisConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	MQ        MQConfig
	Outbox    OutboxConfig
	Tracing   TracingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"3001"`
}

type DBConfig struct {
	Host         string        `envconfig:"DB_HOST" default:"localhost"`
	Port         string        `envconfig:"DB_PORT" default:"5432"`
	User         string        `envconfig:"DB_USER" required:"true"`
	Password     string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName       string        `envconfig:"DB_NAME" required:"true"`
	SSLMode      string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone     string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns     int32         `envconfig:"DB_MAX_CONNS" default:"10"`
	QueryTimeout time.Duration `envconfig:"DB_QUERY_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	FrontendURL      string        `envconfig:"FRONTEND_URL" default:"http://localhost:8080"`
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PATCH,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID,X-Cache"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type CacheConfig struct {
	MenuTTL time.Duration `envconfig:"CACHE_MENU_TTL" default:"5m"`
}

type RateLimitConfig struct {
	Enabled      bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Capacity     int     `envconfig:"RATE_LIMIT_CAPACITY" default:"20"`
	RefillPerSec float64 `envconfig:"RATE_LIMIT_REFILL_PER_SEC" default:"0.5"`
}

type MQConfig struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"barista.bookings"`
}

func (c MQConfig) Enabled() bool {
	return c.URL != ""
}

type OutboxConfig struct {
	RelaySpec   string        `envconfig:"OUTBOX_RELAY_SPEC" default:"@every 10s"`
	PurgeSpec   string        `envconfig:"OUTBOX_PURGE_SPEC" default:"@daily"`
	BatchSize   int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	MaxAttempts int32         `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"5"`
	RetryDelay  time.Duration `envconfig:"OUTBOX_RETRY_DELAY" default:"30s"`
	Retention   time.Duration `envconfig:"OUTBOX_RETENTION" default:"168h"`
	// PublishTimeout bounds one broker call; it must stay well under DB_QUERY_TIMEOUT.
	PublishTimeout time.Duration `envconfig:"OUTBOX_PUBLISH_TIMEOUT" default:"1s"`
}

type TracingConfig struct {
	Enabled     bool   `envconfig:"OTEL_ENABLED" default:"false"`
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"barista-cafe-api"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Origins merges FRONTEND_URL with any extra CORS_ALLOW_ORIGINS entries.
func (c CORSConfig) Origins() []string {
	origins := make([]string, 0, len(c.AllowOrigins)+1)
	seen := make(map[string]struct{}, len(c.AllowOrigins)+1)
	for _, o := range append([]string{c.FrontendURL}, c.AllowOrigins...) {
		if o == "" {
			continue
		}
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		origins = append(origins, o)
	}
	return origins
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:         "localhost",
			Port:         "15433", // Test DB port
			User:         "test",
			Password:     "test",
			DBName:       "test_db",
			SSLMode:      "disable",
			TimeZone:     "UTC",
			MaxConns:     10,
			QueryTimeout: 5 * time.Second,
		},
		CORS: CORSConfig{
			FrontendURL:  "http://localhost:8080",
			AllowMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Cache: CacheConfig{
			MenuTTL: time.Minute,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
		MQ: MQConfig{
			Exchange: "barista.bookings",
		},
		Outbox: OutboxConfig{
			RelaySpec:      "@every 1s",
			PurgeSpec:      "@daily",
			BatchSize:      50,
			MaxAttempts:    5,
			RetryDelay:     time.Second,
			Retention:      time.Hour,
			PublishTimeout: 500 * time.Millisecond,
		},
		Tracing: TracingConfig{
			ServiceName: "barista-cafe-api-test",
		},
	}
}
