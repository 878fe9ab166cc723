package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, intervals, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Admin     AdminConfig
	Gateway   GatewayConfig
	Provider  ProviderConfig
	Queue     QueueConfig
	Reconcile ReconcileConfig
	AMQP      AMQPConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// AdminConfig holds the single operator account for the admin surface.
type AdminConfig struct {
	Email        string `envconfig:"ADMIN_EMAIL" required:"true"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type GatewayConfig struct {
	BaseURL             string        `envconfig:"GATEWAY_BASE_URL" default:"https://api.mercadopago.com"`
	AccessToken         string        `envconfig:"GATEWAY_ACCESS_TOKEN" required:"true"`
	WebhookSecret       string        `envconfig:"GATEWAY_WEBHOOK_SECRET" default:""`
	SignatureStrict     bool          `envconfig:"WEBHOOK_SIGNATURE_STRICT" default:"false"`
	SynthesizeUnmatched bool          `envconfig:"WEBHOOK_SYNTHESIZE_UNMATCHED" default:"false"`
	Timeout             time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
}

type ProviderConfig struct {
	BaseURL   string        `envconfig:"PROVIDER_BASE_URL" required:"true"`
	APIKey    string        `envconfig:"PROVIDER_API_KEY" required:"true"`
	BareCode  bool          `envconfig:"PROVIDER_BARE_CODE" default:"false"`
	Timeout   time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"30s"`
	ItemDelay time.Duration `envconfig:"PROVIDER_ITEM_DELAY" default:"2s"`
}

type QueueConfig struct {
	PollInterval time.Duration `envconfig:"QUEUE_POLL_INTERVAL" default:"2s"`
	// Lease must cover JobTimeout, otherwise a still-running job can be
	// reclaimed and executed twice.
	Lease        time.Duration `envconfig:"QUEUE_LEASE" default:"6m"`
	BaseDelay    time.Duration `envconfig:"QUEUE_BASE_DELAY" default:"30s"`
	MaxAttempts  int           `envconfig:"QUEUE_MAX_ATTEMPTS" default:"5"`
	JobTimeout   time.Duration `envconfig:"QUEUE_JOB_TIMEOUT" default:"5m"`
}

type ReconcileConfig struct {
	LockTTL        time.Duration `envconfig:"RECONCILE_LOCK_TTL" default:"3m"`
	MaxTargets     int           `envconfig:"RECONCILE_MAX_TARGETS" default:"5"`
	SweepInterval  time.Duration `envconfig:"RECONCILE_SWEEP_INTERVAL" default:"2m"`
	BatchSize      int           `envconfig:"RECONCILE_BATCH_SIZE" default:"5"`
	AttemptCeiling int           `envconfig:"RECONCILE_ATTEMPT_CEILING" default:"3"`
	ProfileWindow  time.Duration `envconfig:"RECONCILE_PROFILE_WINDOW" default:"30m"`
}

type AMQPConfig struct {
	URL     string `envconfig:"AMQP_URL" default:""`
	Queue   string `envconfig:"AMQP_QUEUE" default:"fulfillment.events"`
	Enabled bool   `envconfig:"AMQP_ENABLED" default:"false"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
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
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Gateway: GatewayConfig{
			BaseURL: "http://localhost:18080",
			Timeout: 2 * time.Second,
		},
		Provider: ProviderConfig{
			BaseURL:   "http://localhost:18081",
			APIKey:    "test-key",
			Timeout:   2 * time.Second,
			ItemDelay: 0,
		},
		Queue: QueueConfig{
			PollInterval: 50 * time.Millisecond,
			Lease:        2 * time.Minute,
			BaseDelay:    time.Second,
			MaxAttempts:  3,
			JobTimeout:   time.Minute,
		},
		Reconcile: ReconcileConfig{
			LockTTL:        time.Minute,
			MaxTargets:     5,
			SweepInterval:  time.Minute,
			BatchSize:      5,
			AttemptCeiling: 3,
			ProfileWindow:  30 * time.Minute,
		},
	}
}
