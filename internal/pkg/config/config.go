package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Billing BillingConfig
	Sweeper SweeperConfig
	Admin   AdminConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

type StoreConfig struct {
	Driver      string        `envconfig:"STORE_DRIVER" default:"postgres"`
	LockTimeout time.Duration `envconfig:"STORE_LOCK_TIMEOUT" default:"5s"`
	MaxRetries  int           `envconfig:"STORE_MAX_RETRIES" default:"3"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"parking"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"parking"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
}

// RedisConfig: an empty URL disables occupancy publishing.
type RedisConfig struct {
	URL           string        `envconfig:"REDIS_URL" default:""`
	ChannelPrefix string        `envconfig:"REDIS_CHANNEL_PREFIX" default:"parking:occupancy"`
	SnapshotTTL   time.Duration `envconfig:"REDIS_SNAPSHOT_TTL" default:"24h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02T15:04:05.000Z07:00"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// BillingConfig holds fee and fine policy. Hour multipliers are decimals ("1", "0.5").
type BillingConfig struct {
	Unit              time.Duration `envconfig:"BILLING_UNIT" default:"36s"`
	OverstayGrace     time.Duration `envconfig:"OVERSTAY_GRACE" default:"30m"`
	OverstayFineHours string        `envconfig:"OVERSTAY_FINE_HOURS" default:"1"`
	NoShowGrace       time.Duration `envconfig:"NO_SHOW_GRACE" default:"30m"`
	NoShowFineHours   string        `envconfig:"NO_SHOW_FINE_HOURS" default:"1"`
	EarlyArrival      time.Duration `envconfig:"EARLY_ARRIVAL_BUFFER" default:"30m"`
	PastTolerance     time.Duration `envconfig:"BOOKING_PAST_TOLERANCE" default:"5m"`
	UnpaidFeeAfter    time.Duration `envconfig:"UNPAID_FEE_AFTER" default:"720h"`
	UnpaidFineAfter   time.Duration `envconfig:"UNPAID_FINE_AFTER" default:"336h"`
	EscalationFactor  string        `envconfig:"ESCALATION_FACTOR" default:"2"`
}

type SweeperConfig struct {
	Enabled  bool          `envconfig:"SWEEPER_ENABLED" default:"true"`
	Interval time.Duration `envconfig:"SWEEPER_INTERVAL" default:"1m"`
}

// AdminConfig seeds a system administrator at start-up when both fields are set.
type AdminConfig struct {
	Username string `envconfig:"ADMIN_USERNAME" default:""`
	Password string `envconfig:"ADMIN_PASSWORD" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c BillingConfig) Validate() error {
	if c.Unit <= 0 {
		return fmt.Errorf("BILLING_UNIT must be positive, got %s", c.Unit)
	}
	for name, v := range map[string]string{
		"OVERSTAY_FINE_HOURS": c.OverstayFineHours,
		"NO_SHOW_FINE_HOURS":  c.NoShowFineHours,
		"ESCALATION_FACTOR":   c.EscalationFactor,
	} {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if d.IsNegative() {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}

func (c StoreConfig) Validate() error {
	switch c.Driver {
	case StoreDriverMemory, StoreDriverPostgres:
		return nil
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Driver)
	}
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Store.Validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.Billing.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver:      StoreDriverMemory,
			LockTimeout: 2 * time.Second,
			MaxRetries:  3,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
			Migrate:  true,
		},
		Redis: RedisConfig{
			ChannelPrefix: "parking:occupancy",
			SnapshotTTL:   time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02T15:04:05.000Z07:00",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Billing: BillingConfig{
			Unit:              36 * time.Second,
			OverstayGrace:     30 * time.Minute,
			OverstayFineHours: "1",
			NoShowGrace:       30 * time.Minute,
			NoShowFineHours:   "1",
			EarlyArrival:      30 * time.Minute,
			PastTolerance:     5 * time.Minute,
			UnpaidFeeAfter:    30 * 24 * time.Hour,
			UnpaidFineAfter:   14 * 24 * time.Hour,
			EscalationFactor:  "2",
		},
		Sweeper: SweeperConfig{
			Enabled:  false,
			Interval: time.Minute,
		},
	}
}
