package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timeouts, simulation tuning)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Pump    PumpConfig
	Cart    CartConfig
	Metrics MetricsConfig
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
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
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

// PumpConfig tunes the dispensing simulation. Increments are in dollars.
type PumpConfig struct {
	TickInterval         time.Duration `envconfig:"PUMP_TICK_INTERVAL" default:"1s"`
	HandshakeDelay       time.Duration `envconfig:"PUMP_HANDSHAKE_DELAY" default:"2s"`
	GracePeriod          time.Duration `envconfig:"PUMP_GRACE_PERIOD" default:"5s"`
	AuthorizationTimeout time.Duration `envconfig:"PUMP_AUTHORIZATION_TIMEOUT" default:"30s"`
	MinIncrement         float64       `envconfig:"PUMP_MIN_INCREMENT" default:"1.0"`
	MaxIncrement         float64       `envconfig:"PUMP_MAX_INCREMENT" default:"3.0"`
	StopProbability      float64       `envconfig:"PUMP_STOP_PROBABILITY" default:"0.1"`
	LowTankThreshold     float64       `envconfig:"PUMP_LOW_TANK_THRESHOLD" default:"0.2"`
}

type CartConfig struct {
	TaxRate float64 `envconfig:"CART_TAX_RATE" default:"0.0875"`
}

type MetricsConfig struct {
	Enabled      bool          `envconfig:"METRICS_ENABLED" default:"false"`
	Endpoint     string        `envconfig:"METRICS_OTLP_ENDPOINT" default:"localhost:4318"`
	Insecure     bool          `envconfig:"METRICS_OTLP_INSECURE" default:"true"`
	ServiceName  string        `envconfig:"METRICS_SERVICE_NAME" default:"fuelflow-pos"`
	ExportPeriod time.Duration `envconfig:"METRICS_EXPORT_PERIOD" default:"15s"`
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
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Pump: PumpConfig{
			TickInterval:         5 * time.Millisecond,
			HandshakeDelay:       time.Millisecond,
			GracePeriod:          50 * time.Millisecond,
			AuthorizationTimeout: time.Second,
			MinIncrement:         1.0,
			MaxIncrement:         3.0,
			StopProbability:      0,
			LowTankThreshold:     0.2,
		},
		Cart: CartConfig{
			TaxRate: 0.0875,
		},
	}
}
