package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

// DefaultSecretKey is the SECRET_KEY used when none is set. It is only
// accepted outside production.
const DefaultSecretKey = "secret"

// ErrDefaultSecret is returned when production runs without its own
// SECRET_KEY.
var ErrDefaultSecret = errors.New("SECRET_KEY must be set to a non-default value in production")

type Database struct {
	Addr     string `env:"DB_ADDR"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
}

// Config is read from the environment, with a .env file loaded first when
// present.
type Config struct {
	ProjectName string `env:"PROJECT_NAME" envDefault:"Monopoly Simulator"`
	Version     string `env:"VERSION" envDefault:"0.1.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG" envDefault:"true"`

	Host       string `env:"HOST" envDefault:"0.0.0.0"`
	Port       int    `env:"PORT" envDefault:"4101"`
	SocketPort int    `env:"SOCKET_PORT" envDefault:"8000"`
	APIPrefix  string `env:"API_PREFIX" envDefault:"/api/v1"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	SecretKey      string   `env:"SECRET_KEY" envDefault:"secret"`

	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"text"`
	LogMatches bool   `env:"LOG_MATCHES" envDefault:"false"`
	// StatusEvery logs every player's standing each N turns of a narrated
	// match. Zero disables it.
	StatusEvery int `env:"STATUS_EVERY" envDefault:"100"`

	DefaultSimulations int `env:"DEFAULT_SIMULATIONS" envDefault:"2"`
	MaxSimulations     int `env:"MAX_SIMULATIONS" envDefault:"1000"`
	Workers            int `env:"WORKERS" envDefault:"0"`

	RedisURL string `env:"REDIS_URL"`
	Database Database
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	if cfg.Production() && (cfg.SecretKey == "" || cfg.SecretKey == DefaultSecretKey) {
		return Config{}, ErrDefaultSecret
	}
	if cfg.DefaultSimulations < 1 || cfg.DefaultSimulations > cfg.MaxSimulations {
		return Config{}, fmt.Errorf("DEFAULT_SIMULATIONS must be between 1 and MAX_SIMULATIONS (%d), got %d",
			cfg.MaxSimulations, cfg.DefaultSimulations)
	}
	return cfg, nil
}

// Production reports whether ENVIRONMENT is production.
func (c Config) Production() bool {
	return strings.EqualFold(c.Environment, "production")
}

func (c *Config) normalize() {
	switch strings.ToLower(c.Environment) {
	case "production":
		c.Debug = false
	case "testing":
		c.Debug = true
	}
	c.APIPrefix = "/" + strings.Trim(c.APIPrefix, "/")
	if c.MaxSimulations < 1 {
		c.MaxSimulations = 1
	}
}

// Addr is the HTTP listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SocketAddr is the socket.io listen address.
func (c Config) SocketAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.SocketPort)
}
