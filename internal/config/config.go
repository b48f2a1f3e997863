package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Storage drivers for sessions and guesses
const (
	StoreDriverRedis  = "redis"
	StoreDriverSQLite = "sqlite"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	StoreDriver   string `env:"STORE_DRIVER" envDefault:"redis"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"data/pinpoint.db"`

	CatalogPath string `env:"CATALOG_PATH" envDefault:"catalog.yaml"`

	// LocalStateTTL expires drafts and current-session pointers kept in Redis
	LocalStateTTL time.Duration `env:"LOCAL_STATE_TTL" envDefault:"720h"`

	// The Discord bot only starts when a token is set
	DiscordToken         string `env:"DISCORD_TOKEN"`
	DiscordApplicationID string `env:"DISCORD_APPLICATION_ID"`
	DiscordGuildID       string `env:"DISCORD_GUILD_ID"`
}

// Load reads the configuration from the environment. Values from the given
// dotenv files (or ./.env when none are given and it exists) fill in
// variables the environment does not set.
func Load(files ...string) (*Config, error) {
	environment := env.ToMap(os.Environ())

	dotenv, err := readDotEnv(files)
	if err != nil {
		return nil, err
	}
	for k, v := range dotenv {
		if _, ok := environment[k]; !ok {
			environment[k] = v
		}
	}

	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: environment})
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readDotEnv(files []string) (map[string]string, error) {
	if len(files) > 0 {
		values, err := godotenv.Read(files...)
		if err != nil {
			return nil, fmt.Errorf("reading dotenv: %w", err)
		}
		return values, nil
	}

	values, err := godotenv.Read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading .env: %w", err)
	}
	return values, nil
}

func (c *Config) validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}

	switch c.StoreDriver {
	case StoreDriverRedis, StoreDriverSQLite:
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q: want %s or %s", c.StoreDriver, StoreDriverRedis, StoreDriverSQLite)
	}

	if c.LocalStateTTL < 0 {
		return errors.New("LOCAL_STATE_TTL cannot be negative")
	}

	if c.DiscordToken != "" && c.DiscordApplicationID == "" {
		return errors.New("DISCORD_APPLICATION_ID is required when DISCORD_TOKEN is set")
	}

	return nil
}

// Level is the parsed log level
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// DiscordEnabled reports whether the Discord bot should run
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}
