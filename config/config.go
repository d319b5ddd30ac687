package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"go-currency-converter/rates"
)

const (
	// PathEnv names the variable holding an optional YAML config file
	PathEnv = "CONVERTER_CONFIG_PATH"

	// EnvFile optional dotenv file loaded before the environment is read
	EnvFile = ".env"
)

type Config struct {
	HTTP    HTTP    `yaml:"http"`
	Rates   Rates   `yaml:"rates"`
	Display Display `yaml:"display"`
	Log     Log     `yaml:"log"`
}

type HTTP struct {
	Addr            string        `yaml:"addr" env:"CONVERTER_HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"CONVERTER_HTTP_READ_TIMEOUT" env-default:"5s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"CONVERTER_HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type Rates struct {
	Base        string        `yaml:"base" env:"CONVERTER_RATES_BASE"`
	PrimaryURL  string        `yaml:"primary_url" env:"CONVERTER_RATES_PRIMARY_URL"`
	FallbackURL string        `yaml:"fallback_url" env:"CONVERTER_RATES_FALLBACK_URL"`
	Timeout     time.Duration `yaml:"timeout" env:"CONVERTER_RATES_TIMEOUT" env-default:"10s"`
}

type Display struct {
	Locale string  `yaml:"locale" env:"CONVERTER_DISPLAY_LOCALE" env-default:"en"`
	From   string  `yaml:"from" env:"CONVERTER_DISPLAY_FROM" env-default:"USD"`
	To     string  `yaml:"to" env:"CONVERTER_DISPLAY_TO" env-default:"INR"`
	Amount float64 `yaml:"amount" env:"CONVERTER_DISPLAY_AMOUNT" env-default:"1"`
}

type Log struct {
	Level  string `yaml:"level" env:"CONVERTER_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"CONVERTER_LOG_FORMAT" env-default:"logfmt"`
}

// Load reads EnvFile if present, then the YAML file named by PathEnv if set,
// then the environment. Environment variables win over the file.
func Load() (*Config, error) {
	return LoadFrom(EnvFile)
}

// LoadFrom is Load with an explicit dotenv file
func LoadFrom(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %v: %w", envFile, err)
	}

	var cfg Config
	if path := os.Getenv(PathEnv); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config file %v: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	cfg.Rates.defaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// defaults fills unset rate settings from the rates package
func (r *Rates) defaults() {
	if r.Base == "" {
		r.Base = string(rates.DefaultBase)
	}
	if r.PrimaryURL == "" {
		r.PrimaryURL = rates.PrimaryUrlBase
	}
	if r.FallbackURL == "" {
		r.FallbackURL = rates.FallbackUrlBase
	}
}

func (c *Config) validate() error {
	switch {
	case c.Rates.Timeout < 0:
		return errors.New("rates.timeout is negative")
	case c.Display.Amount < 0:
		return errors.New("display.amount is negative")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "logfmt", "json":
	default:
		return fmt.Errorf("unknown log.format %q", c.Log.Format)
	}
	return nil
}
