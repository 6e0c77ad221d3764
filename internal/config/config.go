package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn" env-description:"debug, info, warn or error"`
	Seed     uint64  `yaml:"seed" env:"TICTACTOE_SEED" env-description:"seed for the computer's moves, 0 picks a random one"`
	NoColor  bool    `yaml:"no-color" env:"TICTACTOE_NO_COLOR" env-description:"print marks without colors"`
	Metrics  Metrics `yaml:"metrics"`
}

type Metrics struct {
	Host string `yaml:"host" env:"TICTACTOE_METRICS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TICTACTOE_METRICS_PORT" env-description:"serve /metrics on this port, empty disables it"`
}

// Load - reads config from the yml file at path, falling back to environment variables when the file is missing.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Usage - describes the environment variables the config understands.
func Usage() string {
	description, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}

	return description
}

func (that *Metrics) Enabled() bool {
	return that.Port != ""
}

func (that *Metrics) GetMetricsAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
