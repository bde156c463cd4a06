package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const DefaultEnvFile = ".env"

type Config struct {
	Port          uint16 `envconfig:"PORT" default:"3001" required:"true"`
	AllowedOrigin string `envconfig:"CLINICAS_ALLOWED_ORIGIN" default:"http://localhost:3000"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
}

func New() *Config {
	return &Config{}
}

func NewConfig() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) LoadFromEnv() error {
	return envconfig.Process("", c)
}

// LoadDotEnv populates the environment from the given files without
// overriding variables which are already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
