package store

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	ModeConnection = "connection"
	ModeShared     = "shared"
)

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

type Config struct {
	URI            string `envconfig:"MONGODB_URI" required:"true"`
	DatabaseName   string `envconfig:"CLINICAS_DATABASE_NAME" default:"DentalAnalyticsSafe"`
	CollectionName string `envconfig:"CLINICAS_COLLECTION_NAME" default:"Clinicas"`

	// Mode selects how a handle is obtained for each request. In "connection"
	// mode every request dials and disconnects its own client, in "shared"
	// mode requests borrow a single long-lived client.
	Mode string `envconfig:"CLINICAS_CONNECTION_MODE" default:"connection"`
}

func (c *Config) Validate() error {
	if c.URI == "" {
		return fmt.Errorf("mongodb connection string is required")
	}
	switch c.Mode {
	case ModeConnection, ModeShared:
		return nil
	default:
		return fmt.Errorf("unsupported connection mode %q", c.Mode)
	}
}
