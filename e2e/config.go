package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_COLOURS enables colorized step headers for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_TIMEOUT bounds every wait on the network
	Timeout time.Duration `envconfig:"E2E_TIMEOUT" default:"15s"`
	// E2E_LOG_LEVEL is the level of both peers' loggers
	LogLevel string `envconfig:"E2E_LOG_LEVEL" default:"WARN"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
