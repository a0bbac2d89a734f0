package config

import (
	"fmt"
	"io"

	"github.com/kelseyhightower/envconfig"
	logger "github.com/sirupsen/logrus"
)

const envPrefix = "promotion"

// EnvConfig is read from PROMOTION_* environment variables.
type EnvConfig struct {
	Templates []string `envconfig:"TEMPLATES"`
	Output    string   `envconfig:"OUTPUT"`
	LogLevel  string   `envconfig:"LOG_LEVEL" default:"info"`
	GroupSize int      `envconfig:"GROUP_SIZE" default:"3"`
}

func ReadEnv() (env EnvConfig, err error) {
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return env, fmt.Errorf("failed to process env var: %w", err)
	}
	return env, nil
}

// ConfigureLogger sets the level and output of the logrus standard logger.
func ConfigureLogger(out io.Writer, level string, verbose bool) error {
	parsed, err := logger.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if verbose {
		parsed = logger.DebugLevel
	}
	logger.SetOutput(out)
	logger.SetLevel(parsed)
	return nil
}
