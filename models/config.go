// Package models defines the dataset and configuration types shared by the commands.
package models

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read by LoadConfig.
const EnvPrefix = "ARTSTATS"

// Config holds runtime defaults. Environment variables seed it and CLI flags
// override individual values.
type Config struct {
	Language       string   `envconfig:"LANGUAGE" default:"ru"`
	ExtraStopWords []string `envconfig:"EXTRA_STOP_WORDS" default:"это"`
	Tokenizer      string   `envconfig:"TOKENIZER" default:"word"`
	Top            int      `envconfig:"TOP" default:"25"`
	Format         string   `envconfig:"FORMAT" default:"yaml"`
	Table          string   `envconfig:"TABLE" default:"articles"`
}

// LoadConfig reads ARTSTATS_* environment variables into a Config.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if cfg.Top < 0 {
		return nil, fmt.Errorf("invalid %s_TOP: %d", EnvPrefix, cfg.Top)
	}
	return &cfg, nil
}
