// Package config loads eggdrop configuration from defaults, an optional YAML
// file and EGGDROP_ environment variables.
package config

import (
	"svw.info/eggdrop/internal/domain"
	"svw.info/eggdrop/internal/logging"
	"svw.info/eggdrop/internal/strategy"
)

// Config is the full eggdrop configuration.
type Config struct {
	Log        logging.Config  `koanf:"log"`
	Report     ReportConfig    `koanf:"report"`
	Strategies []string        `koanf:"strategies" validate:"min=1,dive,strategy"`
	Chunked    ChunkedConfig   `koanf:"chunked"`
	Shrinking  ShrinkingConfig `koanf:"shrinking"`
}

// ReportConfig controls how results are written.
type ReportConfig struct {
	Format  string `koanf:"format" validate:"oneof=text json"`
	Metrics bool   `koanf:"metrics"`
}

// ChunkedConfig tunes the chunked strategy.
type ChunkedConfig struct {
	Size int `koanf:"size" validate:"gte=1"`
}

// ShrinkingConfig tunes the shrinking chunked strategy.
type ShrinkingConfig struct {
	FirstSize int `koanf:"first_size" validate:"gte=1"`
	ShrinkBy  int `koanf:"shrink_by" validate:"gte=0"`
}

// Default returns the built-in configuration: every strategy, chunk size 10,
// shrinking from 14 by 1.
func Default() Config {
	return Config{
		Log:        *logging.NewDefaultConfig(),
		Report:     ReportConfig{Format: "text"},
		Strategies: []string{"linear", "chunked", "shrinking"},
		Chunked:    ChunkedConfig{Size: 10},
		Shrinking:  ShrinkingConfig{FirstSize: 14, ShrinkBy: 1},
	}
}

// Kinds parses the configured strategy names in order.
func (c *Config) Kinds() ([]domain.Kind, error) {
	kinds := make([]domain.Kind, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		k, err := domain.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Params returns the strategy tuning parameters.
func (c *Config) Params() strategy.Params {
	return strategy.Params{
		ChunkSize: c.Chunked.Size,
		FirstSize: c.Shrinking.FirstSize,
		ShrinkBy:  c.Shrinking.ShrinkBy,
	}
}
