package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"svw.info/eggdrop/internal/validator"
)

const (
	// EnvPrefix marks environment variables read as configuration.
	EnvPrefix = "EGGDROP_"

	maxConfigFileSize = 1024 * 1024 // 1MB
)

// Load builds the configuration.
//
// Precedence (highest to lowest):
//  1. Environment variables (EGGDROP_CHUNKED_SIZE, EGGDROP_SHRINKING_FIRST_SIZE, ...)
//  2. YAML file at path, when path is not empty
//  3. Default()
//
// Environment variables drop the prefix, are lowercased, and split on the
// first underscore only:
//
//	EGGDROP_LOG_LEVEL          -> log.level
//	EGGDROP_SHRINKING_SHRINK_BY -> shrinking.shrink_by
//	EGGDROP_STRATEGIES         -> strategies (comma separated)
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := readFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Unmarshal over the defaults so unset keys keep their default value.
	cfg := Default()
	if k.Exists("strategies") {
		// mapstructure merges into a non-nil slice instead of replacing it.
		cfg.Strategies = nil
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := validator.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("config: log: %w", err)
	}
	return nil
}

// envValue maps an environment variable onto its config key. Strategies are
// split on commas because the decoder has no string-to-slice hook.
func envValue(key, value string) (string, any) {
	k := envKey(key)
	if k != "strategies" {
		return k, value
	}
	names := make([]string, 0, strings.Count(value, ",")+1)
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return k, names
}

func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(lower, "_")
	if !ok {
		return lower
	}
	return section + "." + field
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxConfigFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if len(content) > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}
	return content, nil
}
