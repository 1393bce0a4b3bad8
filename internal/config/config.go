// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads arpabet configuration from an optional YAML file and
// ARPABET_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// ErrInvalid indicates a configuration value that failed validation.
var ErrInvalid = errors.New("invalid configuration")

// Config is the root configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Batch      BatchConfig      `yaml:"batch"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig holds pronunciation dictionary settings.
type DictionaryConfig struct {
	// SkipBuiltin disables the embedded seed entries.
	SkipBuiltin bool `yaml:"skip_builtin" env:"ARPABET_DICT_SKIP_BUILTIN"`

	// Seeds are seed files loaded after the builtin entries, in order.
	Seeds []string `yaml:"seeds" env:"ARPABET_DICT_SEEDS" env-separator:","`

	// Cache is the file that added entries are persisted to. It is loaded
	// last. Empty selects a per-user default location.
	Cache string `yaml:"cache" env:"ARPABET_DICT_CACHE"`
}

// BatchConfig holds batch conversion settings.
type BatchConfig struct {
	// Concurrency is the number of words converted in parallel. Zero uses
	// all CPUs.
	Concurrency int `yaml:"concurrency" env:"ARPABET_BATCH_CONCURRENCY" env-default:"0"`

	// NFC normalizes input lines to Unicode NFC.
	NFC bool `yaml:"nfc" env:"ARPABET_BATCH_NFC" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"ARPABET_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"ARPABET_LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from the YAML file at path and environment
// variables. Priority: ENV > YAML > defaults. If path is empty configuration
// is loaded from ENV and defaults only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Batch.Concurrency < 0 {
		return fmt.Errorf("%w: batch.concurrency must be >= 0 (got %d)", ErrInvalid, c.Batch.Concurrency)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json (got %q)", ErrInvalid, c.Log.Format)
	}
	for i, s := range c.Dictionary.Seeds {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: dictionary.seeds[%d] is empty", ErrInvalid, i)
		}
	}
	return nil
}

// SlogLevel returns the configured log level.
func (l *LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return level, nil
}
