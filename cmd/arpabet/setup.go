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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ianlewis/go-arpabet/dictionary"
	"github.com/ianlewis/go-arpabet/internal/config"
)

// newLogger returns a logger writing to w. Format "json" produces JSON
// output, anything else human-readable text.
func newLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), nil
}

// loadDictionary builds the dictionary from the builtin entries, the seed
// files and the cache file, in that order. Later entries replace earlier
// ones. The cache holds only words added with the add command.
func loadDictionary(cfg *config.DictionaryConfig, logger *slog.Logger) (*dictionary.Dictionary, error) {
	opts := &dictionary.Options{Logger: logger}

	var cache *dictionary.FileCache
	if cfg.Cache != "" {
		cache = &dictionary.FileCache{Path: cfg.Cache}
		opts.Cache = cache
	}
	d := dictionary.New(opts)

	if !cfg.SkipBuiltin {
		b, err := dictionary.Builtin(nil)
		if err != nil {
			return nil, err
		}
		d.Merge(b)
	}

	for _, path := range cfg.Seeds {
		s, err := dictionary.Open(path, nil)
		if err != nil {
			return nil, fmt.Errorf("loading seed: %w", err)
		}
		logger.Debug("loaded seed file",
			slog.String("path", path),
			slog.Int("entries", s.Size()),
		)
		d.Merge(s)
	}

	if cache != nil {
		c, err := cache.Load(nil)
		if err != nil {
			return nil, fmt.Errorf("loading cache: %w", err)
		}
		logger.Debug("loaded cache file",
			slog.String("path", cache.Path),
			slog.Int("entries", c.Size()),
		)
		d.Restore(c)
	}

	return d, nil
}
