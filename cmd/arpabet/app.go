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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-arpabet/dictionary"
	"github.com/ianlewis/go-arpabet/internal/config"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError

	// ExitCodeFailure is the exit code for a lookup miss or a batch with
	// failed words.
	ExitCodeFailure
)

// ErrArpabet is a parent error for all command errors.
var ErrArpabet = errors.New("arpabet")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrArpabet)

// ErrNotFound indicates a word is not in the dictionary.
var ErrNotFound = fmt.Errorf("%w: not found", ErrArpabet)

// ErrBatch indicates that some words of a batch failed to convert.
var ErrBatch = fmt.Errorf("%w: batch", ErrArpabet)

// ErrNoCache indicates that no cache file is configured.
var ErrNoCache = fmt.Errorf("%w: no cache file", ErrArpabet)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

// appState is the state shared by commands. It is set up by the app's
// Before hook.
type appState struct {
	cfg    *config.Config
	logger *slog.Logger
	dict   *dictionary.Dictionary
}

// dictionary returns the dictionary, loading it on first use.
func (st *appState) dictionary() (*dictionary.Dictionary, error) {
	if st.dict != nil {
		return st.dict, nil
	}
	d, err := loadDictionary(&st.cfg.Dictionary, st.logger)
	if err != nil {
		return nil, err
	}
	st.dict = d
	return d, nil
}

// usageError wraps flag parsing errors.
func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

func printVersion(c *cli.Context) error {
	v := version.GetVersionInfo()
	_, err := fmt.Fprintln(c.App.Writer, v.String())
	return err
}

func newArpabetApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	st := &appState{}

	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Convert Nepali words to ARPABET.",
		Description: strings.Join([]string{
			"Nepali (Devanagari) to ARPABET converter written in Go.",
			"http://github.com/ianlewis/go-arpabet",
		}, "\n"),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from YAML `FILE`",
				Aliases: []string{"c"},
				EnvVars: []string{"ARPABET_CONFIG"},
			},
			&cli.StringSliceFlag{
				Name:    "dict",
				Usage:   "load dictionary entries from seed `FILE` (plain or .dz)",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:  "cache",
				Usage: "persist added entries to `FILE` (plain or .dz)",
			},
			&cli.BoolFlag{
				Name:               "no-builtin",
				Usage:              "do not load the builtin dictionary entries",
				DisableDefaultText: true,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL` (debug, info, warn, error)",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		OnUsageError:    usageError,
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			if c.IsSet("dict") {
				cfg.Dictionary.Seeds = append(cfg.Dictionary.Seeds, c.StringSlice("dict")...)
			}
			if c.IsSet("cache") {
				cfg.Dictionary.Cache = c.String("cache")
			}
			if cfg.Dictionary.Cache == "" {
				cfg.Dictionary.Cache = defaultCachePath()
			}
			if c.Bool("no-builtin") {
				cfg.Dictionary.SkipBuiltin = true
			}
			if c.IsSet("log-level") {
				cfg.Log.Level = c.String("log-level")
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("%w: %w", ErrFlagParse, err)
			}

			st.cfg = cfg
			st.logger, err = newLogger(cfg.Log, c.App.ErrWriter)
			return err
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			return cli.ShowAppHelp(c)
		},
		Commands: []*cli.Command{
			convertCommand(st),
			batchCommand(st),
			lookupCommand(st),
			addCommand(st),
			listCommand(st),
		},
	}
}
