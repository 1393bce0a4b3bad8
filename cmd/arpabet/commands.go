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
	"os"
	"strings"

	"github.com/k3a/html2text"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-arpabet"
	"github.com/ianlewis/go-arpabet/internal/folding"
	"github.com/ianlewis/go-arpabet/trace"
)

func convertCommand(st *appState) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "convert words to ARPABET",
		ArgsUsage: "WORD...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:               "trace",
				Usage:              "print the segments and rules of each conversion",
				Aliases:            []string{"t"},
				DisableDefaultText: true,
			},
		},
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("%w: missing WORD", ErrFlagParse)
			}

			d, err := st.dictionary()
			if err != nil {
				return err
			}
			conv := arpabet.New(d, nil)

			w := c.App.Writer
			for _, word := range c.Args().Slice() {
				res := conv.Convert(word)
				fmt.Fprintf(w, "%s\t%s\t%s\n", res.Word, res.Transcription, res.Source)
				if c.Bool("trace") {
					printAnalysis(w, res.Analysis)
				}
			}
			return nil
		},
	}
}

// printAnalysis prints a conversion trace as two tables.
func printAnalysis(w io.Writer, a *trace.Analysis) {
	if len(a.Segments) > 0 {
		segs := table.New("Original", "Kind", "ARPABET", "Stress").WithWriter(w)
		for _, s := range a.Segments {
			stress := ""
			if s.Stress != nil {
				stress = s.Stress.String()
			}
			segs.AddRow(s.Original, s.Kind, s.Arpabet, stress)
		}
		segs.Print()
		fmt.Fprintln(w)
	}

	rules := table.New("Rule", "Applied", "Description").WithWriter(w)
	for _, r := range a.Rules {
		rules.AddRow(r.Name, r.Applied, r.Description)
	}
	rules.Print()
	fmt.Fprintln(w)
}

func batchCommand(st *appState) *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "convert one word per line from FILE or standard input",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:               "html",
				Usage:              "extract the text of HTML input first",
				DisableDefaultText: true,
			},
			&cli.IntFlag{
				Name:    "jobs",
				Usage:   "convert `N` words in parallel (0 uses all CPUs)",
				Aliases: []string{"j"},
			},
			&cli.BoolFlag{
				Name:               "nfc",
				Usage:              "normalize input to Unicode NFC",
				DisableDefaultText: true,
			},
		},
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if c.NArg() > 1 {
				return fmt.Errorf("%w: too many arguments", ErrFlagParse)
			}

			r := c.App.Reader
			if path := c.Args().First(); path != "" && path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("opening %q: %w", path, err)
				}
				defer f.Close()
				r = f
			}

			if c.Bool("html") {
				b, err := io.ReadAll(r)
				if err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				r = strings.NewReader(html2text.HTML2Text(string(b)))
			}

			jobs := st.cfg.Batch.Concurrency
			if c.IsSet("jobs") {
				jobs = c.Int("jobs")
			}
			nfc := st.cfg.Batch.NFC || c.Bool("nfc")
			opts := &arpabet.BatchOptions{
				Concurrency: jobs,
				Folder: func() transform.Transformer {
					return folding.New(&folding.Options{NFC: nfc})
				},
			}

			d, err := st.dictionary()
			if err != nil {
				return err
			}
			results, err := arpabet.New(d, nil).ConvertReader(c.Context, r, opts)
			if err != nil {
				return err
			}

			failed := 0
			for _, res := range results {
				if res.Err != nil {
					failed++
					fmt.Fprintf(c.App.ErrWriter, "%s: %v\n", res.Original, res.Err)
					continue
				}
				fmt.Fprintf(c.App.Writer, "%s\t%s\n", res.Original, res.Transcription)
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d words failed", ErrBatch, failed, len(results))
			}
			return nil
		},
	}
}

func lookupCommand(st *appState) *cli.Command {
	return &cli.Command{
		Name:         "lookup",
		Usage:        "look up a word in the dictionary only",
		ArgsUsage:    "WORD",
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: want exactly one WORD", ErrFlagParse)
			}

			d, err := st.dictionary()
			if err != nil {
				return err
			}

			word := c.Args().First()
			t, ok := d.Lookup(word)
			if !ok {
				return fmt.Errorf("%w: %q", ErrNotFound, word)
			}
			fmt.Fprintln(c.App.Writer, t)
			return nil
		},
	}
}

func addCommand(st *appState) *cli.Command {
	return &cli.Command{
		Name:         "add",
		Usage:        "add a dictionary entry and persist it to the cache file",
		ArgsUsage:    "WORD TOKEN...",
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return fmt.Errorf("%w: want WORD and at least one TOKEN", ErrFlagParse)
			}
			if st.cfg.Dictionary.Cache == "" {
				return ErrNoCache
			}

			d, err := st.dictionary()
			if err != nil {
				return err
			}

			args := c.Args().Slice()
			if err := d.Add(args[0], strings.Join(args[1:], " ")); err != nil {
				return fmt.Errorf("%w: %w", ErrFlagParse, err)
			}
			st.logger.Info("added entry",
				slog.String("word", args[0]),
				slog.String("cache", st.cfg.Dictionary.Cache),
			)
			return nil
		},
	}
}

func listCommand(st *appState) *cli.Command {
	return &cli.Command{
		Name:         "list",
		Usage:        "list dictionary entries",
		OnUsageError: usageError,
		Action: func(c *cli.Context) error {
			d, err := st.dictionary()
			if err != nil {
				return err
			}

			tbl := table.New("Word", "Transcription").WithWriter(c.App.Writer)
			entries := d.Entries()
			for _, e := range entries {
				tbl.AddRow(e.Word, e.Transcription)
			}
			tbl.Print()
			fmt.Fprintf(c.App.Writer, "\n%d entries\n", len(entries))
			return nil
		},
	}
}
