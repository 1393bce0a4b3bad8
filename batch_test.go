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

package arpabet

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-arpabet/internal/folding"
)

// panicLookuper panics when looking up word.
type panicLookuper struct {
	Lookuper
	word string
}

func (l *panicLookuper) Lookup(word string) (string, bool) {
	if word == l.word {
		panic("lookup failed")
	}
	return l.Lookuper.Lookup(word)
}

func TestConvertReader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		opts     *BatchOptions
		expected []*BatchResult
	}{
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:  "lines",
			input: "विकास\n\n  नेपाल  \n\t\nabc\nनेपाल।",
			expected: []*BatchResult{
				{Original: "विकास", Transcription: "V IH0 K AA1 S", Source: SourceDictionary},
				{Original: "नेपाल", Transcription: "N EY0 P AA1 L AH0", Source: SourceRules},
				{Original: "abc", Transcription: "", Source: SourceRules},
				{Original: "नेपाल", Transcription: "N EY0 P AA1 L AH0", Source: SourceRules},
			},
		},
		{
			name:  "crlf",
			input: "विकास\r\nकमल\r\n",
			expected: []*BatchResult{
				{Original: "विकास", Transcription: "V IH0 K AA1 S", Source: SourceDictionary},
				{Original: "कमल", Transcription: "K AH1_N M AH0 L AH0", Source: SourceRules},
			},
		},
		{
			name:  "serial",
			input: "कमल\nविकास\n",
			opts:  &BatchOptions{Concurrency: 1},
			expected: []*BatchResult{
				{Original: "कमल", Transcription: "K AH1_N M AH0 L AH0", Source: SourceRules},
				{Original: "विकास", Transcription: "V IH0 K AA1 S", Source: SourceDictionary},
			},
		},
		{
			name:  "no folding",
			input: " कमल\n",
			opts: &BatchOptions{
				Folder: func() transform.Transformer { return transform.Nop },
			},
			expected: []*BatchResult{
				{Original: " कमल", Transcription: "K AH1_N M AH0 L AH0", Source: SourceRules},
			},
		},
		{
			name:  "nfc",
			input: "\u0958\n",
			opts: &BatchOptions{
				Folder: func() transform.Transformer { return folding.New(&folding.Options{NFC: true}) },
			},
			expected: []*BatchResult{
				{Original: "\u0915\u093C", Transcription: "K AH0", Source: SourceRules},
			},
		},
	}

	c := New(builtin(t), nil)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.ConvertReader(context.Background(), strings.NewReader(test.input), test.opts)
			if err != nil {
				t.Fatalf("ConvertReader: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("ConvertReader (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestConvertAll_isolation(t *testing.T) {
	t.Parallel()

	c := New(&panicLookuper{Lookuper: builtin(t), word: "बम"}, nil)

	got, err := c.ConvertAll(context.Background(), []string{"विकास", "बम", "कमल"}, nil)
	if err != nil {
		t.Fatalf("ConvertAll: %v", err)
	}

	want := []*BatchResult{
		{Original: "विकास", Transcription: "V IH0 K AA1 S", Source: SourceDictionary},
		{Original: "बम", Err: ErrConversion},
		{Original: "कमल", Transcription: "K AH1_N M AH0 L AH0", Source: SourceRules},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("ConvertAll (-want, +got):\n%s", diff)
	}
}

func TestConvertAll_canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil, nil).ConvertAll(ctx, []string{"कमल", "नेपाल"}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ConvertAll: want: %v, got: %v", context.Canceled, err)
	}
}

func TestConvertAll_order(t *testing.T) {
	t.Parallel()

	words := []string{"कमल", "नेपाल", "आमा", "संसार", "ऋषि", "क्ष", "ठ्ठ", "सत्गुरु"}
	c := New(nil, nil)

	got, err := c.ConvertAll(context.Background(), words, &BatchOptions{Concurrency: 3})
	if err != nil {
		t.Fatalf("ConvertAll: %v", err)
	}
	if len(got) != len(words) {
		t.Fatalf("ConvertAll: want %d results, got %d", len(words), len(got))
	}
	for i, w := range words {
		if got[i].Original != w {
			t.Errorf("result %d: want: %q, got: %q", i, w, got[i].Original)
		}
		if want := c.Convert(w).Transcription; got[i].Transcription != want {
			t.Errorf("result %d: want: %q, got: %q", i, want, got[i].Transcription)
		}
	}
}
