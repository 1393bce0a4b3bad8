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

package folding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/transform"
)

func TestSpaceFolder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   []byte
		dst   []byte
		atEOF bool

		expected []byte
		nDst     int
		nSrc     int
		err      error
	}{
		{
			name:  "leading whitespace",
			src:   []byte(" \t\u3000foo"),
			dst:   make([]byte, 5),
			atEOF: false,

			expected: []byte{'f', 'o', 'o', 0, 0},
			nDst:     3,
			nSrc:     8,
		},
		{
			name:  "trailing whitespace",
			src:   []byte("foo \t\u3000"),
			dst:   make([]byte, 5),
			atEOF: false,

			expected: []byte{'f', 'o', 'o', 0, 0},
			nDst:     3,
			nSrc:     8,
		},
		{
			name:  "separator spans",
			src:   []byte("foo \u200B bar\u0964\u0964baz\u0965"),
			dst:   make([]byte, 12),
			atEOF: true,

			expected: []byte{'f', 'o', 'o', ' ', 'b', 'a', 'r', ' ', 'b', 'a', 'z', 0},
			nDst:     11,
			nSrc:     23,
		},
		{
			name:  "short dst",
			src:   []byte(" foo bar"),
			dst:   make([]byte, 3),
			atEOF: true,

			expected: []byte{'f', 'o', 'o'},
			nDst:     3,
			nSrc:     5,
			err:      transform.ErrShortDst,
		},
		{
			name: "short src incomplete unicode",
			// NOTE: the last character is only partially included.
			src:   []byte(" \t\u3000 foo \t\u3000")[:12],
			dst:   make([]byte, 10),
			atEOF: false,

			expected: []byte{'f', 'o', 'o', 0, 0, 0, 0, 0, 0, 0},
			nDst:     3,
			nSrc:     11,
			err:      transform.ErrShortSrc,
		},
		{
			name: "incomplete unicode at EOF",
			// NOTE: the last character is only partially included.
			src:   []byte(" \t\u3000 foo \t\u3000")[:12],
			dst:   make([]byte, 10),
			atEOF: true,

			// NOTE: []byte{0xef, 0xbf, 0xbd} is utf8.RuneError.
			expected: []byte{'f', 'o', 'o', ' ', 0xef, 0xbf, 0xbd, 0, 0, 0},
			nDst:     7,
			nSrc:     12,
		},
		{
			name:  "invalid unicode",
			src:   []byte{' ', 'f', 'o', 'o', ' ', 0xe3, ' ', ' ', 'b', 'a', 'r'},
			dst:   make([]byte, 12),
			atEOF: false,

			// Invalid bytes are treated as non-separators.
			expected: []byte{'f', 'o', 'o', ' ', 0xef, 0xbf, 0xbd, ' ', 'b', 'a', 'r', 0},
			nDst:     11,
			nSrc:     11,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			f := &SpaceFolder{}
			nDst, nSrc, err := f.Transform(test.dst, test.src, test.atEOF)

			if diff := cmp.Diff(test.expected, test.dst); diff != "" {
				t.Errorf("unexpected dst (-want, +got):\n%s", diff)
			}
			if got, want := nDst, test.nDst; got != want {
				t.Errorf("unexpected nDst, want: %d, got: %d", want, got)
			}
			if got, want := nSrc, test.nSrc; got != want {
				t.Errorf("unexpected nSrc, want: %d, got: %d", want, got)
			}
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("unexpected err (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		opts     *Options
		expected string
	}{
		{
			name:     "trim",
			input:    "  नेपाल \t",
			expected: "नेपाल",
		},
		{
			name:     "danda",
			input:    "नेपाल\u0964",
			expected: "नेपाल",
		},
		{
			name:     "joiners",
			input:    "\uFEFFक्\u200Dष",
			expected: "क्ष",
		},
		{
			name:     "blank",
			input:    " \u200B ",
			expected: "",
		},
		{
			name:     "no normalization",
			input:    "\u0958",
			expected: "\u0958",
		},
		{
			name:     "nfc",
			input:    "\u0958",
			opts:     &Options{NFC: true},
			expected: "\u0915\u093C",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := transform.String(New(test.opts), test.input)
			if err != nil {
				t.Fatalf("transform.String: %v", err)
			}
			if got != test.expected {
				t.Errorf("want: %q, got: %q", test.expected, got)
			}
		})
	}
}
