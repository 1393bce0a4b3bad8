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

// Package folding implements text folding for input words.
package folding

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Options are options for New.
type Options struct {
	// NFC composes the input to Unicode normalization form C first.
	NFC bool
}

// isJoiner reports whether r is a zero width joiner, non-joiner or byte
// order mark. These control glyph shaping only.
func isJoiner(r rune) bool {
	return r == '\u200C' || r == '\u200D' || r == '\uFEFF'
}

// Joiners returns a transformer that removes zero width joiners and
// non-joiners.
func Joiners() transform.Transformer {
	return runes.Remove(runes.Predicate(isJoiner))
}

// New returns a transformer that folds a line of input into a word: it
// optionally normalizes to NFC, removes joiners and folds separators.
func New(opts *Options) transform.Transformer {
	var ts []transform.Transformer
	if opts != nil && opts.NFC {
		ts = append(ts, norm.NFC)
	}
	ts = append(ts, Joiners(), &SpaceFolder{})
	return transform.Chain(ts...)
}
