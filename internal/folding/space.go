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
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// isSeparator reports whether r separates words in a line of input. Danda
// marks end a sentence and so are treated like spaces.
func isSeparator(r rune) bool {
	switch r {
	case '\u0964', '\u0965', '\u200B':
		return true
	}
	return unicode.IsSpace(r)
}

// SpaceFolder removes separators from the beginning and end of the input and
// replaces every internal run of separators with a single ASCII space.
type SpaceFolder struct {
	// started is true after the first non-separator rune.
	started bool

	// pending is true while inside an internal run of separators.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (f *SpaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if isSeparator(c) {
			nSrc += size
			f.pending = f.started
			continue
		}

		// c may be utf8.RuneError, whose encoding is longer than size.
		need := utf8.RuneLen(c)
		if f.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if f.pending {
			dst[nDst] = ' '
			nDst++
			f.pending = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
		f.started = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *SpaceFolder) Reset() {
	*f = SpaceFolder{}
}
