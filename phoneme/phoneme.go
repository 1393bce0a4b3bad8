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

package phoneme

import (
	"strings"
	"unicode/utf8"

	"github.com/ianlewis/go-arpabet/internal/index"
)

type class uint8

const (
	classConsonant class = 1 << iota
	classIndependentVowel
	classVowelSign
	classModifier
	classDiacritic
	classLongVowel
	classIgnorable
)

var (
	classes = make(map[rune]class)

	conjuncts *index.Index[Conjunct]
)

//nolint:gochecknoinits // lookup tables are derived once from the maps above.
func init() {
	for k := range ConsonantMap {
		if r, ok := single(k); ok {
			classes[r] |= classConsonant
		}
	}
	for k := range VowelMap {
		r, ok := single(k)
		if !ok {
			continue
		}
		if isMatra(r) {
			classes[r] |= classVowelSign
		} else {
			classes[r] |= classIndependentVowel
		}
	}
	for k := range ModifierMap {
		if r, ok := single(k); ok {
			classes[r] |= classModifier
		}
	}
	for _, r := range Diacritics {
		classes[r] |= classDiacritic
	}
	for _, r := range longVowels {
		classes[r] |= classLongVowel
	}
	for _, r := range ignorable {
		classes[r] |= classIgnorable
	}

	cs := make([]Conjunct, 0, len(SpecialConjuncts))
	for k, v := range SpecialConjuncts {
		cs = append(cs, Conjunct{Key: k, Arpabet: v})
	}
	conjuncts = index.NewIndex(cs, strings.Compare)
}

// single returns the only rune in s.
func single(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, false
	}
	return r, true
}

// isMatra reports whether r is in the Devanagari dependent vowel sign block.
func isMatra(r rune) bool {
	return r >= 'ा' && r <= 'ौ'
}

func (c class) has(f class) bool {
	return c&f != 0
}

// IsConsonant reports whether r is a consonant letter.
func IsConsonant(r rune) bool {
	return classes[r].has(classConsonant)
}

// IsVowel reports whether r is an independent vowel or a vowel sign.
func IsVowel(r rune) bool {
	return classes[r].has(classIndependentVowel | classVowelSign)
}

// IsIndependentVowel reports whether r is an independent vowel letter.
func IsIndependentVowel(r rune) bool {
	return classes[r].has(classIndependentVowel)
}

// IsVowelSign reports whether r is a dependent vowel sign (matra).
func IsVowelSign(r rune) bool {
	return classes[r].has(classVowelSign)
}

// IsModifier reports whether r is a nasalization mark or visarga.
func IsModifier(r rune) bool {
	return classes[r].has(classModifier)
}

// IsDiacritic reports whether r is a combining mark.
func IsDiacritic(r rune) bool {
	return classes[r].has(classDiacritic)
}

// IsHalant reports whether r is the halant.
func IsHalant(r rune) bool {
	return r == Halant
}

// IsIgnorable reports whether r is a mark with no phonetic value.
func IsIgnorable(r rune) bool {
	return classes[r].has(classIgnorable)
}

// IsLongVowel reports whether r is a long independent vowel or long matra.
func IsLongVowel(r rune) bool {
	return classes[r].has(classLongVowel)
}

// Conjunct is a special conjunct table entry.
type Conjunct struct {
	// Key is the conjunct as written, including halants.
	Key string

	// Arpabet is the fixed expansion.
	Arpabet string
}

// String implements [fmt.Stringer].
func (c Conjunct) String() string {
	return c.Key
}

// Len returns the length of the conjunct in runes.
func (c Conjunct) Len() int {
	return utf8.RuneCountInString(c.Key)
}

// MatchConjunct returns the longest special conjunct that starts at
// runes[i].
func MatchConjunct(runes []rune, i int) (Conjunct, bool) {
	if i < 0 || i >= len(runes) || !IsConsonant(runes[i]) {
		return Conjunct{}, false
	}
	m := conjuncts.LongestPrefix(string(runes[i:]))
	if len(m) == 0 {
		return Conjunct{}, false
	}
	return m[0], true
}
