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
)

// Stress is an ARPABET stress level.
type Stress int8

const (
	// Unstressed is stress digit 0.
	Unstressed Stress = iota

	// Primary is stress digit 1.
	Primary

	// Secondary is stress digit 2.
	Secondary
)

// String returns the stress digit.
func (s Stress) String() string {
	switch s {
	case Primary:
		return "1"
	case Secondary:
		return "2"
	default:
		return "0"
	}
}

// NasalTag is appended to a nasalized vowel token.
const NasalTag = "_N"

// Token is a single ARPABET phoneme.
type Token struct {
	// Symbol is the ARPABET symbol without stress digit, e.g. "AA" or "K".
	Symbol string

	// Vowel is true for vowel tokens, which carry a stress digit.
	Vowel bool

	// Stress is the vowel's stress. It is ignored for consonants.
	Stress Stress

	// Nasal marks a nasalized vowel.
	Nasal bool
}

// String renders the token in ARPABET notation.
func (t Token) String() string {
	if !t.Vowel {
		return t.Symbol
	}
	s := t.Symbol + t.Stress.String()
	if t.Nasal {
		s += NasalTag
	}
	return s
}

// ParseToken parses a single ARPABET token such as "K", "AA1" or "AH0_N".
func ParseToken(s string) Token {
	var t Token
	if rest, ok := strings.CutSuffix(s, NasalTag); ok && rest != "" {
		t.Nasal = true
		s = rest
	}
	if n := len(s); n > 1 && s[n-1] >= '0' && s[n-1] <= '2' {
		t.Vowel = true
		t.Stress = Stress(s[n-1] - '0')
		s = s[:n-1]
	} else {
		// The nasal tag only applies to vowels.
		if t.Nasal {
			s += NasalTag
		}
		t.Nasal = false
	}
	t.Symbol = s
	return t
}

// ParseTokens parses a space separated ARPABET string.
func ParseTokens(s string) []Token {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = ParseToken(f)
	}
	return tokens
}

// JoinTokens renders tokens as a space separated ARPABET string.
func JoinTokens(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// WithStress returns a copy of tokens where every vowel carries stress s.
func WithStress(tokens []Token, s Stress) []Token {
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		if t.Vowel {
			t.Stress = s
		}
		out[i] = t
	}
	return out
}
