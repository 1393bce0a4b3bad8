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

// Package rules implements phonological rewrite rules over ARPABET token
// sequences.
//
// Rules run in a fixed order. Each rule is a pure function from tokens to
// tokens and is recorded in the trace as applied only when it changed at
// least one token.
package rules

import (
	"github.com/ianlewis/go-arpabet/phoneme"
	"github.com/ianlewis/go-arpabet/trace"
)

// Rule names as they appear in a trace.
const (
	NameNasalization = "Nasalization"
	NameVoicing      = "Voicing Assimilation"
)

// Rule is a named rewrite over a token sequence.
type Rule struct {
	Name        string
	Description string

	// Rewrite returns the rewritten tokens and whether any token changed.
	// It must not modify its argument.
	Rewrite func([]phoneme.Token) ([]phoneme.Token, bool)
}

// nasals are the consonant tokens that nasalize a preceding vowel.
var nasals = map[string]bool{
	"N":  true,
	"M":  true,
	"NG": true,
}

// voiced maps voiceless stops and fricatives to their voiced counterparts.
var voiced = map[string]string{
	"P": "B",
	"T": "D",
	"K": "G",
	"S": "Z",
}

// voicedObstruents trigger voicing assimilation.
var voicedObstruents = map[string]bool{
	"B": true,
	"D": true,
	"G": true,
	"Z": true,
}

// Nasalization tags a vowel that is immediately followed by a nasal
// consonant.
var Nasalization = Rule{
	Name:        NameNasalization,
	Description: "Nasalize vowels before nasal consonants",
	Rewrite: pairwise(func(cur *phoneme.Token, next phoneme.Token) bool {
		if !cur.Vowel || cur.Nasal || next.Vowel || !nasals[next.Symbol] {
			return false
		}
		cur.Nasal = true
		return true
	}),
}

// VoicingAssimilation voices P, T, K and S before B, D, G or Z.
var VoicingAssimilation = Rule{
	Name:        NameVoicing,
	Description: "Voice assimilation in consonant clusters",
	Rewrite: pairwise(func(cur *phoneme.Token, next phoneme.Token) bool {
		if cur.Vowel || next.Vowel || !voicedObstruents[next.Symbol] {
			return false
		}
		v, ok := voiced[cur.Symbol]
		if !ok {
			return false
		}
		cur.Symbol = v
		return true
	}),
}

// Default returns the default rule set in application order.
func Default() []Rule {
	return []Rule{Nasalization, VoicingAssimilation}
}

// pairwise builds a rewrite that visits every adjacent pair of tokens right
// to left. f may modify the first token of the pair and reports whether it
// did. The second token is always the already rewritten one, so a rewrite
// propagates leftwards through a run in a single pass.
func pairwise(f func(cur *phoneme.Token, next phoneme.Token) bool) func([]phoneme.Token) ([]phoneme.Token, bool) {
	return func(tokens []phoneme.Token) ([]phoneme.Token, bool) {
		out := make([]phoneme.Token, len(tokens))
		copy(out, tokens)

		changed := false
		for i := len(out) - 2; i >= 0; i-- {
			if f(&out[i], out[i+1]) {
				changed = true
			}
		}
		return out, changed
	}
}

// Apply applies rules in order, feeding each rule the previous rule's
// output. It returns the rewritten tokens and a trace with one entry per
// rule.
func Apply(tokens []phoneme.Token, rules ...Rule) ([]phoneme.Token, *trace.Analysis) {
	a := &trace.Analysis{}
	for _, r := range rules {
		var changed bool
		tokens, changed = r.Rewrite(tokens)
		a.AddRule(r.Name, r.Description, changed)
	}
	return tokens, a
}

// ApplyString parses s, applies rules and renders the result.
func ApplyString(s string, rules ...Rule) string {
	tokens, _ := Apply(phoneme.ParseTokens(s), rules...)
	return phoneme.JoinTokens(tokens)
}
