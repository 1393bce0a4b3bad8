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

// Package segment splits a word into orthographic segments (consonants,
// consonant clusters and vowels with their attached diacritics) and maps them
// to ARPABET.
package segment

import (
	"github.com/ianlewis/go-arpabet/phoneme"
	"github.com/ianlewis/go-arpabet/trace"
)

// Kind is the kind of a segment.
type Kind int

const (
	// Consonant is a single consonant.
	Consonant Kind = iota

	// Conjunct is a halant-joined cluster or a special conjunct.
	Conjunct

	// Vowel is an independent vowel.
	Vowel
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Conjunct:
		return "conjunct"
	case Vowel:
		return "vowel"
	default:
		return "consonant"
	}
}

// Segment is an orthographic unit of a word.
type Segment struct {
	// Text is the segment as written, including attached diacritics.
	Text string

	// Cluster is the consonant span as written. It is empty for vowels.
	Cluster string

	Kind Kind

	// Consonants are the members of the cluster. For a special conjunct it
	// holds the conjunct's table key.
	Consonants []string

	// Special is set when the cluster is a special conjunct.
	Special bool

	// WConjunct is set when the cluster contains the glide W.
	WConjunct bool

	// Vowel is the independent vowel or the attached vowel sign, or 0.
	Vowel rune

	// Modifiers are attached nasalization marks and visarga.
	Modifiers []rune

	// Suppressed is set when a halant removes the inherent vowel.
	Suppressed bool
}

// HasNucleus reports whether the segment carries a vowel and so occupies a
// syllable.
func (s *Segment) HasNucleus() bool {
	if s.Kind == Vowel || s.Vowel != 0 {
		return true
	}
	return !s.Suppressed
}

// attach attaches a diacritic that directly follows the segment.
func (s *Segment) attach(r rune) {
	s.Text += string(r)
	switch {
	case phoneme.IsModifier(r):
		s.Modifiers = append(s.Modifiers, r)
	case s.Kind == Vowel || s.Vowel != 0 || s.Suppressed || len(s.Modifiers) > 0:
		// Only the first mark after the consonant span can change its vowel.
	case phoneme.IsHalant(r):
		s.Suppressed = true
	case phoneme.IsVowelSign(r):
		s.Vowel = r
	}
}

// attachStray attaches a diacritic separated from the segment by skipped
// characters. Only nasalization marks and visarga take effect.
func (s *Segment) attachStray(r rune) {
	s.Text += string(r)
	if phoneme.IsModifier(r) {
		s.Modifiers = append(s.Modifiers, r)
	}
}

// Split splits word into segments. Characters that are not part of the
// supported alphabet are skipped.
func Split(word string) []*Segment {
	rs := []rune(word)

	var segs []*Segment
	for i := 0; i < len(rs); {
		r := rs[i]

		var seg *Segment
		switch {
		case phoneme.IsConsonant(r):
			seg, i = consonant(rs, i)
		case phoneme.IsIndependentVowel(r):
			seg = &Segment{
				Text:  string(r),
				Kind:  Vowel,
				Vowel: r,
			}
			i++
		case phoneme.IsDiacritic(r):
			if len(segs) > 0 {
				segs[len(segs)-1].attachStray(r)
			}
			i++
			continue
		default:
			i++
			continue
		}

		for i < len(rs) && phoneme.IsDiacritic(rs[i]) {
			seg.attach(rs[i])
			i++
		}
		segs = append(segs, seg)
	}

	return segs
}

// consonant reads the consonant span starting at rs[i] and returns its
// segment and the index following the span.
func consonant(rs []rune, i int) (*Segment, int) {
	if c, ok := phoneme.MatchConjunct(rs, i); ok {
		return &Segment{
			Text:       c.Key,
			Cluster:    c.Key,
			Kind:       Conjunct,
			Consonants: []string{c.Key},
			Special:    true,
			WConjunct:  hasW(phoneme.ParseTokens(c.Arpabet)),
		}, i + c.Len()
	}

	seg := &Segment{
		Kind:       Consonant,
		Consonants: []string{string(rs[i])},
	}
	j := i + 1
	for j+1 < len(rs) && phoneme.IsHalant(rs[j]) && phoneme.IsConsonant(rs[j+1]) {
		seg.Consonants = append(seg.Consonants, string(rs[j+1]))
		if rs[j+1] == 'व' {
			seg.WConjunct = true
		}
		j += 2
	}
	if len(seg.Consonants) > 1 {
		seg.Kind = Conjunct
	}
	seg.Text = string(rs[i:j])
	seg.Cluster = seg.Text
	return seg, j
}

func hasW(tokens []phoneme.Token) bool {
	for _, t := range tokens {
		if t.Symbol == "W" {
			return true
		}
	}
	return false
}

// Mapping is the ARPABET mapping of a word's segments.
type Mapping struct {
	Tokens []phoneme.Token

	// Syllables is the number of vowel nuclei that were emitted.
	Syllables int

	Trace trace.Analysis
}

// Map maps segments to ARPABET tokens. stressOf returns the stress of the
// n-th syllable and is called once per emitted vowel nucleus, in order.
func Map(segs []*Segment, stressOf func(n int) phoneme.Stress) *Mapping {
	m := &Mapping{}
	for _, s := range segs {
		m.add(s, stressOf)
	}
	return m
}

func (m *Mapping) add(s *Segment, stressOf func(int) phoneme.Stress) {
	if s.Kind != Vowel {
		cons := s.consonantTokens()
		kind := trace.KindConsonant
		if s.Kind == Conjunct {
			kind = trace.KindConjunct
		}
		m.Trace.AddSegment(s.Cluster, kind, phoneme.JoinTokens(cons))
		m.Tokens = append(m.Tokens, cons...)
	}

	if s.HasNucleus() {
		st := stressOf(m.Syllables)
		m.Syllables++

		orig, v := s.vowelTokens(st)
		m.Trace.AddVowel(orig, phoneme.JoinTokens(v), st)
		m.Tokens = append(m.Tokens, v...)
	}

	for _, r := range s.Modifiers {
		mod := phoneme.ParseTokens(phoneme.ModifierMap[string(r)])
		m.Trace.AddSegment(string(r), trace.KindDiacritic, phoneme.JoinTokens(mod))
		m.Tokens = append(m.Tokens, mod...)
	}
}

func (s *Segment) consonantTokens() []phoneme.Token {
	if s.Special {
		return phoneme.ParseTokens(phoneme.SpecialConjuncts[s.Consonants[0]])
	}

	var tokens []phoneme.Token
	for _, c := range s.Consonants {
		// Unknown members contribute nothing.
		tokens = append(tokens, phoneme.ParseTokens(phoneme.ConsonantMap[c])...)
	}
	if s.WConjunct && !hasW(tokens) {
		tokens = append(tokens, phoneme.Token{Symbol: "W"})
	}
	return tokens
}

// vowelTokens returns the written vowel and its tokens with stress st. A
// missing or unmapped vowel yields the inherent vowel.
func (s *Segment) vowelTokens(st phoneme.Stress) (string, []phoneme.Token) {
	inherent := []phoneme.Token{{Symbol: "AH", Vowel: true, Stress: st}}
	if s.Vowel == 0 {
		return string(phoneme.InherentVowel), inherent
	}
	v, ok := phoneme.VowelMap[string(s.Vowel)]
	if !ok {
		return string(s.Vowel), inherent
	}
	return string(s.Vowel), phoneme.WithStress(phoneme.ParseTokens(v), st)
}
