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

// Package stress divides a word into syllables, computes syllable weight and
// assigns primary and secondary stress.
//
// Syllables are counted the same way the segment package counts vowel
// nuclei, so the stress of the n-th syllable belongs to the n-th vowel the
// segmenter emits.
package stress

import (
	"strings"

	"github.com/ianlewis/go-arpabet/phoneme"
	"github.com/ianlewis/go-arpabet/trace"
)

// Rule names recorded in the trace.
const (
	RulePrimary   = "Primary Stress Assignment"
	RuleSecondary = "Secondary Stress Assignment"
	RuleFinal     = "Word-Final Destressing"
)

// Weight is a syllable weight.
type Weight int

const (
	// Light is a short vowel with no coda.
	Light Weight = iota

	// Heavy is a long vowel or a coda, but not both.
	Heavy

	// ExtraHeavy is a long vowel with a coda.
	ExtraHeavy
)

// String implements [fmt.Stringer].
func (w Weight) String() string {
	switch w {
	case Heavy:
		return "heavy"
	case ExtraHeavy:
		return "extraHeavy"
	default:
		return "light"
	}
}

// Syllable is a linguistic syllable of a word.
type Syllable struct {
	Onset   []rune
	Nucleus rune
	Coda    []rune

	// Text is the span of the word covered by the syllable.
	Text string

	Weight Weight
	Stress phoneme.Stress
}

func (s *Syllable) weigh() Weight {
	long := phoneme.IsLongVowel(s.Nucleus)
	closed := len(s.Coda) > 0
	switch {
	case long && closed:
		return ExtraHeavy
	case long || closed:
		return Heavy
	default:
		return Light
	}
}

// skipIgnorable returns the index of the first rune at or after i that is not
// an ignorable mark.
func skipIgnorable(rs []rune, i int) int {
	for i < len(rs) && phoneme.IsIgnorable(rs[i]) {
		i++
	}
	return i
}

// Syllabify splits word into syllables and computes their weight. Stress is
// left unassigned.
func Syllabify(word string) []*Syllable {
	rs := []rune(word)

	var syls []*Syllable
	var onset []rune
	start := 0
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case phoneme.IsConsonant(r):
			if len(onset) == 0 {
				start = i
			}
			onset = append(onset, r)

			j := skipIgnorable(rs, i+1)
			if j < len(rs) && phoneme.IsHalant(rs[j]) {
				// Joins the cluster with the next consonant.
				i = j
				continue
			}

			nucleus := phoneme.InherentVowel
			end := j
			if j < len(rs) && phoneme.IsVowelSign(rs[j]) {
				nucleus = rs[j]
				end = j + 1
			}
			syls = append(syls, &Syllable{
				Onset:   onset,
				Nucleus: nucleus,
				Text:    string(rs[start:end]),
			})
			onset = nil
			i = end - 1

		case phoneme.IsIndependentVowel(r):
			if len(onset) == 0 {
				start = i
			}
			syls = append(syls, &Syllable{
				Onset:   onset,
				Nucleus: r,
				Text:    string(rs[start : i+1]),
			})
			onset = nil

		case phoneme.IsModifier(r):
			if len(onset) == 0 && len(syls) > 0 {
				last := syls[len(syls)-1]
				last.Coda = append(last.Coda, r)
				last.Text += string(r)
			}
		}
	}

	// A halant-terminated cluster at the end of the word closes the last
	// syllable.
	if len(onset) > 0 && len(syls) > 0 {
		last := syls[len(syls)-1]
		last.Coda = append(last.Coda, onset...)
		last.Text += string(rs[start:])
	}

	for _, s := range syls {
		s.Weight = s.weigh()
	}
	return syls
}

// AssignPrimary gives primary stress to the rightmost non-light syllable, or
// to the first syllable when all are light. It returns the index of the
// stressed syllable or -1 if there are no syllables.
func AssignPrimary(syls []*Syllable) int {
	for i := len(syls) - 1; i >= 0; i-- {
		if syls[i].Weight != Light {
			syls[i].Stress = phoneme.Primary
			return i
		}
	}
	if len(syls) > 0 {
		syls[0].Stress = phoneme.Primary
		return 0
	}
	return -1
}

// AssignSecondary gives secondary stress to non-light syllables at an even
// distance from the primary stress. Stresses therefore alternate and are never
// adjacent. It returns the number of syllables given secondary stress.
func AssignSecondary(syls []*Syllable, primary int) int {
	if primary < 0 || primary >= len(syls) {
		return 0
	}
	n := 0
	for i, s := range syls {
		d := i - primary
		if d < 0 {
			d = -d
		}
		if d >= 2 && d%2 == 0 && s.Weight != Light {
			s.Stress = phoneme.Secondary
			n++
		}
	}
	return n
}

// DestressFinal removes the stress of a light word-final syllable. It reports
// whether the last syllable was light.
func DestressFinal(syls []*Syllable) bool {
	if len(syls) == 0 {
		return false
	}
	last := syls[len(syls)-1]
	if last.Weight != Light {
		return false
	}
	last.Stress = phoneme.Unstressed
	return true
}

// Result is the stress analysis of a word.
type Result struct {
	Syllables []*Syllable

	// Primary is the index of the syllable that received primary stress
	// before final destressing, or -1.
	Primary int

	Trace trace.Analysis
}

// Stress returns the stress of syllable i. Indexes out of range are
// unstressed.
func (r *Result) Stress(i int) phoneme.Stress {
	if i < 0 || i >= len(r.Syllables) {
		return phoneme.Unstressed
	}
	return r.Syllables[i].Stress
}

// Pattern returns the stress digits of the syllables, e.g. "010".
func (r *Result) Pattern() string {
	var b strings.Builder
	for _, s := range r.Syllables {
		b.WriteString(s.Stress.String())
	}
	return b.String()
}

// Analyze syllabifies word and assigns stress.
func Analyze(word string) *Result {
	syls := Syllabify(word)
	r := &Result{Syllables: syls}

	r.Primary = AssignPrimary(syls)
	r.Trace.AddRule(
		RulePrimary,
		"Assign primary stress (1) to rightmost heavy syllable or first syllable",
		r.Primary >= 0,
	)

	AssignSecondary(syls, r.Primary)
	r.Trace.AddRule(
		RuleSecondary,
		"Assign secondary stress (2) to alternating heavy syllables",
		r.Primary >= 0,
	)

	r.Trace.AddRule(
		RuleFinal,
		"Remove stress from word-final light syllables",
		DestressFinal(syls),
	)

	return r
}
