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

// Package trace records how a word was converted: the segments that were
// generated and the named rules that were tried.
package trace

import (
	"github.com/ianlewis/go-arpabet/phoneme"
)

// Kind is the kind of a traced segment.
type Kind string

const (
	// KindConsonant is a single consonant.
	KindConsonant Kind = "consonant"

	// KindConjunct is a consonant cluster or special conjunct.
	KindConjunct Kind = "conjunct"

	// KindVowel is an independent vowel, a vowel sign or an inherent vowel.
	KindVowel Kind = "vowel"

	// KindDiacritic is a nasalization mark or visarga.
	KindDiacritic Kind = "diacritic"
)

// Segment is a traced segment.
type Segment struct {
	Original string
	Kind     Kind
	Arpabet  string

	// Stress is set for vowel segments.
	Stress *phoneme.Stress
}

// Rule is a traced rule application.
type Rule struct {
	Name        string
	Description string
	Applied     bool
}

// Analysis is the diagnostic trace for one word. The zero value is an empty
// trace ready to use. An Analysis is built by a single goroutine.
type Analysis struct {
	Segments []Segment
	Rules    []Rule
}

// AddRule appends a rule entry.
func (a *Analysis) AddRule(name, description string, applied bool) {
	a.Rules = append(a.Rules, Rule{
		Name:        name,
		Description: description,
		Applied:     applied,
	})
}

// AddSegment appends a segment entry.
func (a *Analysis) AddSegment(original string, kind Kind, arpabet string) {
	a.Segments = append(a.Segments, Segment{
		Original: original,
		Kind:     kind,
		Arpabet:  arpabet,
	})
}

// AddVowel appends a vowel segment entry carrying its stress.
func (a *Analysis) AddVowel(original, arpabet string, s phoneme.Stress) {
	a.Segments = append(a.Segments, Segment{
		Original: original,
		Kind:     KindVowel,
		Arpabet:  arpabet,
		Stress:   &s,
	})
}

// Merge appends the segments and rules of o, in order.
func (a *Analysis) Merge(o *Analysis) {
	if o == nil {
		return
	}
	a.Segments = append(a.Segments, o.Segments...)
	a.Rules = append(a.Rules, o.Rules...)
}

// Rule returns the first rule entry with the given name.
func (a *Analysis) Rule(name string) (Rule, bool) {
	for _, r := range a.Rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}
