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

package segment

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-arpabet/phoneme"
	"github.com/ianlewis/go-arpabet/trace"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		word     string
		expected []*Segment
	}{
		{
			name:     "empty",
			word:     "",
			expected: nil,
		},
		{
			name: "consonants with vowel signs",
			word: "नेपाल",
			expected: []*Segment{
				{Text: "ने", Cluster: "न", Kind: Consonant, Consonants: []string{"न"}, Vowel: 'े'},
				{Text: "पा", Cluster: "प", Kind: Consonant, Consonants: []string{"प"}, Vowel: 'ा'},
				{Text: "ल", Cluster: "ल", Kind: Consonant, Consonants: []string{"ल"}},
			},
		},
		{
			name: "special conjunct and final halant",
			word: "विद्वान्",
			expected: []*Segment{
				{Text: "वि", Cluster: "व", Kind: Consonant, Consonants: []string{"व"}, Vowel: 'ि'},
				{
					Text:       "द्वा",
					Cluster:    "द्व",
					Kind:       Conjunct,
					Consonants: []string{"द्व"},
					Special:    true,
					WConjunct:  true,
					Vowel:      'ा',
				},
				{Text: "न्", Cluster: "न", Kind: Consonant, Consonants: []string{"न"}, Suppressed: true},
			},
		},
		{
			name: "generic cluster",
			word: "सत्गुरु",
			expected: []*Segment{
				{Text: "स", Cluster: "स", Kind: Consonant, Consonants: []string{"स"}},
				{Text: "त्गु", Cluster: "त्ग", Kind: Conjunct, Consonants: []string{"त", "ग"}, Vowel: 'ु'},
				{Text: "रु", Cluster: "र", Kind: Consonant, Consonants: []string{"र"}, Vowel: 'ु'},
			},
		},
		{
			name: "generic w cluster",
			word: "न्व",
			expected: []*Segment{
				{Text: "न्व", Cluster: "न्व", Kind: Conjunct, Consonants: []string{"न", "व"}, WConjunct: true},
			},
		},
		{
			name: "anusvara",
			word: "संसार",
			expected: []*Segment{
				{Text: "सं", Cluster: "स", Kind: Consonant, Consonants: []string{"स"}, Modifiers: []rune{'ं'}},
				{Text: "सा", Cluster: "स", Kind: Consonant, Consonants: []string{"स"}, Vowel: 'ा'},
				{Text: "र", Cluster: "र", Kind: Consonant, Consonants: []string{"र"}},
			},
		},
		{
			name: "independent vowel with modifier",
			word: "अं",
			expected: []*Segment{
				{Text: "अं", Kind: Vowel, Vowel: 'अ', Modifiers: []rune{'ं'}},
			},
		},
		{
			name: "stray diacritics",
			word: "ंक1ं",
			expected: []*Segment{
				{Text: "कं", Cluster: "क", Kind: Consonant, Consonants: []string{"क"}, Modifiers: []rune{'ं'}},
			},
		},
		{
			name:     "unsupported script",
			word:     "hello",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, Split(test.word)); diff != "" {
				t.Errorf("Split(%q) (-want, +got):\n%s", test.word, diff)
			}
		})
	}
}

func stresses(s ...phoneme.Stress) func(int) phoneme.Stress {
	return func(n int) phoneme.Stress {
		if n < len(s) {
			return s[n]
		}
		return phoneme.Unstressed
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	u, p := phoneme.Unstressed, phoneme.Primary

	tests := []struct {
		name      string
		word      string
		stress    func(int) phoneme.Stress
		expected  string
		syllables int
	}{
		{
			name:      "inherent and sign vowels",
			word:      "नेपाल",
			stress:    stresses(u, p, u),
			expected:  "N EY0 P AA1 L AH0",
			syllables: 3,
		},
		{
			name:      "suppressed final consonant",
			word:      "विद्वान्",
			stress:    stresses(u, p),
			expected:  "W IH0 D W AA1 N",
			syllables: 2,
		},
		{
			name:      "anusvara",
			word:      "संसार",
			stress:    stresses(u, p, u),
			expected:  "S AH0 N S AA1 R AH0",
			syllables: 3,
		},
		{
			name:      "special conjunct beats decomposition",
			word:      "ठ्ठ",
			stress:    stresses(u),
			expected:  "TH T AH0",
			syllables: 1,
		},
		{
			name:      "ksha",
			word:      "क्ष",
			stress:    stresses(u),
			expected:  "K SH AH0",
			syllables: 1,
		},
		{
			name:      "vocalic r",
			word:      "ऋषि",
			stress:    stresses(p, u),
			expected:  "R IH1 SH IH0",
			syllables: 2,
		},
		{
			name:      "visarga",
			word:      "दुःख",
			stress:    stresses(p, u),
			expected:  "D UH1 HH KH AH0",
			syllables: 2,
		},
		{
			name:     "nothing to map",
			word:     "...",
			stress:   stresses(),
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			m := Map(Split(test.word), test.stress)
			if got := phoneme.JoinTokens(m.Tokens); got != test.expected {
				t.Errorf("Map(%q) = %q, want %q", test.word, got, test.expected)
			}
			if m.Syllables != test.syllables {
				t.Errorf("Syllables = %d, want %d", m.Syllables, test.syllables)
			}
		})
	}
}

func TestMap_trace(t *testing.T) {
	t.Parallel()

	m := Map(Split("किं"), stresses(phoneme.Primary))

	primary := phoneme.Primary
	want := []trace.Segment{
		{Original: "क", Kind: trace.KindConsonant, Arpabet: "K"},
		{Original: "ि", Kind: trace.KindVowel, Arpabet: "IH1", Stress: &primary},
		{Original: "ं", Kind: trace.KindDiacritic, Arpabet: "N"},
	}
	if diff := cmp.Diff(want, m.Trace.Segments); diff != "" {
		t.Errorf("trace (-want, +got):\n%s", diff)
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	for k, want := range map[Kind]string{
		Consonant: "consonant",
		Conjunct:  "conjunct",
		Vowel:     "vowel",
	} {
		if got := k.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
