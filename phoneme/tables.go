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

// Halant (virama) suppresses a consonant's inherent vowel and joins it to the
// following consonant.
const Halant = '्'

// InherentVowel is the vowel carried by a consonant with no vowel sign.
const InherentVowel = 'अ'

// ConsonantMap maps single consonant letters to ARPABET.
var ConsonantMap = map[string]string{
	"क": "K",
	"ख": "KH",
	"ग": "G",
	"घ": "GH",
	"ङ": "NG",
	"च": "CH",
	"छ": "CHH",
	"ज": "JH",
	"झ": "JHH",
	"ञ": "NY",
	"ट": "T",
	"ठ": "TH",
	"ड": "D",
	"ढ": "DH",
	"ण": "N",
	"त": "T",
	"थ": "TH",
	"द": "D",
	"ध": "DH",
	"न": "N",
	"प": "P",
	"फ": "F",
	"ब": "B",
	"भ": "BH",
	"म": "M",
	"य": "Y",
	"र": "R",
	"ल": "L",
	"व": "W",
	"श": "SH",
	"ष": "SH",
	"स": "S",
	"ह": "HH",
}

// VowelMap maps independent vowels and their dependent vowel signs (matras)
// to ARPABET. The stress digit is a default that the converter overwrites.
var VowelMap = map[string]string{
	"अ": "AH0",
	"आ": "AA1",
	"इ": "IH0",
	"ई": "IY1",
	"उ": "UH0",
	"ऊ": "UW1",
	"ऋ": "R IH0",
	"ए": "EY1",
	"ऐ": "AY1",
	"ओ": "OW1",
	"औ": "AW1",
	"ा": "AA1",
	"ि": "IH0",
	"ी": "IY1",
	"ु": "UH0",
	"ू": "UW1",
	"ृ": "R IH0",
	"े": "EY1",
	"ै": "AY1",
	"ो": "OW1",
	"ौ": "AW1",
}

// ModifierMap maps the nasalization marks and visarga to the consonantal
// phoneme they add after the vowel.
var ModifierMap = map[string]string{
	"ं": "N",
	"ँ": "N",
	"ः": "HH",
}

// SpecialConjuncts maps halant-joined consonant sequences to fixed ARPABET
// expansions. These take precedence over generic halant decomposition.
var SpecialConjuncts = map[string]string{
	// R-conjuncts
	"क्र": "K R",
	"प्र": "P R",
	"त्र": "T R",
	"श्र": "SH R",
	"ग्र": "G R",
	"द्र": "D R",
	"ब्र": "B R",
	"ख्र": "KH R",
	"झ्र": "JH R",
	"भ्र": "BH R",
	"स्र": "S R",
	"ह्र": "HH R",

	// L-conjuncts
	"क्ल": "K L",
	"प्ल": "P L",
	"ब्ल": "B L",
	"फ्ल": "F L",
	"ग्ल": "G L",

	// W-conjuncts
	"क्व": "K W",
	"त्व": "T W",
	"द्व": "D W",
	"स्व": "S W",
	"ह्व": "HH W",

	// Y-conjuncts
	"क्य": "K Y",
	"प्य": "P Y",
	"त्य": "T Y",
	"द्य": "D Y",
	"न्य": "N Y",
	"म्य": "M Y",
	"य्क": "Y K",

	"ज्ञ": "G Y",
	"क्ष": "K SH",
	"श्व": "SH W",
	"ष्ठ": "SH TH",
	"द्ध": "D DH",
	"ट्ट": "T T",
	"द्द": "D D",
	"ल्ल": "L L",
	"ठ्ठ": "TH T",
}

// Diacritics are the combining marks that attach to the preceding segment
// rather than starting a new one.
var Diacritics = []rune{
	Halant,
	'ं',
	'ः',
	'ँ',
	'ृ',
	'ा',
	'ि',
	'ी',
	'ु',
	'ू',
	'े',
	'ै',
	'ो',
	'ौ',
	'़',
	'॑',
	'॒',
}

// longVowels are the independent long vowels and their matras.
var longVowels = []rune{
	'आ', 'ई', 'ऊ', 'ए', 'ऐ', 'ओ', 'औ',
	'ा', 'ी', 'ू', 'े', 'ै', 'ो', 'ौ',
}

// ignorable marks are kept in the segment text but produce no phonemes:
// nukta and the vedic accents.
var ignorable = []rune{'़', '॑', '॒'}
