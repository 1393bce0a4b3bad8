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

// Package arpabet converts Nepali words written in Devanagari to ARPABET
// phoneme transcriptions.
//
// A Converter first looks a word up in a pronunciation dictionary. Words that
// are not in the dictionary are converted by rule:
//  1. The stress analyzer splits the word into syllables, weighs them and
//     assigns primary and secondary stress.
//  2. The segmenter splits the word into consonant, conjunct and vowel
//     segments and maps them to ARPABET, taking each vowel's stress digit
//     from the matching syllable.
//  3. Phonological rules (nasalization, voicing assimilation) rewrite the
//     resulting token sequence.
//
// Every conversion returns a trace of the segments that were generated and
// the rules that were tried.
package arpabet
