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

package arpabet

import (
	"github.com/ianlewis/go-arpabet/phoneme"
	"github.com/ianlewis/go-arpabet/rules"
	"github.com/ianlewis/go-arpabet/segment"
	"github.com/ianlewis/go-arpabet/stress"
	"github.com/ianlewis/go-arpabet/trace"
)

// RuleDictionary is the trace name of the dictionary lookup step.
const RuleDictionary = "Dictionary Lookup"

// Source is the provenance of a transcription.
type Source string

const (
	// SourceDictionary marks a transcription taken from the dictionary.
	SourceDictionary Source = "dictionary"

	// SourceRules marks a transcription produced by rule based conversion.
	SourceRules Source = "rules"
)

// Lookuper looks up pronunciations. [*dictionary.Dictionary] implements
// Lookuper.
type Lookuper interface {
	Lookup(word string) (string, bool)
}

// Options are options for a Converter.
type Options struct {
	// Rules are the phonological rules applied in order after mapping.
	// Defaults to rules.Default().
	Rules []rules.Rule
}

// Converter converts words to ARPABET. It is safe for concurrent use if its
// Lookuper is.
type Converter struct {
	dict  Lookuper
	rules []rules.Rule
}

// Result is the result of converting a word.
type Result struct {
	Word          string
	Transcription string
	Source        Source

	// Analysis is the conversion trace. It is never nil.
	Analysis *trace.Analysis
}

// New returns a new Converter. dict may be nil in which case every word is
// converted by rule.
func New(dict Lookuper, opts *Options) *Converter {
	c := &Converter{
		dict:  dict,
		rules: rules.Default(),
	}
	if opts != nil && opts.Rules != nil {
		c.rules = opts.Rules
	}
	return c
}

// Convert converts word to ARPABET. Dictionary entries are returned as is.
// Characters outside the supported alphabet are skipped, so Convert never
// fails; a word without any convertible characters yields an empty
// transcription.
func (c *Converter) Convert(word string) *Result {
	res := &Result{
		Word:     word,
		Source:   SourceRules,
		Analysis: &trace.Analysis{},
	}
	if word == "" {
		return res
	}

	if c.dict != nil {
		if t, ok := c.dict.Lookup(word); ok {
			res.Transcription = t
			res.Source = SourceDictionary
			res.Analysis.AddRule(RuleDictionary, "Word found in dictionary, using pre-defined pronunciation", true)
			return res
		}
	}
	res.Analysis.AddRule(RuleDictionary, "Word not found in dictionary, applying phonological rules", false)

	st := stress.Analyze(word)
	res.Analysis.Merge(&st.Trace)

	m := segment.Map(segment.Split(word), st.Stress)
	res.Analysis.Merge(&m.Trace)

	tokens, rt := rules.Apply(m.Tokens, c.rules...)
	res.Analysis.Merge(rt)

	res.Transcription = phoneme.JoinTokens(tokens)
	return res
}
