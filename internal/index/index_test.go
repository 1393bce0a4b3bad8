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

package index

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type String string

func (s String) String() string {
	return string(s)
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		index    []String
		query    string
		expected []String
	}{
		{
			name:     "single results",
			index:    []String{"क", "ख", "क्ष", "ख"},
			query:    "क",
			expected: []String{"क"},
		},
		{
			name:     "multiple results",
			index:    []String{"क", "ख", "क्ष", "ख"},
			query:    "ख",
			expected: []String{"ख", "ख"},
		},
		{
			name:     "no results",
			index:    []String{"क", "ख", "क्ष", "ख"},
			query:    "ग",
			expected: nil,
		},
		{
			name:     "empty index",
			index:    nil,
			query:    "क",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := NewIndex(test.index, strings.Compare)

			if diff := cmp.Diff(test.expected, index.Search(test.query)); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_LongestPrefix(t *testing.T) {
	t.Parallel()

	keys := []String{"क्ष", "क्र", "क्", "त्र", "ab", "abc"}

	tests := []struct {
		name     string
		s        string
		expected []String
	}{
		{
			name:     "exact",
			s:        "क्ष",
			expected: []String{"क्ष"},
		},
		{
			name:     "longest wins",
			s:        "क्षमा",
			expected: []String{"क्ष"},
		},
		{
			name:     "shorter key",
			s:        "क्म",
			expected: []String{"क्"},
		},
		{
			name:     "ascii",
			s:        "abcd",
			expected: []String{"abc"},
		},
		{
			name:     "no match",
			s:        "गम",
			expected: nil,
		},
		{
			name:     "empty",
			s:        "",
			expected: nil,
		},
	}

	index := NewIndex(keys, strings.Compare)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, index.LongestPrefix(test.s)); diff != "" {
				t.Fatalf("LongestPrefix (-want, +got):\n%s", diff)
			}
		})
	}
}
