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
	"fmt"
	"slices"
	"sort"
	"unicode/utf8"
)

// Index is a generic sorted array index keyed by the values' String form.
type Index[V fmt.Stringer] struct {
	// index is sorted by key.
	index []V

	cmp func(string, string) int

	// maxKey is the byte length of the longest key.
	maxKey int
}

// NewIndex creates an index from the given slice and comparison function.
// cmp(a, b) should return a negative number when a < b, a positive number when
// a > b and zero when a == b or a and b are incomparable in the sense of a
// strict weak ordering.
func NewIndex[V fmt.Stringer](values []V, cmp func(string, string) int) *Index[V] {
	sorted := slices.Clone(values)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return cmp(a.String(), b.String())
	})

	maxKey := 0
	for _, v := range sorted {
		maxKey = max(maxKey, len(v.String()))
	}

	return &Index[V]{
		index:  sorted,
		cmp:    cmp,
		maxKey: maxKey,
	}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.index)
}

// Search performs a binary search over the index and returns the values whose
// key matches query.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.index), func(i int) int {
		return idx.cmp(query, idx.index[i].String())
	})

	if !found {
		return nil
	}

	j := i
	//nolint:revive // This block increments j.
	for ; j < len(idx.index) && idx.cmp(query, idx.index[j].String()) == 0; j++ {
	}
	return idx.index[i:j]
}

// LongestPrefix returns the values for the longest key in the index that is a
// prefix of s. Keys are only matched on rune boundaries.
func (idx *Index[V]) LongestPrefix(s string) []V {
	for n := min(len(s), idx.maxKey); n > 0; n-- {
		if n < len(s) && !utf8.RuneStart(s[n]) {
			continue
		}
		if result := idx.Search(s[:n]); result != nil {
			return result
		}
	}
	return nil
}
