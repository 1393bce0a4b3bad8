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

// Package dictionary implements the pronunciation dictionary: an exact-match
// table from word forms to ARPABET transcriptions that overrides rule based
// conversion.
package dictionary

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/ianlewis/go-dictzip"
)

// ErrInvalidEntry indicates an entry with an empty word or transcription.
var ErrInvalidEntry = errors.New("invalid entry")

//go:embed data/seed.txt
var seed string

// Entry is a dictionary entry.
type Entry struct {
	Word          string
	Transcription string
}

// Cache persists the entries added at runtime.
type Cache interface {
	// Store stores all runtime entries, sorted by word. Entries that came
	// from seed data are never passed to Store.
	Store(entries []*Entry) error
}

// Options are options for a Dictionary.
type Options struct {
	// Cache receives the runtime entries after every Add. Optional.
	Cache Cache

	// Logger logs cache failures. Defaults to slog.Default().
	Logger *slog.Logger
}

// Dictionary is a pronunciation dictionary. It is safe for concurrent use.
type Dictionary struct {
	mu      sync.RWMutex
	entries map[string]string

	// added holds the entries from Add and Restore. It is what the cache
	// stores.
	added map[string]string

	// cacheMu serializes cache writes so snapshots are stored in order.
	cacheMu sync.Mutex
	cache   Cache
	logger  *slog.Logger
}

// New returns a new empty Dictionary.
func New(opts *Options) *Dictionary {
	d := &Dictionary{
		entries: map[string]string{},
		added:   map[string]string{},
		logger:  slog.Default(),
	}
	if opts != nil {
		d.cache = opts.Cache
		if opts.Logger != nil {
			d.logger = opts.Logger
		}
	}
	return d
}

// Load returns a new Dictionary with the entries of the seed data read from
// r. A later entry for the same word replaces an earlier one.
func Load(r io.Reader, opts *Options) (*Dictionary, error) {
	d := New(opts)
	s := NewScanner(r)
	for s.Scan() {
		e := s.Entry()
		d.entries[e.Word] = e.Transcription
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// Open returns a new Dictionary loaded from the seed file at path. Files with
// a .dz extension are read as dictzip compressed.
func Open(path string, opts *Options) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if isDictZip(path) {
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("creating dictzip reader for %q: %w", path, err)
		}
		defer z.Close()
		r = z
	}

	d, err := Load(r, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return d, nil
}

// Builtin returns a new Dictionary holding the embedded seed entries.
func Builtin(opts *Options) (*Dictionary, error) {
	d, err := Load(strings.NewReader(seed), opts)
	if err != nil {
		return nil, fmt.Errorf("reading builtin seed: %w", err)
	}
	return d, nil
}

func isDictZip(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".dz")
}

// Lookup returns the transcription for word. Words are matched exactly.
func (d *Dictionary) Lookup(word string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	t, ok := d.entries[word]
	return t, ok
}

// Add adds or replaces the entry for word and stores the runtime entries in
// the cache. word must be non-empty and must not contain white space, since
// it is looked up exactly. White space in transcription is collapsed. Cache
// failures are logged and do not fail the Add.
func (d *Dictionary) Add(word, transcription string) error {
	transcription = strings.Join(strings.Fields(transcription), " ")
	if word == "" || strings.IndexFunc(word, unicode.IsSpace) >= 0 || transcription == "" {
		return fmt.Errorf("%w: word %q, transcription %q", ErrInvalidEntry, word, transcription)
	}

	d.cacheMu.Lock()
	defer d.cacheMu.Unlock()

	d.mu.Lock()
	d.entries[word] = transcription
	d.added[word] = transcription
	d.mu.Unlock()

	if d.cache == nil {
		return nil
	}
	if err := d.cache.Store(d.Added()); err != nil {
		d.logger.Warn("store dictionary cache",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

// Merge adds all entries of o to d, replacing existing entries for the same
// words. The cache is not updated.
func (d *Dictionary) Merge(o *Dictionary) {
	if o == nil || o == d {
		return
	}
	entries := o.Entries()

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range entries {
		d.entries[e.Word] = e.Transcription
	}
}

// Restore merges o like Merge and marks its entries as runtime entries, so
// later cache writes keep them. It is used to apply a previously stored
// cache on top of the seed data.
func (d *Dictionary) Restore(o *Dictionary) {
	if o == nil || o == d {
		return
	}
	entries := o.Entries()

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range entries {
		d.entries[e.Word] = e.Transcription
		d.added[e.Word] = e.Transcription
	}
}

// Size returns the number of entries.
func (d *Dictionary) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// Words returns the dictionary's words in sorted order.
func (d *Dictionary) Words() []string {
	d.mu.RLock()
	words := make([]string, 0, len(d.entries))
	for w := range d.entries {
		words = append(words, w)
	}
	d.mu.RUnlock()

	slices.Sort(words)
	return words
}

// Entries returns a snapshot of the dictionary's entries sorted by word.
func (d *Dictionary) Entries() []*Entry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return sortedEntries(d.entries)
}

// Added returns the entries from Add and Restore sorted by word.
func (d *Dictionary) Added() []*Entry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return sortedEntries(d.added)
}

func sortedEntries(m map[string]string) []*Entry {
	entries := make([]*Entry, 0, len(m))
	for w, t := range m {
		entries = append(entries, &Entry{Word: w, Transcription: t})
	}
	slices.SortFunc(entries, func(a, b *Entry) int {
		return strings.Compare(a.Word, b.Word)
	})
	return entries
}
