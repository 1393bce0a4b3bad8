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

// Package testutil implements helpers for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// Entry is a seed file entry.
type Entry struct {
	Word          string
	Transcription string
}

// MakeSeedOptions are options for MakeTempSeed.
type MakeSeedOptions struct {
	// Ext is an optional file extension for the seed file. Defaults to
	// '.txt.dz' if DictZip is true. Otherwise '.txt'.
	Ext string

	// DictZip indicates that the seed file should be compressed with DictZip.
	DictZip bool
}

// GetExt returns the seed file extension.
func (o *MakeSeedOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".txt.dz"
		}
	}
	return ".txt"
}

// MakeSeed renders entries in seed format.
func MakeSeed(entries []Entry) []byte {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Word)
		b.WriteByte(' ')
		b.WriteString(e.Transcription)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// MakeTempSeed creates a seed file in a temporary directory and returns its
// path. The directory is removed when the test finishes.
func MakeTempSeed(t *testing.T, entries []Entry, opts *MakeSeedOptions) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed"+opts.GetExt())
	WriteFile(t, path, MakeSeed(entries), opts != nil && opts.DictZip)
	return path
}

// WriteFile writes b to path, compressed with DictZip if dz is true.
func WriteFile(t *testing.T, path string, b []byte, dz bool) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if !dz {
		if _, err := f.Write(b); err != nil {
			t.Fatal(err)
		}
		return
	}

	z, err := dictzip.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := z.Write(b); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
}
