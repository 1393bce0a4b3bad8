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

package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ianlewis/go-dictzip"
)

// FileCache is a Cache that stores snapshots as a seed file. Paths with a .dz
// extension are dictzip compressed.
type FileCache struct {
	Path string
}

// Store writes entries to the cache file. The file is replaced atomically.
func (c *FileCache) Store(entries []*Entry) (err error) {
	dir, base := filepath.Split(c.Path)
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	f, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating cache file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if isDictZip(c.Path) {
		z, err := dictzip.NewWriter(f)
		if err != nil {
			return fmt.Errorf("creating dictzip writer: %w", err)
		}
		if err := writeEntries(z, entries); err != nil {
			_ = z.Close()
			return err
		}
		if err := z.Close(); err != nil {
			return fmt.Errorf("closing dictzip writer: %w", err)
		}
	} else if err := writeEntries(f, entries); err != nil {
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing cache file: %w", err)
	}
	if err := os.Rename(f.Name(), c.Path); err != nil {
		return fmt.Errorf("replacing cache file: %w", err)
	}
	return nil
}

// Load reads the cache file. A missing file yields an empty Dictionary.
func (c *FileCache) Load(opts *Options) (*Dictionary, error) {
	d, err := Open(c.Path, opts)
	if errors.Is(err, fs.ErrNotExist) {
		return New(opts), nil
	}
	return d, err
}

func writeEntries(w io.Writer, entries []*Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s %s\n", e.Word, e.Transcription); err != nil {
			return fmt.Errorf("writing entry %q: %w", e.Word, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing entries: %w", err)
	}
	return nil
}
