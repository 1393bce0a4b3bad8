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
	"strings"
)

// ErrMalformedEntry indicates a seed line with a word but no transcription.
var ErrMalformedEntry = errors.New("malformed entry")

// Scanner scans dictionary entries from seed data. Seed data holds one entry
// per line: the word followed by whitespace separated ARPABET tokens. Blank
// lines and lines starting with '#' are skipped.
type Scanner struct {
	s     *bufio.Scanner
	entry *Entry
	line  int
	err   error
}

// NewScanner returns a new Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		s: bufio.NewScanner(r),
	}
}

// Scan advances to the next entry. It returns false when the scan stops,
// either by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for s.s.Scan() {
		s.line++
		line := s.s.Text()
		if s.line == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) < 2 {
			s.err = fmt.Errorf("%w: line %d: %q", ErrMalformedEntry, s.line, line)
			return false
		}

		s.entry = &Entry{
			Word:          fields[0],
			Transcription: strings.Join(fields[1:], " "),
		}
		return true
	}

	if err := s.s.Err(); err != nil {
		s.err = fmt.Errorf("reading line %d: %w", s.line+1, err)
	}
	return false
}

// Entry returns the most recent entry read by Scan.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}
