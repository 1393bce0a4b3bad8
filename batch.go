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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-arpabet/internal/folding"
)

// ErrConversion indicates that converting a word in a batch failed.
var ErrConversion = errors.New("conversion failed")

// BatchOptions are options for batch conversion.
type BatchOptions struct {
	// Concurrency is the maximum number of words converted in parallel.
	// Defaults to GOMAXPROCS.
	Concurrency int

	// Folder returns a [transform.Transformer] that folds each input line
	// (e.g. trimming, whitespace folding, normalization) before conversion.
	// Lines that fold to the empty string are skipped.
	Folder func() transform.Transformer
}

// DefaultBatchOptions are the default options for batch conversion.
var DefaultBatchOptions = &BatchOptions{
	Folder: func() transform.Transformer {
		return folding.New(nil)
	},
}

// BatchResult is the result for one word of a batch.
type BatchResult struct {
	Original      string
	Transcription string
	Source        Source

	// Err is set when the word could not be converted.
	Err error
}

// ConvertAll converts words in parallel and returns one result per non-blank
// word, in input order. A failure converting one word is reported in its
// result and does not stop the batch. The returned error is non-nil only if
// ctx is done before the batch completes.
func (c *Converter) ConvertAll(ctx context.Context, words []string, opts *BatchOptions) ([]*BatchResult, error) {
	if opts == nil {
		opts = DefaultBatchOptions
	}
	folder := opts.Folder
	if folder == nil {
		folder = DefaultBatchOptions.Folder
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	var results []*BatchResult
	for _, w := range words {
		folded, _, err := transform.String(folder(), w)
		if err != nil {
			results = append(results, &BatchResult{
				Original: w,
				Err:      fmt.Errorf("%w: folding %q: %w", ErrConversion, w, err),
			})
			continue
		}
		if folded == "" {
			continue
		}
		results = append(results, &BatchResult{Original: folded})
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.convertInto(r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("converting batch: %w", err)
	}
	return results, nil
}

// ConvertReader converts the words read from r, one per line. See
// [Converter.ConvertAll].
func (c *Converter) ConvertReader(ctx context.Context, r io.Reader, opts *BatchOptions) ([]*BatchResult, error) {
	var words []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		words = append(words, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}
	return c.ConvertAll(ctx, words, opts)
}

// convertInto converts r.Original and stores the result in r. A panic is
// recovered into r.Err.
func (c *Converter) convertInto(r *BatchResult) {
	defer func() {
		if p := recover(); p != nil {
			r.Transcription = ""
			r.Source = ""
			r.Err = fmt.Errorf("%w: %q: %v", ErrConversion, r.Original, p)
		}
	}()

	res := c.Convert(r.Original)
	r.Transcription = res.Transcription
	r.Source = res.Source
}
