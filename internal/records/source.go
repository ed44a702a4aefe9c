// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package records

import (
	"cmp"
	"fmt"
	"iter"

	"cloudeng.io/errors"
)

// ErrUnsorted is returned when a Source that is expected to be sorted
// is found not to be.
var ErrUnsorted = errors.New("records are not in ascending order")

// Source adapts a named sequence of records and errors to a sequence of
// records suitable for merging. The first error encountered ends
// iteration and is available via Err.
type Source struct {
	name string
	seq  iter.Seq2[Record, error]
	err  error
}

// NewSource returns a new Source.
func NewSource(name string, seq iter.Seq2[Record, error]) *Source {
	return &Source{name: name, seq: seq}
}

// Name returns the name of the source.
func (s *Source) Name() string {
	return s.name
}

// Err returns the error, if any, that ended iteration.
func (s *Source) Err() error {
	return s.err
}

// Records returns an iterator over the records in the source.
func (s *Source) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for r, err := range s.seq {
			if err != nil {
				s.err = fmt.Errorf("%v: %w", s.name, err)
				return
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Ascending is like Records but also ends iteration, with an error that
// wraps ErrUnsorted, if a record's priority is lower than that of the
// record preceding it.
func (s *Source) Ascending() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		first := true
		var prev float64
		for r := range s.Records() {
			if !first && cmp.Compare(r.Priority, prev) < 0 {
				s.err = fmt.Errorf("%v: line %d: %v follows %v: %w", s.name, r.Line, r.Priority, prev, ErrUnsorted)
				return
			}
			first, prev = false, r.Priority
			if !yield(r) {
				return
			}
		}
	}
}
