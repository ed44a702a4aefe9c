// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package records

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
	"unicode"
)

// MaxLineSize is the longest line that Scan will accept.
const MaxLineSize = 1 << 20

// Record represents a single line of input.
type Record struct {
	Priority float64
	Payload  string
	Line     int
}

// Parse parses line, which is the n'th line of its input. It returns
// false for blank lines and comments.
func Parse(line string, n int) (Record, bool, error) {
	line = strings.TrimSpace(line)
	if len(line) == 0 || line[0] == '#' {
		return Record{}, false, nil
	}
	field, rest := line, ""
	if idx := strings.IndexFunc(line, unicode.IsSpace); idx > 0 {
		field, rest = line[:idx], line[idx:]
	}
	p, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return Record{}, false, fmt.Errorf("line %d: %w", n, err)
	}
	return Record{Priority: p, Payload: strings.TrimSpace(rest), Line: n}, true, nil
}

// Scan returns an iterator over the records in rd. Iteration stops at
// the first error, which is returned with a zero Record.
func Scan(rd io.Reader) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		sc := bufio.NewScanner(rd)
		sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
		n := 0
		for sc.Scan() {
			n++
			r, ok, err := Parse(sc.Text(), n)
			if err != nil {
				yield(Record{}, err)
				return
			}
			if !ok {
				continue
			}
			if !yield(r, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(Record{}, fmt.Errorf("line %d: %w", n+1, err))
		}
	}
}
