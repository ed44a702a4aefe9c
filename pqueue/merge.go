// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import (
	"cmp"
	"iter"
)

// head is the current value of a merge input and the index of that input.
type head[T any] struct {
	v   T
	src int
}

// Merge is like MergeFunc but uses cmp.Compare.
func Merge[T cmp.Ordered](seqs ...iter.Seq[T]) iter.Seq[T] {
	return MergeFunc(cmp.Compare[T], seqs...)
}

// MergeFunc returns an iterator over the sorted merge of seqs, each of
// which must already be sorted according to compare. Values that compare
// as equal are returned in the order of the inputs that they came from.
//
// The merge is lazy: the first value of every input is read when iteration
// starts and thereafter each value returned causes exactly one more value
// to be read from the input it came from. The returned iterator may only be
// used once, subsequent iterations return no values. All inputs are stopped
// when iteration ends, whether early or not.
func MergeFunc[T any](compare func(a, b T) int, seqs ...iter.Seq[T]) iter.Seq[T] {
	used := false
	return func(yield func(T) bool) {
		if used {
			return
		}
		used = true
		q := NewFunc(Min, func(a, b head[T]) int {
			if c := compare(a.v, b.v); c != 0 {
				return c
			}
			return cmp.Compare(a.src, b.src)
		}, WithSliceCap[head[T], struct{}](len(seqs)))
		nexts := make([]func() (T, bool), len(seqs))
		stops := make([]func(), 0, len(seqs))
		defer func() {
			for _, stop := range stops {
				stop()
			}
		}()
		for i, seq := range seqs {
			next, stop := iter.Pull(seq)
			stops = append(stops, stop)
			nexts[i] = next
			if v, ok := next(); ok {
				q.Push(head[T]{v: v, src: i}, struct{}{})
			}
		}
		for q.Len() > 0 {
			h, _, _ := q.Peek()
			if !yield(h.v) {
				return
			}
			if v, ok := nexts[h.src](); ok {
				q.Replace(head[T]{v: v, src: h.src}, struct{}{}) //nolint:errcheck // q is not empty.
				continue
			}
			q.Pop() //nolint:errcheck // q is not empty.
		}
	}
}
