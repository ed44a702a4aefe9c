// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import (
	"cmp"
	"iter"
	"slices"
)

// Item is a priority and its associated value.
type Item[P, V any] struct {
	Priority P
	Value    V
}

// ranked pairs a priority with the order in which it was offered so that
// ties between equal priorities favour the earliest offer.
type ranked[P any] struct {
	p P
	n uint64
}

// Bounded retains the k best entries offered to it, where best means
// smallest for Min and largest for Max. Among equal priorities those offered
// first are retained.
type Bounded[P, V any] struct {
	order   Order
	k       int
	offered uint64
	compare func(a, b P) int
	// worst is ordered in the opposite direction to order so that its top
	// is the entry that is evicted next.
	worst *Queue[ranked[P], V]
}

// NewBounded returns a Bounded that uses cmp.Compare.
func NewBounded[P cmp.Ordered, V any](order Order, k int) *Bounded[P, V] {
	return NewBoundedFunc[P, V](order, k, cmp.Compare[P])
}

// NewBoundedFunc returns a Bounded that uses the supplied comparison
// function.
func NewBoundedFunc[P, V any](order Order, k int, compare func(a, b P) int) *Bounded[P, V] {
	k = max(k, 0)
	// The most recently offered of several equal priorities must be at
	// the top of worst regardless of its ordering mode.
	tie := cmp.Compare[uint64]
	if order == Max {
		tie = func(a, b uint64) int { return cmp.Compare(b, a) }
	}
	return &Bounded[P, V]{
		order:   order,
		k:       k,
		compare: compare,
		worst: NewFunc(!order, func(a, b ranked[P]) int {
			if c := compare(a.p, b.p); c != 0 {
				return c
			}
			return tie(a.n, b.n)
		}, WithSliceCap[ranked[P], V](k+1)),
	}
}

// Offer offers a new entry and returns true if it is retained. Once k
// entries are held a new entry is retained only if it is strictly better
// than the worst currently held, which is then evicted.
func (b *Bounded[P, V]) Offer(p P, v V) bool {
	if b.k == 0 {
		return false
	}
	r := ranked[P]{p: p, n: b.offered}
	b.offered++
	if b.worst.Len() < b.k {
		b.worst.Push(r, v)
		return true
	}
	out, _ := b.worst.PushPop(r, v)
	return out.n != r.n
}

// Len returns the number of entries retained.
func (b *Bounded[P, V]) Len() int {
	return b.worst.Len()
}

// Cap returns k.
func (b *Bounded[P, V]) Cap() int {
	return b.k
}

// Threshold returns the worst retained entry, ie. the k'th best once
// k entries have been offered.
func (b *Bounded[P, V]) Threshold() (P, V, error) {
	r, v, err := b.worst.Peek()
	return r.p, v, err
}

// Sorted returns the retained entries, best first. The Bounded is not
// modified.
func (b *Bounded[P, V]) Sorted() []Item[P, V] {
	entries := slices.Clone(b.worst.entries)
	slices.SortFunc(entries, func(x, y entry[ranked[P], V]) int {
		c := b.compare(x.priority.p, y.priority.p)
		if b.order == Max {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(x.priority.n, y.priority.n)
	})
	out := make([]Item[P, V], len(entries))
	for i, e := range entries {
		out[i] = Item[P, V]{Priority: e.priority.p, Value: e.value}
	}
	return out
}

// NSmallest returns the k smallest values in seq in ascending order.
// Equal values appear in the order they were encountered.
func NSmallest[T cmp.Ordered](k int, seq iter.Seq[T]) []T {
	return selectN(Min, k, seq, cmp.Compare[T])
}

// NLargest returns the k largest values in seq in descending order.
// Equal values appear in the order they were encountered.
func NLargest[T cmp.Ordered](k int, seq iter.Seq[T]) []T {
	return selectN(Max, k, seq, cmp.Compare[T])
}

// NSmallestFunc is like NSmallest but uses the supplied comparison
// function, which is typically used to compare a key derived from T.
func NSmallestFunc[T any](k int, seq iter.Seq[T], compare func(a, b T) int) []T {
	return selectN(Min, k, seq, compare)
}

// NLargestFunc is like NLargest but uses the supplied comparison function.
func NLargestFunc[T any](k int, seq iter.Seq[T], compare func(a, b T) int) []T {
	return selectN(Max, k, seq, compare)
}

func selectN[T any](order Order, k int, seq iter.Seq[T], compare func(a, b T) int) []T {
	if k <= 0 {
		return []T{}
	}
	b := NewBoundedFunc[T, struct{}](order, k, compare)
	for v := range seq {
		b.Offer(v, struct{}{})
	}
	items := b.Sorted()
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.Priority
	}
	return out
}
