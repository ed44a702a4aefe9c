// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package median provides a running median computed over a stream of
// numbers using a pair of priority queues of opposite order.
package median

import (
	"cloudeng.io/errors"
	"cloudeng.io/priority/pqueue"
)

// ErrUninitialized is returned by Median if no numbers have been added.
var ErrUninitialized = errors.New("no numbers have been added")

// Number represents the set of types whose median can be tracked.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Tracker maintains the median of all of the numbers added to it. Each
// Add is O(log n) and Median is O(1).
//
// The smaller half of the numbers is held in a max-ordered queue and the
// larger half in a min-ordered one. The lower half always holds either
// the same number of entries as the upper half or one more.
type Tracker[T Number] struct {
	lower *pqueue.Queue[T, struct{}]
	upper *pqueue.Queue[T, struct{}]
}

// New returns a new, empty, Tracker.
func New[T Number]() *Tracker[T] {
	return &Tracker[T]{
		lower: pqueue.New[T, struct{}](pqueue.Max),
		upper: pqueue.New[T, struct{}](pqueue.Min),
	}
}

// Add adds x to the set of numbers tracked.
func (t *Tracker[T]) Add(x T) {
	top, _ := t.lower.PushPop(x, struct{}{})
	t.upper.Push(top, struct{}{})
	if t.upper.Len() > t.lower.Len() {
		top, _, _ = t.upper.Pop()
		t.lower.Push(top, struct{}{})
	}
}

// Median returns the median of the numbers added so far. The mean of the
// two middle numbers is returned when an even number have been added.
func (t *Tracker[T]) Median() (float64, error) {
	lo, _, err := t.lower.Peek()
	if err != nil {
		return 0, ErrUninitialized
	}
	if t.lower.Len() > t.upper.Len() {
		return float64(lo), nil
	}
	hi, _, _ := t.upper.Peek()
	return (float64(lo) + float64(hi)) / 2, nil
}

// Len returns the number of numbers added.
func (t *Tracker[T]) Len() int {
	return t.lower.Len() + t.upper.Len()
}

// Sizes returns the number of entries held in the lower and upper halves.
func (t *Tracker[T]) Sizes() (lower, upper int) {
	return t.lower.Len(), t.upper.Len()
}
