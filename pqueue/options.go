// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

type options[P, V any] struct {
	sliceCap   int
	priorities []P
	values     []V
}

// Option represents the options that can be passed to New and NewFunc.
type Option[P, V any] func(*options[P, V])

// WithSliceCap sets the initial capacity of the slice used to hold
// entries.
func WithSliceCap[P, V any](n int) Option[P, V] {
	return func(o *options[P, V]) {
		o.sliceCap = n
	}
}

// WithData sets the initial, unordered, contents of the queue. The queue is
// built from them in O(n) and sequence numbers are assigned in input order.
// The slices are not retained.
func WithData[P, V any](priorities []P, values []V) Option[P, V] {
	return func(o *options[P, V]) {
		if len(priorities) != len(values) {
			panic("priorities and values must be the same length")
		}
		o.priorities = priorities
		o.values = values
	}
}
