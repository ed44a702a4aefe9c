// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"cloudeng.io/errors"
)

var (
	// ErrEmptyQueue is returned by operations that require a top entry
	// when called on an empty queue.
	ErrEmptyQueue = errors.New("empty queue")

	// ErrUnknownHandle is returned when a Handle does not refer to an
	// entry that is currently in the queue.
	ErrUnknownHandle = errors.New("unknown handle")
)

// Order determines whether the smallest or the largest priority is at the
// top of a queue.
type Order bool

// Values for Order.
const (
	Min Order = false
	Max Order = true
)

func (o Order) String() string {
	if o == Max {
		return "max"
	}
	return "min"
}

// ParseOrder parses "min" or "max", case insensitively.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	}
	return Min, fmt.Errorf("unrecognised order %q: must be min or max", s)
}

// Handle identifies an entry for as long as it remains in the queue
// that it was added to.
type Handle uint64

type entry[P, V any] struct {
	priority P
	value    V
	seq      uint64
}

// Queue is a priority queue of values, V, ordered by priorities, P.
// Entries with equal priorities are extracted in the order in which they
// were added.
type Queue[P, V any] struct {
	order   Order
	compare func(a, b P) int
	entries []entry[P, V]
	index   map[Handle]int
	next    uint64
}

// New returns a queue that orders priorities using cmp.Compare. NaN
// values are treated as being smaller than all other floating point values.
func New[P cmp.Ordered, V any](order Order, opts ...Option[P, V]) *Queue[P, V] {
	return NewFunc(order, cmp.Compare[P], opts...)
}

// NewFunc returns a queue that orders priorities using the supplied
// comparison function, which must return a negative number when a < b,
// a positive number when a > b and zero when a == b and must define a
// total order.
func NewFunc[P, V any](order Order, compare func(a, b P) int, opts ...Option[P, V]) *Queue[P, V] {
	var o options[P, V]
	for _, fn := range opts {
		fn(&o)
	}
	n := max(o.sliceCap, len(o.priorities))
	q := &Queue[P, V]{
		order:   order,
		compare: compare,
		entries: make([]entry[P, V], 0, n),
		index:   make(map[Handle]int, n),
	}
	if len(o.priorities) == 0 {
		return q
	}
	for i, p := range o.priorities {
		e := q.newEntry(p, o.values[i])
		q.index[Handle(e.seq)] = i
		q.entries = append(q.entries, e)
	}
	q.heapify()
	return q
}

// Heapify returns a new queue containing the supplied priorities and values
// built in O(n). It is equivalent to New(order, WithData(priorities, values)).
func Heapify[P cmp.Ordered, V any](order Order, priorities []P, values []V) *Queue[P, V] {
	return New(order, WithData(priorities, values))
}

// HeapifyFunc is like Heapify but with a comparison function.
func HeapifyFunc[P, V any](order Order, compare func(a, b P) int, priorities []P, values []V) *Queue[P, V] {
	return NewFunc(order, compare, WithData(priorities, values))
}

func (q *Queue[P, V]) newEntry(p P, v V) entry[P, V] {
	e := entry[P, V]{priority: p, value: v, seq: q.next}
	q.next++
	return e
}

// Order returns the ordering mode of the queue.
func (q *Queue[P, V]) Order() Order {
	return q.order
}

// Len returns the number of entries in the queue.
func (q *Queue[P, V]) Len() int {
	return len(q.entries)
}

// Push adds a new entry in O(log n).
func (q *Queue[P, V]) Push(p P, v V) Handle {
	e := q.newEntry(p, v)
	n := len(q.entries)
	q.entries = append(q.entries, e)
	q.index[Handle(e.seq)] = n
	q.up(n)
	return Handle(e.seq)
}

// Peek returns the top entry without removing it.
func (q *Queue[P, V]) Peek() (P, V, error) {
	if len(q.entries) == 0 {
		var p P
		var v V
		return p, v, ErrEmptyQueue
	}
	return q.entries[0].priority, q.entries[0].value, nil
}

// Pop removes and returns the top entry in O(log n).
func (q *Queue[P, V]) Pop() (P, V, error) {
	if len(q.entries) == 0 {
		var p P
		var v V
		return p, v, ErrEmptyQueue
	}
	e := q.removeAt(0)
	return e.priority, e.value, nil
}

// Replace removes the top entry and adds a new one using a single
// rebalancing pass. It returns the removed entry, or ErrEmptyQueue, in
// which case nothing is added.
func (q *Queue[P, V]) Replace(p P, v V) (P, V, error) {
	if len(q.entries) == 0 {
		var zp P
		var zv V
		return zp, zv, ErrEmptyQueue
	}
	top := q.replaceTop(q.newEntry(p, v))
	return top.priority, top.value, nil
}

// PushPop adds a new entry and then removes and returns the top entry.
// If the new entry would itself be the top, it is returned immediately
// and the queue is unchanged; this is always the case for an empty queue.
// An existing entry with a priority equal to the new one is returned in
// preference to it since it was added earlier.
func (q *Queue[P, V]) PushPop(p P, v V) (P, V) {
	e := q.newEntry(p, v)
	if len(q.entries) == 0 || !q.before(q.entries[0], e) {
		return p, v
	}
	top := q.replaceTop(e)
	return top.priority, top.value
}

// Contains returns true if h refers to an entry in the queue.
func (q *Queue[P, V]) Contains(h Handle) bool {
	_, ok := q.index[h]
	return ok
}

// Remove removes the entry referred to by h in O(log n).
func (q *Queue[P, V]) Remove(h Handle) (P, V, error) {
	i, ok := q.index[h]
	if !ok {
		var p P
		var v V
		return p, v, ErrUnknownHandle
	}
	e := q.removeAt(i)
	return e.priority, e.value, nil
}

// Update changes the priority of the entry referred to by h in O(log n).
// The entry retains its position relative to other entries of equal
// priority as determined by when it was first added.
func (q *Queue[P, V]) Update(h Handle, p P) error {
	i, ok := q.index[h]
	if !ok {
		return ErrUnknownHandle
	}
	q.entries[i].priority = p
	q.fix(i)
	return nil
}

// Drain returns an iterator that removes entries in priority order until
// either the queue is empty or iteration is stopped.
func (q *Queue[P, V]) Drain() iter.Seq2[P, V] {
	return func(yield func(P, V) bool) {
		for len(q.entries) > 0 {
			e := q.removeAt(0)
			if !yield(e.priority, e.value) {
				return
			}
		}
	}
}

// Reset removes all entries. Sequence numbers, and hence handles, are
// never reused.
func (q *Queue[P, V]) Reset() {
	clear(q.entries)
	q.entries = q.entries[:0]
	clear(q.index)
}
