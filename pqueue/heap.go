// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

func (q *Queue[P, V]) heapify() {
	n := len(q.entries)
	for i := n/2 - 1; i >= 0; i-- {
		q.down(i, n)
	}
}

// fix restores the heap ordering after the entry at i has changed.
func (q *Queue[P, V]) fix(i int) {
	if !q.down(i, len(q.entries)) {
		q.up(i)
	}
}

// removeAt removes the entry at i, the caller must ensure that i is valid.
func (q *Queue[P, V]) removeAt(i int) entry[P, V] {
	n := len(q.entries) - 1
	if n != i {
		q.swap(i, n)
		if !q.down(i, n) {
			q.up(i)
		}
	}
	e := q.entries[n]
	q.entries[n] = entry[P, V]{} // release references held by the value.
	q.entries = q.entries[:n]
	delete(q.index, Handle(e.seq))
	return e
}

// replaceTop overwrites the top entry with e using a single sift down.
func (q *Queue[P, V]) replaceTop(e entry[P, V]) entry[P, V] {
	top := q.entries[0]
	delete(q.index, Handle(top.seq))
	q.entries[0] = e
	q.index[Handle(e.seq)] = 0
	q.down(0, len(q.entries))
	return top
}

func (q *Queue[P, V]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.less(j, i) {
			break
		}
		q.swap(i, j)
		j = i
	}
}

func (q *Queue[P, V]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.less(j2, j1) {
			j = j2 // right child
		}
		if !q.less(j, i) {
			break
		}
		q.swap(i, j)
		i = j
	}
	return i > i0
}

func (q *Queue[P, V]) swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.index[Handle(q.entries[i].seq)] = i
	q.index[Handle(q.entries[j].seq)] = j
}

func (q *Queue[P, V]) less(i, j int) bool {
	return q.before(q.entries[i], q.entries[j])
}

// before returns true if a is to be extracted before b.
func (q *Queue[P, V]) before(a, b entry[P, V]) bool {
	c := q.compare(a.priority, b.priority)
	if q.order == Max {
		c = -c
	}
	if c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}
