// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pqueue provides a generic priority queue and utilities built on it.
//
// Queue holds (priority, value) entries and surfaces either the smallest
// (Min) or the largest (Max) priority first. The ordering mode is fixed when
// the queue is created and is implemented by the comparison function, never
// by transforming priorities. Entries with equal priorities are returned in
// the order in which they were added; every entry is assigned a sequence
// number, owned by the queue, that is used solely to break such ties.
//
//	q := pqueue.New[int, string](pqueue.Min)
//	q.Push(5, "a")
//	q.Push(5, "b")
//	q.Push(1, "c")
//	for p, v := range q.Drain() {
//		fmt.Println(p, v) // 1 c, 5 a, 5 b
//	}
//
// Bounded maintains the k best entries of a stream and NSmallest/NLargest
// use it to select the top k of a sequence in O(n log k). When k is close
// to n a full sort, e.g. slices.SortStableFunc, is cheaper; no attempt is
// made to choose between the two automatically.
//
// Merge and MergeFunc lazily merge sorted sequences in O(n log k) for k
// inputs.
//
// None of the types in this package are safe for concurrent use.
package pqueue
