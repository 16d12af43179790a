// Package frontier provides the min-priority queue that drives the search
// package's relaxation loop.
//
// The queue is ordered by ascending priority; equal priorities come out in
// insertion order. The same vertex may be pushed any number of times at
// different priorities. The queue never looks for an existing entry: callers
// use the "lazy decrease-key" pattern and drop entries whose vertex is already
// finalized when they are popped.
//
// Complexity:
//
//   - Push, Pop: O(log N), N = entries currently queued (≤ V + E for a search).
//   - Peek, Len, Empty: O(1).
package frontier

import "container/heap"

// Entry is one queued (priority, vertex) pair.
type Entry struct {
	Priority int64 // f = g + h at insertion time
	Vertex   int   // vertex id
	seq      uint64
}

// Queue is a binary min-heap of Entry values. The zero value is ready to use.
// A Queue is not safe for concurrent use.
type Queue struct {
	h       entryHeap
	nextSeq uint64
}

// New returns a Queue with room for capacity entries before it grows.
func New(capacity int) *Queue {
	return &Queue{h: make(entryHeap, 0, capacity)}
}

// Push inserts vertex with the given priority.
func (q *Queue) Push(priority int64, vertex int) {
	heap.Push(&q.h, Entry{Priority: priority, Vertex: vertex, seq: q.nextSeq})
	q.nextSeq++
}

// Pop removes and returns the entry with the lowest priority; among equal
// priorities the earliest pushed wins. ok is false when the queue is empty.
func (q *Queue) Pop() (e Entry, ok bool) {
	if len(q.h) == 0 {
		return Entry{}, false
	}
	return heap.Pop(&q.h).(Entry), true
}

// Peek returns the entry Pop would return without removing it.
func (q *Queue) Peek() (e Entry, ok bool) {
	if len(q.h) == 0 {
		return Entry{}, false
	}
	return q.h[0], true
}

// Len returns the number of queued entries, stale ones included.
func (q *Queue) Len() int { return len(q.h) }

// Empty reports whether no entries are queued.
func (q *Queue) Empty() bool { return len(q.h) == 0 }

// Reset drops every entry but keeps the allocated storage.
func (q *Queue) Reset() {
	q.h = q.h[:0]
	q.nextSeq = 0
}

// entryHeap implements heap.Interface ordered by (Priority, seq).
type entryHeap []Entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(Entry)) }

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
