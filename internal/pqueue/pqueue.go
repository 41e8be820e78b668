// Package pqueue implements a generic minimum-priority queue backed by a
// binary heap.
package pqueue

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue is returned by PeekMin and ExtractMin when the queue holds no
// items.
var ErrEmptyQueue = errors.New("pqueue: empty queue")

// Compare returns a negative number if a sorts before b, zero if they are
// equal, and a positive number if a sorts after b.
//
// A Compare function must define a total order: it must be antisymmetric and
// transitive, and it must never report two distinct items as equal unless
// their relative order truly does not matter to the caller.  Ties that the
// caller cares about must be broken inside the function itself, otherwise
// the extraction order of equal items depends on insertion history.
//
type Compare[T any] func(a, b T) int

// Queue is a minimum-priority queue.  The zero value is not usable; call New.
type Queue[T any] struct {
	h itemHeap[T]
}

// New constructs an empty Queue ordered by cmp.  The capacity hint
// preallocates storage; the queue grows as needed.
func New[T any](cmp Compare[T], capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{h: itemHeap[T]{cmp: cmp, list: make([]T, 0, capacity)}}
}

// Insert adds an item to the queue.
func (q *Queue[T]) Insert(item T) {
	heap.Push(&q.h, item)
}

// PeekMin returns the minimal item without removing it.
func (q *Queue[T]) PeekMin() (T, error) {
	if len(q.h.list) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.h.list[0], nil
}

// ExtractMin removes and returns the minimal item.
func (q *Queue[T]) ExtractMin() (T, error) {
	if len(q.h.list) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return heap.Pop(&q.h).(T), nil
}

// Size returns the number of items in the queue.
func (q *Queue[T]) Size() int {
	return len(q.h.list)
}

// type itemHeap {{{

type itemHeap[T any] struct {
	cmp  Compare[T]
	list []T
}

func (h *itemHeap[T]) Len() int {
	return len(h.list)
}

func (h *itemHeap[T]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *itemHeap[T]) Less(i, j int) bool {
	return h.cmp(h.list[i], h.list[j]) < 0
}

func (h *itemHeap[T]) Push(x interface{}) {
	h.list = append(h.list, x.(T))
}

func (h *itemHeap[T]) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	var zero T
	h.list[last] = zero
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*itemHeap[int])(nil)

// }}}
