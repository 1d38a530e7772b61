// README: Ordered containers used by the dispatcher pools and the event queue.
package container

import "errors"

// ErrEmpty is the panic value for Pop or PeekFirst on an empty container.
// The engine and dispatcher always check emptiness first, so hitting it
// means a protocol invariant was violated upstream.
var ErrEmpty = errors.New("container: empty")

// Queue is a first-in-first-out queue. The zero value is not usable;
// construct with NewQueue.
type Queue[T comparable] struct {
	items []T
}

func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends item to the back of the queue.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the earliest-added remaining item.
// Panics with ErrEmpty if the queue is empty.
func (q *Queue[T]) Pop() T {
	if len(q.items) == 0 {
		panic(ErrEmpty)
	}
	item := q.items[0]
	q.items = q.items[1:]
	return item
}

// PeekFirst returns the front item without removing it.
// Panics with ErrEmpty if the queue is empty.
func (q *Queue[T]) PeekFirst() T {
	if len(q.items) == 0 {
		panic(ErrEmpty)
	}
	return q.items[0]
}

func (q *Queue[T]) Len() int {
	return len(q.items)
}

func (q *Queue[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// Contains reports whether item is in the queue.
func (q *Queue[T]) Contains(item T) bool {
	for _, it := range q.items {
		if it == item {
			return true
		}
	}
	return false
}

// RemoveValue removes the first occurrence of item, wherever it sits in
// the queue, and reports whether anything was removed. Needed when a
// cancelled rider leaves the waiting list or a selected driver leaves the
// middle of the idle pool.
func (q *Queue[T]) RemoveValue(item T) bool {
	for i, it := range q.items {
		if it == item {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// All iterates the queue in insertion order.
func (q *Queue[T]) All(yield func(T) bool) {
	for _, it := range q.items {
		if !yield(it) {
			return
		}
	}
}
