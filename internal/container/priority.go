// README: Stable priority queue; equal-priority items keep insertion order.
package container

import "slices"

// PriorityQueue removes items in ascending order as defined by less, with
// strict FIFO among equal items. A plain binary heap does not give stable
// ties, which the event queue depends on, so this keeps a sorted slice:
// Push inserts after every item that compares <= the new one.
type PriorityQueue[T any] struct {
	items []T
	less  func(a, b T) bool
}

// NewPriorityQueue returns a queue ordered by less. less must be a strict
// weak ordering; items where neither compares less are considered equal
// and come out in insertion order.
func NewPriorityQueue[T any](less func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{less: less}
}

// Push inserts item at the position after all currently-held items that
// compare <= it.
func (pq *PriorityQueue[T]) Push(item T) {
	i := 0
	for i < len(pq.items) && !pq.less(item, pq.items[i]) {
		i++
	}
	pq.items = slices.Insert(pq.items, i, item)
}

// Pop removes and returns the minimum item.
// Panics with ErrEmpty if the queue is empty.
func (pq *PriorityQueue[T]) Pop() T {
	if len(pq.items) == 0 {
		panic(ErrEmpty)
	}
	item := pq.items[0]
	pq.items = pq.items[1:]
	return item
}

func (pq *PriorityQueue[T]) Len() int {
	return len(pq.items)
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return len(pq.items) == 0
}
