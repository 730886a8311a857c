// Package binaryheap provides an array-backed binary heap with an
// injectable total order.
//
// The heap is laid out implicitly: the children of index i sit at 2i+1
// and 2i+2. For every non-root index i with parent p the invariant
// cmp(items[p], items[i]) <= 0 holds under the current comparison, so
// the root is the minimum under the natural order and the maximum under
// a reversed one. The comparison is first-class configuration: swapping
// it changes the heap's polarity without touching the storage.
package binaryheap

import (
	"cmp"

	collections "github.com/Atjowt/extended-collections"
)

// A Heap is a binary heap of values of type T ordered by a
// collections.CompareFunc. Pushes fail with collections.ErrFull at
// capacity unless the caller enables doubling growth.
//
// A Heap is not safe for concurrent use.
type Heap[T any] struct {
	items []T
	count int
	cmp   collections.CompareFunc[T]
}

// New returns an empty min-heap over the natural order of T with the
// given capacity. A capacity below 1 is a precondition violation and
// panics.
func New[T cmp.Ordered](capacity int) *Heap[T] {
	return NewFunc[T](capacity, cmp.Compare[T])
}

// NewFunc returns an empty heap ordered by compare with the given
// capacity. The element ranked first by compare surfaces at the root.
func NewFunc[T any](capacity int, compare collections.CompareFunc[T]) *Heap[T] {
	if capacity < 1 {
		panic("binaryheap: capacity must be at least 1")
	}
	if compare == nil {
		panic("binaryheap: nil comparison function")
	}
	return &Heap[T]{
		items: make([]T, capacity),
		cmp:   compare,
	}
}

// SetCompare replaces the heap's comparison function. Existing elements
// are NOT re-heapified: replacing the order is only safe while the heap
// is empty or its contents already satisfy the new order. That is the
// caller's responsibility.
func (h *Heap[T]) SetCompare(compare collections.CompareFunc[T]) {
	if compare == nil {
		panic("binaryheap: nil comparison function")
	}
	h.cmp = compare
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return h.count }

// Cap returns the capacity of the backing storage.
func (h *Heap[T]) Cap() int { return len(h.items) }

// IsEmpty returns true if the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return h.count == 0 }

// IsFull returns true if the heap is at capacity.
func (h *Heap[T]) IsFull() bool { return h.count == len(h.items) }

// Peek returns the root element without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if h.count == 0 {
		var zero T
		return zero, collections.ErrEmpty
	}
	return h.items[0], nil
}

// Push inserts item and restores the heap order by sifting it up toward
// the root. At capacity it doubles the storage when grow is true and
// returns collections.ErrFull otherwise.
func (h *Heap[T]) Push(item T, grow bool) error {
	if h.count == len(h.items) {
		if !grow {
			return collections.ErrFull
		}
		h.Reallocate(2 * len(h.items))
	}
	h.items[h.count] = item
	h.count++
	h.siftUp(h.count - 1)
	return nil
}

// Pop removes and returns the root element. The last element moves into
// the root slot and sifts down until the heap order holds again.
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	if h.count == 0 {
		return zero, collections.ErrEmpty
	}
	root := h.items[0]
	h.count--
	h.items[0] = h.items[h.count]
	h.items[h.count] = zero
	if h.count > 0 {
		h.siftDown(0)
	}
	return root, nil
}

// Reallocate replaces the backing storage with one of size newCapacity,
// preserving every element at its current index. The heap is contiguous
// from index 0, so no compaction or reordering happens.
//
// newCapacity must be at least Len(); anything smaller panics.
func (h *Heap[T]) Reallocate(newCapacity int) {
	if newCapacity < h.count {
		panic("binaryheap: new capacity smaller than logical length")
	}
	items := make([]T, newCapacity)
	copy(items, h.items[:h.count])
	h.items = items
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if h.cmp(h.items[i], h.items[p]) >= 0 {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *Heap[T]) siftDown(i int) {
	for {
		c := left(i)
		if c >= h.count {
			return
		}
		// Ties break toward the left child: the right child is chosen
		// only when it strictly precedes the left one.
		if r := right(i); r < h.count && h.cmp(h.items[r], h.items[c]) < 0 {
			c = r
		}
		if h.cmp(h.items[c], h.items[i]) >= 0 {
			return
		}
		h.items[i], h.items[c] = h.items[c], h.items[i]
		i = c
	}
}
