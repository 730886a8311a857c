package ringdeque

import (
	"iter"

	collections "github.com/Atjowt/extended-collections"
)

// A Deque is a double-ended queue of values of type T over a circular
// buffer. Pushes at either end fail with collections.ErrFull when the
// buffer is at capacity, unless the caller enables doubling growth.
//
// A Deque is not safe for concurrent use.
type Deque[T any] struct {
	items []T
	left  int
	right int
	count int
}

// New returns an empty deque with the given capacity.
// A capacity below 1 is a precondition violation and panics.
func New[T any](capacity int) *Deque[T] {
	if capacity < 1 {
		panic("ringdeque: capacity must be at least 1")
	}
	return &Deque[T]{
		items: make([]T, capacity),
		left:  0,
		right: capacity - 1,
	}
}

// FromSlice returns a full deque holding a copy of items in order, with
// the leftmost element at index 0 and capacity equal to len(items).
func FromSlice[T any](items []T) *Deque[T] {
	if len(items) == 0 {
		return New[T](1)
	}
	d := &Deque[T]{
		items: make([]T, len(items)),
		left:  0,
		right: len(items) - 1,
		count: len(items),
	}
	copy(d.items, items)
	return d
}

// inc and dec are the only wraparound arithmetic in the package. Every
// push, pop and enumeration step goes through them.

func (d *Deque[T]) inc(i int) int {
	if i == len(d.items)-1 {
		return 0
	}
	return i + 1
}

func (d *Deque[T]) dec(i int) int {
	if i == 0 {
		return len(d.items) - 1
	}
	return i - 1
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int { return d.count }

// Cap returns the capacity of the backing buffer.
func (d *Deque[T]) Cap() int { return len(d.items) }

// IsEmpty returns true if the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool { return d.count == 0 }

// IsFull returns true if the deque is at capacity.
func (d *Deque[T]) IsFull() bool { return d.count == len(d.items) }

// PeekLeft returns the leftmost element without removing it.
func (d *Deque[T]) PeekLeft() (T, error) {
	if d.count == 0 {
		var zero T
		return zero, collections.ErrEmpty
	}
	return d.items[d.left], nil
}

// PeekRight returns the rightmost element without removing it.
func (d *Deque[T]) PeekRight() (T, error) {
	if d.count == 0 {
		var zero T
		return zero, collections.ErrEmpty
	}
	return d.items[d.right], nil
}

// PopLeft removes and returns the leftmost element.
func (d *Deque[T]) PopLeft() (T, error) {
	var zero T
	if d.count == 0 {
		return zero, collections.ErrEmpty
	}
	item := d.items[d.left]
	d.items[d.left] = zero
	d.left = d.inc(d.left)
	d.count--
	return item, nil
}

// PopRight removes and returns the rightmost element.
func (d *Deque[T]) PopRight() (T, error) {
	var zero T
	if d.count == 0 {
		return zero, collections.ErrEmpty
	}
	item := d.items[d.right]
	d.items[d.right] = zero
	d.right = d.dec(d.right)
	d.count--
	return item, nil
}

// PushLeft inserts item at the left end. At capacity it doubles the
// buffer when grow is true and returns collections.ErrFull otherwise.
func (d *Deque[T]) PushLeft(item T, grow bool) error {
	if d.count == len(d.items) {
		if !grow {
			return collections.ErrFull
		}
		d.Reallocate(2 * len(d.items))
	}
	d.left = d.dec(d.left)
	d.items[d.left] = item
	d.count++
	return nil
}

// PushRight inserts item at the right end. At capacity it doubles the
// buffer when grow is true and returns collections.ErrFull otherwise.
func (d *Deque[T]) PushRight(item T, grow bool) error {
	if d.count == len(d.items) {
		if !grow {
			return collections.ErrFull
		}
		d.Reallocate(2 * len(d.items))
	}
	d.right = d.inc(d.right)
	d.items[d.right] = item
	d.count++
	return nil
}

// Reallocate replaces the backing buffer with one of size newCapacity,
// copying the logical sequence in left-to-right order to index 0. The
// resulting layout is always contiguous. Growth is atomic: the deque is
// untouched until the copy into the new buffer completes.
//
// newCapacity must be at least Len(); anything smaller is a precondition
// violation and panics rather than truncating silently.
func (d *Deque[T]) Reallocate(newCapacity int) {
	if newCapacity < d.count {
		panic("ringdeque: new capacity smaller than logical length")
	}
	items := make([]T, newCapacity)
	if d.count > 0 {
		if d.left <= d.right {
			copy(items, d.items[d.left:d.right+1])
		} else {
			// wrapped: tail of the old array, then its head
			n := copy(items, d.items[d.left:])
			copy(items[n:], d.items[:d.right+1])
		}
	}
	d.items = items
	d.left = 0
	if d.count > 0 {
		d.right = d.count - 1
	} else {
		d.right = newCapacity - 1
	}
}

// All returns a lazy left-to-right view of the logical sequence. The view
// is live, not a snapshot: mutating the deque while ranging over it is
// undefined.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		i := d.left
		for n := 0; n < d.count; n++ {
			if !yield(d.items[i]) {
				return
			}
			i = d.inc(i)
		}
	}
}
