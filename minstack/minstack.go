// Package minstack provides a LIFO stack with constant-time minimum
// retrieval.
//
// Every push shadows the main stack with a push onto a parallel minimum
// stack, whose top is always the minimum of the elements currently held;
// pops retire both tops in lockstep. The shadow stack costs one extra
// slot per element and keeps Min strictly O(1) with no conditional
// bookkeeping on the pop path.
package minstack

import (
	"cmp"

	collections "github.com/Atjowt/extended-collections"
)

// A Stack is a slice-backed LIFO stack of values of type T that tracks
// its minimum under a collections.CompareFunc. It grows without bound,
// so pushes never fail.
//
// A Stack is not safe for concurrent use.
type Stack[T any] struct {
	items []T
	mins  []T
	cmp   collections.CompareFunc[T]
}

// New returns an empty stack tracking the minimum under the natural
// order of T.
func New[T cmp.Ordered]() *Stack[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc returns an empty stack tracking the minimum under compare.
func NewFunc[T any](compare collections.CompareFunc[T]) *Stack[T] {
	if compare == nil {
		panic("minstack: nil comparison function")
	}
	return &Stack[T]{cmp: compare}
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty returns true if the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	min := item
	if n := len(s.mins); n > 0 && s.cmp(s.mins[n-1], item) < 0 {
		min = s.mins[n-1]
	}
	s.items = append(s.items, item)
	s.mins = append(s.mins, min)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, collections.ErrEmpty
	}
	item := s.items[n-1]
	s.items[n-1] = zero
	s.mins[n-1] = zero
	s.items = s.items[:n-1]
	s.mins = s.mins[:n-1]
	return item, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, collections.ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// Min returns the minimum element currently on the stack without
// removing it.
func (s *Stack[T]) Min() (T, error) {
	if len(s.mins) == 0 {
		var zero T
		return zero, collections.ErrEmpty
	}
	return s.mins[len(s.mins)-1], nil
}
