package ringdeque

/*

# Ring deque primitives

This package provides a generic double-ended queue over a fixed-capacity
circular buffer, with optional doubling growth on push.

## Layout

The logical sequence occupies `count` slots of the backing array starting
at `left` and wrapping modulo the capacity:

	contiguous (left <= right):

	    0     left        right    cap-1
	    .  .  [a  b  c  d  e]  .  .

	wrapped (left > right):

	    0   right          left   cap-1
	    [d  e]  .  .  .  .  [a  b  c]

When the deque is empty, `right` sits one decrement behind `left`; the two
indices carry no other meaning at count zero.

## Invariants

1. All wraparound arithmetic goes through exactly two helpers, inc and
   dec. No other modulo logic exists in the package, so the circular
   invariant has one authoritative definition.
2. A vacated slot is overwritten with the zero value of T immediately
   after logical removal, so removed reference-type elements do not
   outlive their membership.
3. Reallocate always produces a contiguous layout starting at index 0,
   copying in logical (left-to-right) order. The wrapped case needs two
   copy segments: the tail of the old array, then its head.

## Enumeration

All returns a lazy left-to-right view that walks the live indices. It is
not a snapshot; mutating the deque during iteration is undefined.

*/
