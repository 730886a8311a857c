package collections

/*

# Extended collections

This module is a small family of generic, in-memory container structures.
Each container lives in its own leaf package and is usable standalone:

  - ringdeque: a double-ended queue over a fixed-capacity circular buffer
  - binaryheap: an array-backed binary heap with an injectable total order
  - seqtrie: a prefix tree keyed by sequences of any comparable type
  - minstack: a LIFO stack with constant-time minimum retrieval

The packages share a deliberately uniform surface:

- construction takes a capacity (or a seed sequence) where the backing
  storage is bounded, and an optional comparison function where the
  structure is order-aware
- read-only properties `Len`, `Cap`, `IsEmpty`, `IsFull` where they apply
- bounded appends accept a `grow` flag; growth doubles the backing storage
  and is atomic from the caller's perspective

## Error identities

Exactly two failure kinds exist across the whole module, and both live
here so callers can discriminate them with `errors.Is` regardless of
which container produced them:

- ErrEmpty: any read or removal from a container holding zero elements
- ErrFull: a bounded append at capacity with growth disabled

Lookups that can legitimately miss (the trie's search and removal) report
found/not-found results instead; a missing key is not a failure.

## Concurrency

None of the containers is safe for concurrent mutation. Each instance is
owned by exactly one logical caller at a time; a multi-threaded host must
impose an external lock or single-owner discipline. Enumeration is a live
view over the backing storage, not a snapshot, so mutating a container
while ranging over it is a precondition violation, not a guarded case.

*/
