package seqtrie

/*

# Sequence trie primitives

This package provides a prefix tree keyed by sequences of any comparable
type. It is not a byte- or rune-specialized trie: the alphabet is
whatever K is, and each node holds its children in a map, so alphabet
size is unbounded and carries no per-node storage cost beyond the keys
actually present.

## Structure

Every node owns a mapping from key to child node plus a terminal marker.
A stored sequence is a root-to-node path whose final node is terminal.
A sequence that is only the prefix of another stored sequence reaches a
non-terminal node and is therefore not found by Search, only by
SearchPrefix.

Ownership is a strict tree: each node is owned exclusively by its parent
and there are no back references. The removal walk records the
(parent, key) pairs it traverses instead, so pruning never needs a
pointer from child to parent.

## Dead branches

A node with no children and no terminal marker is dead. Dead nodes must
not outlive the operation that created them: Remove prunes bottom-up
along its recorded path, deleting childless non-terminal nodes until it
reaches a node that still has children, is itself terminal, or is the
root. Without this, repeated insert/remove cycles would accumulate
unreachable branches indefinitely; there is no separate collection pass.

*/
