package seqtrie

import "iter"

type node[K comparable] struct {
	children map[K]*node[K]
	terminal bool
}

// A Trie stores sequences of K and answers exact and prefix membership
// queries. Missing sequences are reported as not-found results, never as
// errors: a miss is an expected outcome of lookup.
//
// A Trie is not safe for concurrent use.
type Trie[K comparable] struct {
	root node[K]
	size int
}

// New returns an empty trie.
func New[K comparable]() *Trie[K] {
	return &Trie[K]{}
}

// Len returns the number of stored sequences.
func (t *Trie[K]) Len() int { return t.size }

// Insert stores seq, creating one node per key not already on the path
// and marking the final node terminal. Inserting an already-stored
// sequence changes nothing.
func (t *Trie[K]) Insert(seq []K) {
	n := &t.root
	for _, k := range seq {
		child, ok := n.children[k]
		if !ok {
			child = &node[K]{}
			if n.children == nil {
				n.children = make(map[K]*node[K])
			}
			n.children[k] = child
		}
		n = child
	}
	if !n.terminal {
		n.terminal = true
		t.size++
	}
}

// walk follows seq from the root and returns the node reached, or false
// if any key on the path is missing.
func (t *Trie[K]) walk(seq []K) (*node[K], bool) {
	n := &t.root
	for _, k := range seq {
		child, ok := n.children[k]
		if !ok {
			return nil, false
		}
		n = child
	}
	return n, true
}

// Search reports whether seq is a stored sequence. A sequence that is
// only a prefix of another stored sequence is not found.
func (t *Trie[K]) Search(seq []K) bool {
	n, ok := t.walk(seq)
	return ok && n.terminal
}

// SearchPrefix reports whether any stored sequence starts with prefix,
// including prefix itself.
func (t *Trie[K]) SearchPrefix(prefix []K) bool {
	_, ok := t.walk(prefix)
	return ok
}

// pathStep records one edge of a removal walk: the key, and the node it
// was followed from.
type pathStep[K comparable] struct {
	parent *node[K]
	key    K
}

// Remove deletes seq from the trie and reports whether anything was
// removed. When seq is absent, or present only as the prefix of another
// stored sequence, the trie is left untouched and Remove returns false.
//
// Removal prunes the dead branch it leaves behind: walking the recorded
// path back from the leaf, each childless non-terminal node is deleted
// from its parent, stopping at the first node with remaining children,
// a terminal marker, or the root.
func (t *Trie[K]) Remove(seq []K) bool {
	path := make([]pathStep[K], 0, len(seq))
	n := &t.root
	for _, k := range seq {
		child, ok := n.children[k]
		if !ok {
			return false
		}
		path = append(path, pathStep[K]{parent: n, key: k})
		n = child
	}
	if !n.terminal {
		return false
	}
	n.terminal = false
	t.size--
	for i := len(path) - 1; i >= 0; i-- {
		if len(n.children) > 0 || n.terminal {
			break
		}
		delete(path[i].parent.children, path[i].key)
		n = path[i].parent
	}
	return true
}

// Sequences returns a lazy view of every stored sequence starting with
// prefix, including prefix itself if stored, in unspecified order. Each
// yielded slice is a fresh copy owned by the consumer. The view is live:
// mutating the trie during iteration is undefined.
func (t *Trie[K]) Sequences(prefix []K) iter.Seq[[]K] {
	return func(yield func([]K) bool) {
		n, ok := t.walk(prefix)
		if !ok {
			return
		}
		stem := append([]K(nil), prefix...)
		descend(n, stem, yield)
	}
}

// descend yields the stored sequences at or below n. stem holds the keys
// on the path from the root to n; yielded slices are copied out of it.
func descend[K comparable](n *node[K], stem []K, yield func([]K) bool) bool {
	if n.terminal {
		if !yield(append([]K(nil), stem...)) {
			return false
		}
	}
	for k, child := range n.children {
		if !descend(child, append(stem, k), yield) {
			return false
		}
	}
	return true
}
