package seqtrie

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func seq(s string) []string {
	return strings.Split(s, "")
}

func collect(t *Trie[string], prefix []string) []string {
	var out []string
	for s := range t.Sequences(prefix) {
		out = append(out, strings.Join(s, ""))
	}
	sort.Strings(out)
	return out
}

func TestInsertSearchPrefix(t *testing.T) {
	tr := New[string]()
	tr.Insert(seq("cat"))
	tr.Insert(seq("car"))

	require.True(t, tr.Search(seq("cat")))
	require.True(t, tr.Search(seq("car")))
	// A bare prefix is not a stored sequence.
	require.False(t, tr.Search(seq("ca")))
	require.False(t, tr.Search(seq("dog")))

	require.True(t, tr.SearchPrefix(seq("ca")))
	require.True(t, tr.SearchPrefix(seq("cat")))
	require.False(t, tr.SearchPrefix(seq("cab")))
	require.Equal(t, 2, tr.Len())
}

func TestInsertIdempotent(t *testing.T) {
	tr := New[string]()
	tr.Insert(seq("cat"))
	tr.Insert(seq("cat"))
	require.Equal(t, 1, tr.Len())
	require.True(t, tr.Search(seq("cat")))

	// Structural shape unchanged: still a single chain c->a->t.
	n := &tr.root
	for _, k := range []string{"c", "a", "t"} {
		require.Len(t, n.children, 1)
		n = n.children[k]
		require.NotNil(t, n)
	}
	require.Empty(t, n.children)
	require.True(t, n.terminal)
}

func TestRemovePrunesDeadBranch(t *testing.T) {
	tr := New[string]()
	tr.Insert(seq("cat"))

	require.True(t, tr.Remove(seq("cat")))
	require.Equal(t, 0, tr.Len())
	// Nothing below the root survives.
	require.Empty(t, tr.root.children)
	require.False(t, tr.Search(seq("cat")))
	require.False(t, tr.SearchPrefix(seq("c")))
}

func TestRemoveStopsAtSharedBranch(t *testing.T) {
	tr := New[string]()
	tr.Insert(seq("cat"))
	tr.Insert(seq("car"))

	require.True(t, tr.Remove(seq("cat")))
	require.False(t, tr.Search(seq("cat")))
	require.True(t, tr.Search(seq("car")))
	require.True(t, tr.SearchPrefix(seq("ca")))

	// Only the dead "t" branch went away.
	ca, ok := tr.walk(seq("ca"))
	require.True(t, ok)
	require.Len(t, ca.children, 1)
	require.Contains(t, ca.children, "r")
}

func TestRemoveStopsAtTerminalAncestor(t *testing.T) {
	tr := New[string]()
	tr.Insert(seq("ca"))
	tr.Insert(seq("cat"))

	require.True(t, tr.Remove(seq("cat")))
	// "ca" is terminal, so pruning must not climb through it.
	require.True(t, tr.Search(seq("ca")))
	require.Equal(t, 1, tr.Len())
	ca, ok := tr.walk(seq("ca"))
	require.True(t, ok)
	require.Empty(t, ca.children)
}

func TestRemoveMissingIsNoop(t *testing.T) {
	tr := New[string]()
	tr.Insert(seq("cat"))

	// Absent path.
	require.False(t, tr.Remove(seq("dog")))
	// Present path, but only as a prefix of a stored sequence.
	require.False(t, tr.Remove(seq("ca")))
	// Extends past a stored sequence.
	require.False(t, tr.Remove(seq("cats")))

	require.Equal(t, 1, tr.Len())
	require.True(t, tr.Search(seq("cat")))
}

func TestRemoveReinsertCycle(t *testing.T) {
	tr := New[string]()
	for range 50 {
		tr.Insert(seq("cycle"))
		require.True(t, tr.Remove(seq("cycle")))
	}
	require.Empty(t, tr.root.children)
	require.Equal(t, 0, tr.Len())
}

func TestEmptySequence(t *testing.T) {
	tr := New[string]()
	require.False(t, tr.Search(nil))
	require.True(t, tr.SearchPrefix(nil))

	tr.Insert(nil)
	require.True(t, tr.Search(nil))
	require.Equal(t, 1, tr.Len())
	require.True(t, tr.Remove(nil))
	require.False(t, tr.Search(nil))
	require.Equal(t, 0, tr.Len())
}

func TestSequencesEnumeratesUnderPrefix(t *testing.T) {
	tr := New[string]()
	for _, w := range []string{"cat", "car", "ca", "cone", "dog"} {
		tr.Insert(seq(w))
	}

	require.Equal(t, []string{"ca", "car", "cat"}, collect(tr, seq("ca")))
	require.Equal(t, []string{"ca", "car", "cat", "cone"}, collect(tr, seq("c")))
	require.Equal(t, []string{"dog"}, collect(tr, seq("dog")))
	require.Nil(t, collect(tr, seq("x")))
	require.Equal(t, []string{"ca", "car", "cat", "cone", "dog"}, collect(tr, nil))
}

func TestSequencesStopsEarly(t *testing.T) {
	tr := New[string]()
	for _, w := range []string{"a", "b", "c"} {
		tr.Insert(seq(w))
	}
	var got int
	for range tr.Sequences(nil) {
		got++
		break
	}
	require.Equal(t, 1, got)
}

func TestIntKeyedSequences(t *testing.T) {
	tr := New[int]()
	tr.Insert([]int{1, 2, 3})
	tr.Insert([]int{1, 2})
	require.True(t, tr.Search([]int{1, 2}))
	require.True(t, tr.SearchPrefix([]int{1}))
	require.False(t, tr.Search([]int{2}))
	require.True(t, tr.Remove([]int{1, 2, 3}))
	require.True(t, tr.Search([]int{1, 2}))
}
