package circularlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkRing walks the ring from head and fails if it is not a single
// closed cycle covering every live slot exactly once.
func checkRing[T comparable](t *testing.T, l *List[T]) {
	t.Helper()

	live := len(l.nodes) - len(l.free)
	if l.head == nilIndex {
		assert.Equal(t, 0, live)
		return
	}

	seen := make(map[int]bool)
	i := l.head
	for {
		require.False(t, seen[i], "node %d visited twice", i)
		seen[i] = true
		require.NotEqual(t, nilIndex, l.nodes[i].next, "open link at %d", i)
		i = l.nodes[i].next
		if i == l.head {
			break
		}
	}
	assert.Equal(t, live, len(seen))
}

func TestSingleNodePointsToItself(t *testing.T) {
	l := New[int]()
	l.InsertEnd(1)
	l.InsertEnd(2)
	l.Clear()
	l.InsertFront(5)

	require.NotEqual(t, nilIndex, l.head)
	assert.Equal(t, l.head, l.nodes[l.head].next)
	checkRing(t, l)
}

func TestRingStaysClosed(t *testing.T) {
	l := New[int]()
	ops := []func(){
		func() { l.InsertEnd(1) },
		func() { l.InsertFront(2) },
		func() { l.InsertEnd(3) },
		func() { l.DeleteValue(2) },
		func() { l.InsertFront(4) },
		func() { l.DeleteValue(3) },
		func() { l.DeleteValue(9) },
		func() { l.InsertEnd(5) },
		func() { l.DeleteValue(1) },
		func() { l.DeleteValue(4) },
		func() { l.DeleteValue(5) },
		func() { l.InsertFront(6) },
	}

	for _, op := range ops {
		op()
		checkRing(t, l)
	}
}

func TestSlotsAreReused(t *testing.T) {
	l := New[int]()
	l.InsertEnd(1)
	l.InsertEnd(2)
	l.InsertEnd(3)

	require.True(t, l.DeleteValue(2))
	assert.Len(t, l.free, 1)

	l.InsertFront(4)
	assert.Len(t, l.nodes, 3)
	assert.Empty(t, l.free)
	assert.Equal(t, []int{4, 1, 3}, l.Values())
	checkRing(t, l)
}
