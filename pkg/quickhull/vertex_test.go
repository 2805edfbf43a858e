package quickhull

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"
)

func newTestList(n int) VertexList {
	nodes := make([]Vertex, n)
	for i := range nodes {
		nodes[i] = newVertex(r3.Vector{X: float64(i)}, i)
	}
	return NewVertexList(nodes)
}

// Проверяет порядок в обе стороны
func requireOrder(t *testing.T, l *VertexList, want ...VertexIndex) {
	t.Helper()

	if len(want) == 0 {
		require.True(t, l.Empty())
		require.Equal(t, EmptyVertex, l.First())
		require.Equal(t, EmptyVertex, l.Last())
		return
	}

	require.Equal(t, want, l.Items())

	var back []VertexIndex
	for v := l.Last(); v != EmptyVertex; v = l.Prev(v) {
		back = append([]VertexIndex{v}, back...)
	}
	require.Equal(t, want, back)
}

func TestVertexListAppendRemove(t *testing.T) {
	l := newTestList(4)
	requireOrder(t, &l)

	for v := VertexIndex(0); v < 4; v++ {
		l.Append(v)
	}
	requireOrder(t, &l, 0, 1, 2, 3)

	l.Remove(0)
	requireOrder(t, &l, 1, 2, 3)
	l.Remove(3)
	requireOrder(t, &l, 1, 2)
	l.Remove(1)
	l.Remove(2)
	requireOrder(t, &l)
}

func TestVertexListInsert(t *testing.T) {
	l := newTestList(5)
	l.Append(0)
	l.Append(1)

	l.InsertAfter(0, 2)
	requireOrder(t, &l, 0, 2, 1)

	l.InsertAfter(1, 3)
	requireOrder(t, &l, 0, 2, 1, 3)

	l.InsertBefore(0, 4)
	requireOrder(t, &l, 4, 0, 2, 1, 3)
}

func TestVertexListChains(t *testing.T) {
	l := newTestList(6)
	for v := VertexIndex(0); v < 6; v++ {
		l.Append(v)
	}

	l.RemoveChain(1, 3)
	requireOrder(t, &l, 0, 4, 5)

	l.RemoveChain(0, 0)
	requireOrder(t, &l, 4, 5)

	l.RemoveChain(4, 5)
	requireOrder(t, &l)

	// собираем цепочку 1 -> 2 -> 3 вручную и переносим целиком
	other := NewVertexList(l.nodes)
	other.Append(1)
	other.Append(2)
	other.Append(3)
	other.RemoveChain(1, 3)
	l.nodes[1].prev = EmptyVertex
	l.nodes[3].next = EmptyVertex

	l.Append(0)
	l.AppendChain(1)
	requireOrder(t, &l, 0, 1, 2, 3)
	requireOrder(t, &other)

	empty := NewVertexList(l.nodes)
	l.Clear()
	l.nodes[4].next = EmptyVertex
	empty.AppendChain(4)
	requireOrder(t, &empty, 4)
	requireOrder(t, &l)
}
