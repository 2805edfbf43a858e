package quickhull

import "github.com/golang/geo/r3"

// Индексы в аренах вершин, ребер и граней
type VertexIndex int
type EdgeIndex int
type FaceIndex int

const (
	EmptyVertex = VertexIndex(-1)
	EmptyEdge   = EdgeIndex(-1)
	EmptyFace   = FaceIndex(-1)
)

// Vertex - обертка над входной точкой. prev/next - связи в одном из списков (assigned/unassigned),
// face - грань, которая сейчас "видит" точку.
type Vertex struct {
	Point r3.Vector
	// позиция точки во входном срезе
	Index int

	prev VertexIndex
	next VertexIndex
	face FaceIndex
}

func newVertex(point r3.Vector, index int) Vertex {
	return Vertex{
		Point: point,
		Index: index,
		prev:  EmptyVertex,
		next:  EmptyVertex,
		face:  EmptyFace,
	}
}

// VertexList - двусвязный список поверх общей арены вершин.
// Все операции, кроме AppendChain, O(1) и только переписывают индексы.
type VertexList struct {
	nodes []Vertex
	head  VertexIndex
	tail  VertexIndex
}

func NewVertexList(nodes []Vertex) VertexList {
	return VertexList{nodes: nodes, head: EmptyVertex, tail: EmptyVertex}
}

func (l *VertexList) First() VertexIndex { return l.head }

func (l *VertexList) Last() VertexIndex { return l.tail }

func (l *VertexList) Empty() bool { return l.head == EmptyVertex }

func (l *VertexList) Clear() {
	l.head = EmptyVertex
	l.tail = EmptyVertex
}

// Next возвращает следующую вершину после v или EmptyVertex
func (l *VertexList) Next(v VertexIndex) VertexIndex { return l.nodes[v].next }

func (l *VertexList) Prev(v VertexIndex) VertexIndex { return l.nodes[v].prev }

// Вставка v перед target
func (l *VertexList) InsertBefore(target, v VertexIndex) {
	nodes := l.nodes
	nodes[v].prev = nodes[target].prev
	nodes[v].next = target

	if nodes[v].prev == EmptyVertex {
		l.head = v
	} else {
		nodes[nodes[v].prev].next = v
	}

	nodes[target].prev = v
}

// Вставка v сразу после target
func (l *VertexList) InsertAfter(target, v VertexIndex) {
	nodes := l.nodes
	nodes[v].prev = target
	nodes[v].next = nodes[target].next

	if nodes[v].next == EmptyVertex {
		l.tail = v
	} else {
		nodes[nodes[v].next].prev = v
	}

	nodes[target].next = v
}

func (l *VertexList) Append(v VertexIndex) {
	nodes := l.nodes
	if l.head == EmptyVertex {
		l.head = v
	} else {
		nodes[l.tail].next = v
	}

	nodes[v].prev = l.tail
	nodes[v].next = EmptyVertex
	l.tail = v
}

// Добавляет в конец целую цепочку, начинающуюся с v.
// Связи внутри цепочки не трогаем, только границы.
func (l *VertexList) AppendChain(v VertexIndex) {
	nodes := l.nodes
	if l.head == EmptyVertex {
		l.head = v
	} else {
		nodes[l.tail].next = v
	}

	nodes[v].prev = l.tail

	for nodes[v].next != EmptyVertex {
		v = nodes[v].next
	}

	l.tail = v
}

func (l *VertexList) Remove(v VertexIndex) {
	nodes := l.nodes
	if nodes[v].prev == EmptyVertex {
		l.head = nodes[v].next
	} else {
		nodes[nodes[v].prev].next = nodes[v].next
	}

	if nodes[v].next == EmptyVertex {
		l.tail = nodes[v].prev
	} else {
		nodes[nodes[v].next].prev = nodes[v].prev
	}
}

// Вырезает непрерывный участок a..b. a и b обязаны ограничивать
// реальный участок этого списка, это не проверяется.
func (l *VertexList) RemoveChain(a, b VertexIndex) {
	nodes := l.nodes
	if nodes[a].prev == EmptyVertex {
		l.head = nodes[b].next
	} else {
		nodes[nodes[a].prev].next = nodes[b].next
	}

	if nodes[b].next == EmptyVertex {
		l.tail = nodes[a].prev
	} else {
		nodes[nodes[b].next].prev = nodes[a].prev
	}
}

// Items собирает индексы списка по порядку
func (l *VertexList) Items() []VertexIndex {
	var items []VertexIndex
	for v := l.head; v != EmptyVertex; v = l.nodes[v].next {
		items = append(items, v)
	}
	return items
}
