package quickhull

import (
	"github.com/0x0FACED/go-quickhull/pkg/geom"
	"github.com/golang/geo/r3"
)

type Flag uint8

const (
	Visible Flag = iota
	Deleted
)

func (f Flag) String() string {
	switch f {
	case Visible:
		return "visible"
	case Deleted:
		return "deleted"
	}
	return "unknown"
}

// HalfEdge - полуребро треугольной грани.
// Head - индекс вершины, в которую ребро входит; хвост берется у Prev.
type HalfEdge struct {
	Head int
	Next EdgeIndex
	Prev EdgeIndex
	Twin EdgeIndex
	Face FaceIndex
}

// Face - треугольная грань с кольцом из трех полуребер против часовой стрелки,
// нормаль смотрит наружу.
type Face struct {
	Edge     EdgeIndex
	Plane    geom.Plane
	Midpoint r3.Vector
	Area     float64
	Flag     Flag

	// первая вершина непрерывного участка в assigned, который видит эта грань
	outside VertexIndex
}

func (f Face) Normal() r3.Vector { return f.Plane.Normal }

// Mesh хранит полуребра и грани в срезах, ссылки между ними - индексы.
// Points - входные точки, полуребра ссылаются на них по индексу.
type Mesh struct {
	Points []r3.Vector
	Edges  []HalfEdge
	Faces  []Face
}

func NewMesh(points []r3.Vector) *Mesh {
	return &Mesh{Points: points}
}

// NewFace строит грань по трем точкам (индексы в Points): кольцо a -> b -> c,
// затем центр, площадь и плоскость.
func (m *Mesh) NewFace(a, b, c int) FaceIndex {
	f := FaceIndex(len(m.Faces))
	m.Faces = append(m.Faces, Face{Edge: EmptyEdge, outside: EmptyVertex})

	m.fromContour(f, a, b, c)
	m.compute(f)

	return f
}

// Кольцо полуребер по упорядоченному контуру
func (m *Mesh) fromContour(f FaceIndex, contour ...int) {
	first := EdgeIndex(len(m.Edges))
	n := EdgeIndex(len(contour))

	for i, head := range contour {
		e := first + EdgeIndex(i)
		m.Edges = append(m.Edges, HalfEdge{
			Head: head,
			Next: first + (e-first+1)%n,
			Prev: first + (e-first+n-1)%n,
			Twin: EmptyEdge,
			Face: f,
		})
	}

	m.Faces[f].Edge = first
}

func (m *Mesh) compute(f FaceIndex) {
	face := &m.Faces[f]
	a, b, c := m.triangle(f)

	cross := b.Sub(a).Cross(c.Sub(a))
	face.Area = cross.Norm() / 2
	face.Midpoint = geom.Centroid(a, b, c)

	normal := cross
	if face.Area > 0 {
		normal = cross.Mul(0.5 / face.Area)
	}
	face.Plane = geom.PlaneFromNormalAndPoint(normal, face.Midpoint)
}

// Edge возвращает ребро грани со смещением i от канонического:
// по Next для i > 0, по Prev для i < 0.
func (m *Mesh) Edge(f FaceIndex, i int) EdgeIndex {
	e := m.Faces[f].Edge
	for ; i > 0; i-- {
		e = m.Edges[e].Next
	}
	for ; i < 0; i++ {
		e = m.Edges[e].Prev
	}
	return e
}

func (m *Mesh) Tail(e EdgeIndex) int {
	prev := m.Edges[e].Prev
	if prev == EmptyEdge {
		return -1
	}
	return m.Edges[prev].Head
}

func (m *Mesh) HeadPoint(e EdgeIndex) r3.Vector { return m.Points[m.Edges[e].Head] }

func (m *Mesh) TailPoint(e EdgeIndex) r3.Vector { return m.Points[m.Tail(e)] }

// Length - длина ребра
func (m *Mesh) Length(e EdgeIndex) float64 {
	return m.HeadPoint(e).Sub(m.TailPoint(e)).Norm()
}

func (m *Mesh) SetTwin(a, b EdgeIndex) {
	m.Edges[a].Twin = b
	m.Edges[b].Twin = a
}

func (m *Mesh) DistanceToPoint(f FaceIndex, p r3.Vector) float64 {
	return m.Faces[f].Plane.DistanceToPoint(p)
}

// Vertices - индексы вершин грани в порядке обхода
func (m *Mesh) Vertices(f FaceIndex) [3]int {
	e0 := m.Faces[f].Edge
	e1 := m.Edges[e0].Next
	e2 := m.Edges[e1].Next
	return [3]int{m.Edges[e0].Head, m.Edges[e1].Head, m.Edges[e2].Head}
}

func (m *Mesh) Triangle(f FaceIndex) [3]r3.Vector {
	a, b, c := m.triangle(f)
	return [3]r3.Vector{a, b, c}
}

func (m *Mesh) triangle(f FaceIndex) (a, b, c r3.Vector) {
	v := m.Vertices(f)
	return m.Points[v[0]], m.Points[v[1]], m.Points[v[2]]
}

// Opposite - грань по другую сторону ребра e
func (m *Mesh) Opposite(e EdgeIndex) FaceIndex {
	twin := m.Edges[e].Twin
	if twin == EmptyEdge {
		return EmptyFace
	}
	return m.Edges[twin].Face
}

// Clone - глубокая копия. Points общие: точки принадлежат вызывающему.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Points: m.Points,
		Edges:  append([]HalfEdge(nil), m.Edges...),
		Faces:  append([]Face(nil), m.Faces...),
	}
}

// Compact собирает новую сетку только из перечисленных граней,
// индексы ребер и граней переназначаются. Твины на выброшенные ребра становятся EmptyEdge.
func (m *Mesh) Compact(faces []FaceIndex) (*Mesh, []FaceIndex) {
	out := &Mesh{
		Points: m.Points,
		Edges:  make([]HalfEdge, 0, len(faces)*3),
		Faces:  make([]Face, 0, len(faces)),
	}

	faceMap := make(map[FaceIndex]FaceIndex, len(faces))
	edgeMap := make(map[EdgeIndex]EdgeIndex, len(faces)*3)
	newFaces := make([]FaceIndex, 0, len(faces))

	for _, f := range faces {
		nf := FaceIndex(len(out.Faces))
		faceMap[f] = nf
		newFaces = append(newFaces, nf)

		face := m.Faces[f]
		face.outside = EmptyVertex
		out.Faces = append(out.Faces, face)

		e := face.Edge
		for {
			edgeMap[e] = EdgeIndex(len(out.Edges))
			out.Edges = append(out.Edges, m.Edges[e])
			e = m.Edges[e].Next
			if e == face.Edge {
				break
			}
		}
	}

	remap := func(e EdgeIndex) EdgeIndex {
		if ne, ok := edgeMap[e]; ok {
			return ne
		}
		return EmptyEdge
	}

	for i := range out.Edges {
		edge := &out.Edges[i]
		edge.Next = remap(edge.Next)
		edge.Prev = remap(edge.Prev)
		edge.Twin = remap(edge.Twin)
		edge.Face = faceMap[edge.Face]
	}
	for i := range out.Faces {
		out.Faces[i].Edge = remap(out.Faces[i].Edge)
	}

	return out, newFaces
}
