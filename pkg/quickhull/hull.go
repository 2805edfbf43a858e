package quickhull

import (
	"math"
	"sort"

	"github.com/0x0FACED/go-quickhull/pkg/geom"
	"github.com/golang/geo/r3"
	"go.uber.org/zap"
)

// Счетчики последнего построения
type Stats struct {
	Points       int
	Iterations   int
	FacesCreated int
	FacesDeleted int
	// точки, оказавшиеся внутри оболочки
	Discarded int
}

// ConvexHull - выпуклая оболочка, построенная QuickHull.
// Экземпляр можно переиспользовать для последовательных построений,
// но не из нескольких горутин одновременно.
type ConvexHull struct {
	mesh      *Mesh
	faces     []FaceIndex
	tolerance float64
	stats     Stats

	opts   []Option
	logger Logger
	// если > 0 - используется вместо вычисленной погрешности
	fixedTolerance float64
	validate       bool

	// буферы, переиспользуемые между построениями
	vertices []Vertex
	horizon  []EdgeIndex
	newFaces []FaceIndex
	stack    []horizonFrame
}

type Option func(*ConvexHull)

func WithLogger(l Logger) Option {
	return func(h *ConvexHull) {
		h.logger = l
	}
}

// WithTolerance задает погрешность вместо вычисляемой по входным точкам
func WithTolerance(eps float64) Option {
	if eps <= 0 {
		panic("WithTolerance: eps must be positive")
	}

	return func(h *ConvexHull) {
		h.fixedTolerance = eps
	}
}

// WithValidation включает проверку сетки после каждого построения
func WithValidation(enabled bool) Option {
	return func(h *ConvexHull) {
		h.validate = enabled
	}
}

func New(opts ...Option) *ConvexHull {
	h := &ConvexHull{
		mesh:   NewMesh(nil),
		opts:   opts,
		logger: zap.NewNop(),
	}
	for _, set := range opts {
		set(h)
	}
	return h
}

func (h *ConvexHull) ContainsPoint(p r3.Vector) bool {
	for _, f := range h.faces {
		if h.mesh.DistanceToPoint(f, p) > h.tolerance {
			return false
		}
	}
	return true
}

// Set принимает готовую сетку и список граней без пересчета. Сетка не копируется.
// Погрешность берется из WithTolerance, иначе считается по точкам сетки.
func (h *ConvexHull) Set(mesh *Mesh, faces []FaceIndex) *ConvexHull {
	h.mesh = mesh
	h.faces = faces
	h.tolerance = h.fixedTolerance
	if h.tolerance == 0 {
		h.tolerance = pointsTolerance(mesh.Points)
	}
	return h
}

// Та же формула, что и при построении: 3 * eps * сумма по осям max(|min|, |max|)
func pointsTolerance(points []r3.Vector) float64 {
	if len(points) == 0 {
		return 0
	}

	box := geom.BoxFromPoints(points)
	sum := math.Max(math.Abs(box.Min.X), math.Abs(box.Max.X)) +
		math.Max(math.Abs(box.Min.Y), math.Abs(box.Max.Y)) +
		math.Max(math.Abs(box.Min.Z), math.Abs(box.Max.Z))

	return 3 * geom.Epsilon * sum
}

// Copy делает h глубокой копией other. Логгер и опции h не меняются.
func (h *ConvexHull) Copy(other *ConvexHull) *ConvexHull {
	h.mesh = other.mesh.Clone()
	h.faces = append([]FaceIndex(nil), other.faces...)
	h.tolerance = other.tolerance
	h.stats = other.stats
	return h
}

func (h *ConvexHull) Clone() *ConvexHull {
	return New(h.opts...).Copy(h)
}

func (h *ConvexHull) Mesh() *Mesh { return h.mesh }

func (h *ConvexHull) FaceIndices() []FaceIndex { return h.faces }

func (h *ConvexHull) Tolerance() float64 { return h.tolerance }

func (h *ConvexHull) Stats() Stats { return h.stats }

func (h *ConvexHull) Len() int { return len(h.faces) }

func (h *ConvexHull) Faces() []Face {
	faces := make([]Face, 0, len(h.faces))
	for _, f := range h.faces {
		faces = append(faces, h.mesh.Faces[f])
	}
	return faces
}

func (h *ConvexHull) Triangles() [][3]r3.Vector {
	triangles := make([][3]r3.Vector, 0, len(h.faces))
	for _, f := range h.faces {
		triangles = append(triangles, h.mesh.Triangle(f))
	}
	return triangles
}

// Indices - индексы входных точек, по три на грань, против часовой стрелки снаружи
func (h *ConvexHull) Indices() []int {
	indices := make([]int, 0, len(h.faces)*3)
	for _, f := range h.faces {
		v := h.mesh.Vertices(f)
		indices = append(indices, v[0], v[1], v[2])
	}
	return indices
}

// HullVertices - отсортированные индексы входных точек, ставших вершинами оболочки
func (h *ConvexHull) HullVertices() []int {
	seen := make(map[int]struct{})
	var out []int
	for _, idx := range h.Indices() {
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

func (h *ConvexHull) SurfaceArea() float64 {
	var area float64
	for _, f := range h.faces {
		area += h.mesh.Faces[f].Area
	}
	return area
}

// Объем через сумму знаковых тетраэдров с вершиной в центре первой грани
func (h *ConvexHull) Volume() float64 {
	if len(h.faces) == 0 {
		return 0
	}

	origin := h.mesh.Faces[h.faces[0]].Midpoint
	var volume float64
	for _, f := range h.faces {
		a, b, c := h.mesh.triangle(f)
		a, b, c = a.Sub(origin), b.Sub(origin), c.Sub(origin)
		volume += a.Dot(b.Cross(c))
	}
	return volume / 6
}

func (h *ConvexHull) Validate() error {
	return h.mesh.Validate(h.faces)
}
