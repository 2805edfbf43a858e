package quickhull

import (
	"fmt"
	"math"

	"github.com/0x0FACED/go-quickhull/pkg/geom"
	"github.com/golang/geo/r3"
	"go.uber.org/zap"
)

// Минимум точек для тетраэдра
const minPoints = 4

// Состояние одного построения. В ConvexHull попадает только при успехе.
type builder struct {
	log       Logger
	mesh      *Mesh
	faces     []FaceIndex
	tolerance float64
	stats     Stats

	vertices []Vertex
	// точки, которые еще снаружи оболочки; точки одной грани идут подряд
	assigned VertexList
	// точки удаленных граней, ждущие переназначения
	unassigned VertexList

	horizon  []EdgeIndex
	newFaces []FaceIndex
	stack    []horizonFrame
}

// Кадр обхода горизонта: грань обходится от ребра после cross до cross
type horizonFrame struct {
	cross EdgeIndex
	edge  EdgeIndex
}

// FromPoints строит оболочку по точкам. При ошибке состояние h не меняется.
func (h *ConvexHull) FromPoints(points []r3.Vector) (*ConvexHull, error) {
	if len(points) < minPoints {
		err := fmt.Errorf("%w: need at least %d points, got %d", ErrInvalidInput, minPoints, len(points))
		h.logger.Error("[qh] Недостаточно точек", zap.Int("points", len(points)), zap.Error(err))
		return nil, err
	}

	h.logger.Info("[qh] Построение оболочки запущено", zap.Int("points", len(points)))

	b := h.newBuilder(points)
	defer h.reset(b)

	if err := b.run(); err != nil {
		h.logger.Error("[qh] Построение прервано", zap.Error(err))
		return nil, err
	}

	// выкидываем удаленные грани вместе с их ребрами
	mesh, faces := b.mesh.Compact(b.visibleFaces())

	if h.validate {
		if err := mesh.Validate(faces); err != nil {
			err = fmt.Errorf("%w: %v", ErrBrokenMesh, err)
			h.logger.Error("[qh] Сетка не прошла проверку", zap.Error(err))
			return nil, err
		}
	}

	h.mesh = mesh
	h.faces = faces
	h.tolerance = b.tolerance
	h.stats = b.stats

	h.logger.Info("[qh] Оболочка построена",
		zap.Int("faces", len(faces)),
		zap.Int("iterations", b.stats.Iterations),
		zap.Int("discarded", b.stats.Discarded),
		zap.Float64("tolerance", b.tolerance),
	)

	return h, nil
}

func (h *ConvexHull) newBuilder(points []r3.Vector) *builder {
	b := &builder{
		log:      h.logger,
		mesh:     NewMesh(points),
		vertices: h.vertices[:0],
		horizon:  h.horizon[:0],
		newFaces: h.newFaces[:0],
		stack:    h.stack[:0],
	}

	for i, p := range points {
		b.vertices = append(b.vertices, newVertex(p, i))
	}
	b.assigned = NewVertexList(b.vertices)
	b.unassigned = NewVertexList(b.vertices)

	b.stats.Points = len(points)
	b.tolerance = b.computeTolerance()
	if h.fixedTolerance > 0 {
		b.tolerance = h.fixedTolerance
	}

	return b
}

// Сброс рабочего состояния, буферы остаются для следующего построения
func (h *ConvexHull) reset(b *builder) {
	clear(b.vertices)
	b.assigned.Clear()
	b.unassigned.Clear()

	h.vertices = b.vertices[:0]
	h.horizon = b.horizon[:0]
	h.newFaces = b.newFaces[:0]
	h.stack = b.stack[:0]
}

func (b *builder) run() error {
	if err := b.computeInitialHull(); err != nil {
		return err
	}

	for !b.assigned.Empty() {
		eye := b.nextVertexToAdd()
		if eye == EmptyVertex {
			return fmt.Errorf("%w: no eye vertex in a non-empty outside set", ErrBrokenMesh)
		}

		b.log.Debug("[qh-loop] Добавляем вершину",
			zap.Int("iteration", b.stats.Iterations),
			zap.Int("vertex", b.vertices[eye].Index),
		)

		if err := b.addVertexToHull(eye); err != nil {
			return err
		}
	}

	return nil
}

func (b *builder) point(v VertexIndex) r3.Vector {
	return b.vertices[v].Point
}

func component(p r3.Vector, axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	}
	return p.Z
}

// Вершины с минимальной и максимальной координатой по каждой оси
func (b *builder) computeExtremes() (min, max [3]VertexIndex) {
	for axis := 0; axis < 3; axis++ {
		min[axis], max[axis] = 0, 0
	}

	for i := range b.vertices {
		v := VertexIndex(i)
		p := b.vertices[i].Point
		for axis := 0; axis < 3; axis++ {
			c := component(p, axis)
			if c < component(b.point(min[axis]), axis) {
				min[axis] = v
			}
			if c > component(b.point(max[axis]), axis) {
				max[axis] = v
			}
		}
	}

	return min, max
}

// 3 * eps * сумма по осям max(|min|, |max|)
func (b *builder) computeTolerance() float64 {
	min, max := b.computeExtremes()

	var sum float64
	for axis := 0; axis < 3; axis++ {
		lo := math.Abs(component(b.point(min[axis]), axis))
		hi := math.Abs(component(b.point(max[axis]), axis))
		sum += math.Max(lo, hi)
	}

	return 3 * geom.Epsilon * sum
}

func (b *builder) computeInitialHull() error {
	min, max := b.computeExtremes()

	// 1. ось с наибольшим разбросом
	var maxDistance float64
	axis := 0
	for i := 0; i < 3; i++ {
		d := component(b.point(max[i]), i) - component(b.point(min[i]), i)
		if d > maxDistance {
			maxDistance = d
			axis = i
		}
	}
	if maxDistance <= b.tolerance {
		return fmt.Errorf("%w: all points coincide", ErrDegenerateInput)
	}

	v0, v1 := min[axis], max[axis]

	// 2. самая дальняя от прямой v0-v1
	line := geom.NewSegment(b.point(v0), b.point(v1))
	v2 := EmptyVertex
	maxDistance = 0
	for i := range b.vertices {
		v := VertexIndex(i)
		if v == v0 || v == v1 {
			continue
		}

		p := b.point(v)
		d := line.ClosestPointToPoint(p, true).Sub(p).Norm2()
		if d > maxDistance {
			maxDistance = d
			v2 = v
		}
	}
	if v2 == EmptyVertex || math.Sqrt(maxDistance) <= b.tolerance {
		return fmt.Errorf("%w: all points are collinear", ErrDegenerateInput)
	}

	// 3. самая дальняя от плоскости v0, v1, v2
	plane := geom.PlaneFromCoplanarPoints(b.point(v0), b.point(v1), b.point(v2))
	v3 := EmptyVertex
	maxDistance = -1
	for i := range b.vertices {
		v := VertexIndex(i)
		if v == v0 || v == v1 || v == v2 {
			continue
		}

		d := math.Abs(plane.DistanceToPoint(b.point(v)))
		if d > maxDistance {
			maxDistance = d
			v3 = v
		}
	}
	if v3 == EmptyVertex || maxDistance <= b.tolerance {
		return fmt.Errorf("%w: all points are coplanar", ErrDegenerateInput)
	}

	b.log.Info("[qh] Начальный тетраэдр",
		zap.Int("v0", b.vertices[v0].Index),
		zap.Int("v1", b.vertices[v1].Index),
		zap.Int("v2", b.vertices[v2].Index),
		zap.Int("v3", b.vertices[v3].Index),
	)

	b.buildTetrahedron(plane.DistanceToPoint(b.point(v3)) < 0, v0, v1, v2, v3)

	// каждую оставшуюся точку отдаем грани, которая видит ее дальше всех
	for i := range b.vertices {
		v := VertexIndex(i)
		if v == v0 || v == v1 || v == v2 || v == v3 {
			continue
		}

		maxDistance = b.tolerance
		maxFace := EmptyFace
		for _, f := range b.faces {
			d := b.mesh.DistanceToPoint(f, b.point(v))
			if d > maxDistance {
				maxDistance = d
				maxFace = f
			}
		}

		if maxFace != EmptyFace {
			b.addVertexToFace(v, maxFace)
		} else {
			b.stats.Discarded++
		}
	}

	return nil
}

// Четыре грани с нормалями наружу и шесть пар твинов.
// outward - v3 позади плоскости (v0, v1, v2), т.е. ее нормаль уже смотрит наружу.
func (b *builder) buildTetrahedron(outward bool, v0, v1, v2, v3 VertexIndex) {
	i0, i1, i2, i3 := b.vertices[v0].Index, b.vertices[v1].Index, b.vertices[v2].Index, b.vertices[v3].Index
	m := b.mesh

	var faces [4]FaceIndex
	if outward {
		faces = [4]FaceIndex{
			m.NewFace(i0, i1, i2),
			m.NewFace(i3, i1, i0),
			m.NewFace(i3, i2, i1),
			m.NewFace(i3, i0, i2),
		}

		for i := 0; i < 3; i++ {
			j := (i + 1) % 3
			// боковые грани с основанием
			m.SetTwin(m.Edge(faces[i+1], 2), m.Edge(faces[0], j))
			// боковые грани между собой
			m.SetTwin(m.Edge(faces[i+1], 1), m.Edge(faces[j+1], 0))
		}
	} else {
		faces = [4]FaceIndex{
			m.NewFace(i0, i2, i1),
			m.NewFace(i3, i0, i1),
			m.NewFace(i3, i1, i2),
			m.NewFace(i3, i2, i0),
		}

		for i := 0; i < 3; i++ {
			j := (i + 1) % 3
			m.SetTwin(m.Edge(faces[i+1], 2), m.Edge(faces[0], (3-i)%3))
			m.SetTwin(m.Edge(faces[i+1], 0), m.Edge(faces[j+1], 1))
		}
	}

	b.faces = append(b.faces, faces[:]...)
	b.stats.FacesCreated += len(faces)
}

func (b *builder) addVertexToFace(v VertexIndex, f FaceIndex) {
	b.vertices[v].face = f

	face := &b.mesh.Faces[f]
	if face.outside == EmptyVertex {
		b.assigned.Append(v)
		face.outside = v
	} else {
		b.assigned.InsertAfter(face.outside, v)
	}
}

func (b *builder) removeVertexFromFace(v VertexIndex, f FaceIndex) {
	face := &b.mesh.Faces[f]
	if v == face.outside {
		next := b.vertices[v].next
		if next != EmptyVertex && b.vertices[next].face == f {
			face.outside = next
		} else {
			face.outside = EmptyVertex
		}
	}

	b.assigned.Remove(v)
}

// Вырезает из assigned все точки грани и возвращает начало цепочки
func (b *builder) removeAllPointsFromFace(f FaceIndex) VertexIndex {
	face := &b.mesh.Faces[f]
	start := face.outside
	if start == EmptyVertex {
		return EmptyVertex
	}

	end := start
	for next := b.vertices[end].next; next != EmptyVertex && b.vertices[next].face == f; next = b.vertices[end].next {
		end = next
	}

	b.assigned.RemoveChain(start, end)
	b.vertices[start].prev = EmptyVertex
	b.vertices[end].next = EmptyVertex
	face.outside = EmptyVertex

	return start
}

func (b *builder) deleteFaceVertices(f FaceIndex) {
	if chain := b.removeAllPointsFromFace(f); chain != EmptyVertex {
		b.unassigned.AppendChain(chain)
	}
}

// Следующая вершина: самая дальняя точка в участке грани из головы assigned.
// Локальный, а не глобальный максимум.
func (b *builder) nextVertexToAdd() VertexIndex {
	if b.assigned.Empty() {
		return EmptyVertex
	}

	eyeFace := b.vertices[b.assigned.First()].face
	eye := EmptyVertex
	var maxDistance float64

	for v := b.mesh.Faces[eyeFace].outside; v != EmptyVertex && b.vertices[v].face == eyeFace; v = b.vertices[v].next {
		d := b.mesh.DistanceToPoint(eyeFace, b.point(v))
		if d > maxDistance {
			maxDistance = d
			eye = v
		}
	}

	return eye
}

func (b *builder) addVertexToHull(eye VertexIndex) error {
	b.unassigned.Clear()

	face := b.vertices[eye].face
	b.removeVertexFromFace(eye, face)

	if err := b.computeHorizon(b.point(eye), face); err != nil {
		return err
	}

	b.log.Debug("[qh-horizon] Горизонт найден", zap.Int("edges", len(b.horizon)))

	b.addNewFaces(b.vertices[eye].Index)
	b.resolveUnassignedPoints()
	b.stats.Iterations++

	return nil
}

// Обход в глубину по соседним граням, начиная с face. Видимые грани удаляются,
// ребра, за которыми грань не видна, по порядку попадают в горизонт.
// Вместо рекурсии - явный стек, порядок обхода тот же.
func (b *builder) computeHorizon(eye r3.Vector, face FaceIndex) error {
	b.horizon = b.horizon[:0]
	b.stack = b.stack[:0]

	b.visit(face, EmptyEdge)

	for len(b.stack) > 0 {
		top := &b.stack[len(b.stack)-1]
		edge := top.edge
		if edge == EmptyEdge {
			b.stack = b.stack[:len(b.stack)-1]
			continue
		}

		if next := b.mesh.Edges[edge].Next; next == top.cross {
			top.edge = EmptyEdge
		} else {
			top.edge = next
		}

		twin := b.mesh.Edges[edge].Twin
		if twin == EmptyEdge {
			return fmt.Errorf("%w: edge %d has no twin", ErrBrokenMesh, edge)
		}

		opposite := b.mesh.Edges[twin].Face
		if b.mesh.Faces[opposite].Flag != Visible {
			continue
		}

		if b.mesh.DistanceToPoint(opposite, eye) > b.tolerance {
			b.visit(opposite, twin)
			continue
		}

		b.horizon = append(b.horizon, edge)
	}

	if len(b.horizon) < 3 {
		return fmt.Errorf("%w: horizon of %d edges", ErrBrokenMesh, len(b.horizon))
	}

	return nil
}

// Удаляет грань и кладет ее кадр на стек. cross - ребро, через которое пришли.
func (b *builder) visit(f FaceIndex, cross EdgeIndex) {
	b.deleteFaceVertices(f)
	b.mesh.Faces[f].Flag = Deleted
	b.stats.FacesDeleted++

	var edge EdgeIndex
	if cross == EmptyEdge {
		cross = b.mesh.Edge(f, 0)
		edge = cross
	} else {
		edge = b.mesh.Edges[cross].Next
	}

	b.stack = append(b.stack, horizonFrame{cross: cross, edge: edge})
}

// Веер новых граней от eye к каждому ребру горизонта, замкнутый в кольцо
func (b *builder) addNewFaces(eye int) {
	b.newFaces = b.newFaces[:0]

	first, prev := EmptyEdge, EmptyEdge
	for _, horizonEdge := range b.horizon {
		side := b.addAdjoiningFace(eye, horizonEdge)

		if first == EmptyEdge {
			first = side
		} else {
			b.mesh.SetTwin(b.mesh.Edges[side].Next, prev)
		}

		b.newFaces = append(b.newFaces, b.mesh.Edges[side].Face)
		prev = side
	}

	b.mesh.SetTwin(b.mesh.Edges[first].Next, prev)
}

// Грань (eye, tail, head) над ребром горизонта. Возвращает ребро, входящее в eye.
func (b *builder) addAdjoiningFace(eye int, horizonEdge EdgeIndex) EdgeIndex {
	m := b.mesh
	f := m.NewFace(eye, m.Tail(horizonEdge), m.Edges[horizonEdge].Head)
	b.faces = append(b.faces, f)
	b.stats.FacesCreated++

	// ребро tail -> head новой грани смотрит так же, как ребро горизонта
	m.SetTwin(m.Edge(f, -1), m.Edges[horizonEdge].Twin)

	return m.Edge(f, 0)
}

// Точки удаленных граней проверяем только против новых граней
func (b *builder) resolveUnassignedPoints() {
	for v := b.unassigned.First(); v != EmptyVertex; {
		next := b.vertices[v].next

		maxDistance := b.tolerance
		maxFace := EmptyFace
		for _, f := range b.newFaces {
			if b.mesh.Faces[f].Flag != Visible {
				continue
			}

			d := b.mesh.DistanceToPoint(f, b.point(v))
			if d > maxDistance {
				maxDistance = d
				maxFace = f
			}
		}

		if maxFace != EmptyFace {
			b.addVertexToFace(v, maxFace)
		} else {
			b.stats.Discarded++
		}

		v = next
	}
}

func (b *builder) visibleFaces() []FaceIndex {
	visible := make([]FaceIndex, 0, len(b.faces))
	for _, f := range b.faces {
		if b.mesh.Faces[f].Flag == Visible {
			visible = append(visible, f)
		}
	}
	return visible
}
