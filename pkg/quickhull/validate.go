package quickhull

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate проверяет, что грани faces образуют замкнутое ориентированное 2-многообразие:
// у каждой грани кольцо из трех ребер, у каждого ребра есть взаимный твин с обратными концами,
// грань твина тоже в списке, и выполняется формула Эйлера V - E + F = 2.
// Возвращает все найденные нарушения сразу.
func (m *Mesh) Validate(faces []FaceIndex) error {
	var err error

	live := make(map[FaceIndex]bool, len(faces))
	for _, f := range faces {
		live[f] = true
	}

	vertices := make(map[int]struct{})
	edges := 0

	for _, f := range faces {
		face := m.Faces[f]
		if face.Flag != Visible {
			err = multierr.Append(err, fmt.Errorf("face %d: flag %s", f, face.Flag))
		}
		if face.Edge == EmptyEdge {
			err = multierr.Append(err, fmt.Errorf("face %d: no edge", f))
			continue
		}

		n := 0
		e := face.Edge
		for {
			n++
			edges++
			edge := m.Edges[e]
			vertices[edge.Head] = struct{}{}

			if edge.Face != f {
				err = multierr.Append(err, fmt.Errorf("edge %d: belongs to face %d, listed in face %d", e, edge.Face, f))
			}
			if m.Edges[edge.Next].Prev != e {
				err = multierr.Append(err, fmt.Errorf("edge %d: next.prev mismatch", e))
			}

			err = multierr.Append(err, m.validateTwin(e, live))

			e = edge.Next
			if e == face.Edge || n > 3 {
				break
			}
		}
		if n != 3 {
			err = multierr.Append(err, fmt.Errorf("face %d: ring of %d edges", f, n))
		}
	}

	if err == nil && len(faces) > 0 {
		if euler := len(vertices) - edges/2 + len(faces); euler != 2 {
			err = multierr.Append(err, fmt.Errorf("euler characteristic %d", euler))
		}
	}

	return err
}

func (m *Mesh) validateTwin(e EdgeIndex, live map[FaceIndex]bool) error {
	twin := m.Edges[e].Twin
	if twin == EmptyEdge {
		return fmt.Errorf("edge %d: no twin", e)
	}
	if m.Edges[twin].Twin != e {
		return fmt.Errorf("edge %d: twin %d is not mutual", e, twin)
	}
	if m.Edges[twin].Head != m.Tail(e) || m.Tail(twin) != m.Edges[e].Head {
		return fmt.Errorf("edge %d: twin %d endpoints are not reversed", e, twin)
	}
	if !live[m.Edges[twin].Face] {
		return fmt.Errorf("edge %d: twin face %d is not part of the hull", e, m.Edges[twin].Face)
	}
	return nil
}
