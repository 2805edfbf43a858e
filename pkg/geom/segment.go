package geom

import "github.com/golang/geo/r3"

// Отрезок между Start и End
type Segment struct {
	Start r3.Vector
	End   r3.Vector
}

func NewSegment(start, end r3.Vector) Segment {
	return Segment{Start: start, End: end}
}

func (s Segment) Delta() r3.Vector {
	return s.End.Sub(s.Start)
}

// Параметр t проекции точки на прямую Start + t*(End-Start).
// clamp ограничивает t отрезком [0, 1].
func (s Segment) ClosestPointToPointParameter(point r3.Vector, clamp bool) float64 {
	delta := s.Delta()
	d2 := delta.Norm2()
	if d2 == 0 {
		return 0
	}

	t := point.Sub(s.Start).Dot(delta) / d2
	if clamp {
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return t
}

func (s Segment) ClosestPointToPoint(point r3.Vector, clamp bool) r3.Vector {
	t := s.ClosestPointToPointParameter(point, clamp)
	return s.Start.Add(s.Delta().Mul(t))
}

// Квадрат расстояния от точки до прямой, проходящей через отрезок
func (s Segment) DistanceSqToPoint(point r3.Vector) float64 {
	return s.ClosestPointToPoint(point, false).Sub(point).Norm2()
}
