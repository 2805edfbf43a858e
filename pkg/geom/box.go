package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// Ограничивающий параллелепипед (AABB)
type Box struct {
	Min r3.Vector
	Max r3.Vector
}

// Пустой бокс: Min = +inf, Max = -inf
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: r3.Vector{X: inf, Y: inf, Z: inf},
		Max: r3.Vector{X: -inf, Y: -inf, Z: -inf},
	}
}

func BoxFromPoints(points []r3.Vector) Box {
	b := EmptyBox()
	for _, p := range points {
		b = b.Expand(p)
	}
	return b
}

func (b Box) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

func (b Box) Expand(p r3.Vector) Box {
	return Box{
		Min: r3.Vector{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: r3.Vector{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

func (b Box) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Box) Size() r3.Vector {
	if b.IsEmpty() {
		return r3.Vector{}
	}
	return b.Max.Sub(b.Min)
}

func (b Box) ContainsPoint(p r3.Vector) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Среднее арифметическое точек
func Centroid(points ...r3.Vector) r3.Vector {
	var c r3.Vector
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(points)))
}

// Площадь треугольника abc
func TriangleArea(a, b, c r3.Vector) float64 {
	return b.Sub(a).Cross(c.Sub(a)).Norm() / 2
}
