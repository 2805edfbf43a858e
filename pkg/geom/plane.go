package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// Машинный эпсилон для float64 (2^-52)
var Epsilon = math.Nextafter(1, 2) - 1

// Плоскость в нормальной форме: Normal·p + Constant = 0
type Plane struct {
	Normal   r3.Vector
	Constant float64
}

func NewPlane(normal r3.Vector, constant float64) Plane {
	return Plane{Normal: normal, Constant: constant}
}

// Плоскость через три точки. Нормаль смотрит туда, откуда a, b, c видны против часовой стрелки.
// Для вырожденного треугольника нормаль нулевая.
func PlaneFromCoplanarPoints(a, b, c r3.Vector) Plane {
	normal := c.Sub(b).Cross(a.Sub(b))
	if n := normal.Norm(); n > 0 {
		normal = normal.Mul(1 / n)
	}
	return Plane{Normal: normal, Constant: -a.Dot(normal)}
}

func PlaneFromNormalAndPoint(normal, p r3.Vector) Plane {
	return Plane{Normal: normal, Constant: -p.Dot(normal)}
}

// Знаковое расстояние: > 0 - точка перед плоскостью
func (p Plane) DistanceToPoint(point r3.Vector) float64 {
	return p.Normal.Dot(point) + p.Constant
}

func (p Plane) Flip() Plane {
	return Plane{Normal: p.Normal.Mul(-1), Constant: -p.Constant}
}

// Проекция точки на плоскость
func (p Plane) ProjectPoint(point r3.Vector) r3.Vector {
	return point.Sub(p.Normal.Mul(p.DistanceToPoint(point)))
}
