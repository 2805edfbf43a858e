// Package pointcloud генерирует наборы точек для построения оболочек.
package pointcloud

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/go-quickhull/pkg/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// 8 вершин куба [0, size]^3
func Cube(size float64) []r3.Vector {
	points := make([]r3.Vector, 0, 8)
	for i := 0; i < 8; i++ {
		points = append(points, r3.Vector{
			X: float64(i&1) * size,
			Y: float64(i>>1&1) * size,
			Z: float64(i>>2&1) * size,
		})
	}
	return points
}

// Решетка n x n x n в кубе [0, size]^3
func Grid(n int, size float64) []r3.Vector {
	if n < 2 {
		n = 2
	}

	step := size / float64(n-1)
	points := make([]r3.Vector, 0, n*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				points = append(points, r3.Vector{X: float64(i) * step, Y: float64(j) * step, Z: float64(k) * step})
			}
		}
	}
	return points
}

// n случайных точек на сфере радиуса radius с центром в начале координат
func Sphere(n int, radius float64, rng *rand.Rand) []r3.Vector {
	points := make([]r3.Vector, 0, n)
	for i := 0; i < n; i++ {
		// равномерно по z и по углу - равномерно по площади сферы
		z := 2*rng.Float64() - 1
		phi := 2 * math.Pi * rng.Float64()
		r := math.Sqrt(1 - z*z)
		points = append(points, r3.Vector{
			X: radius * r * math.Cos(phi),
			Y: radius * r * math.Sin(phi),
			Z: radius * z,
		})
	}
	return points
}

// n случайных точек внутри бокса
func Random(n int, box geom.Box, rng *rand.Rand) []r3.Vector {
	size := box.Size()
	points := make([]r3.Vector, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, r3.Vector{
			X: box.Min.X + rng.Float64()*size.X,
			Y: box.Min.Y + rng.Float64()*size.Y,
			Z: box.Min.Z + rng.Float64()*size.Z,
		})
	}
	return points
}

// Rotate поворачивает точки вокруг начала координат: сначала roll (X), потом pitch (Y), потом yaw (Z).
// Углы в радианах.
func Rotate(points []r3.Vector, yaw, pitch, roll float64) []r3.Vector {
	m := mgl64.Rotate3DZ(yaw).Mul3(mgl64.Rotate3DY(pitch)).Mul3(mgl64.Rotate3DX(roll))

	out := make([]r3.Vector, 0, len(points))
	for _, p := range points {
		v := m.Mul3x1(mgl64.Vec3{p.X, p.Y, p.Z})
		out = append(out, r3.Vector{X: v[0], Y: v[1], Z: v[2]})
	}
	return out
}

// Transform применяет однородную матрицу 4x4
func Transform(points []r3.Vector, m mgl64.Mat4) []r3.Vector {
	out := make([]r3.Vector, 0, len(points))
	for _, p := range points {
		v := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
		out = append(out, r3.Vector{X: v[0] / v[3], Y: v[1] / v[3], Z: v[2] / v[3]})
	}
	return out
}

func Translate(points []r3.Vector, offset r3.Vector) []r3.Vector {
	return Transform(points, mgl64.Translate3D(offset.X, offset.Y, offset.Z))
}

// WithDuplicates дописывает копии первых k точек
func WithDuplicates(points []r3.Vector, k int) []r3.Vector {
	if k > len(points) {
		k = len(points)
	}

	out := make([]r3.Vector, 0, len(points)+k)
	out = append(out, points...)
	return append(out, points[:k]...)
}
