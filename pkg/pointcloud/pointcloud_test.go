package pointcloud

import (
	"math"
	"math/rand"
	"testing"

	"github.com/0x0FACED/go-quickhull/pkg/geom"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCube(t *testing.T) {
	points := Cube(2)
	require.Len(t, points, 8)

	seen := make(map[r3.Vector]bool)
	for _, p := range points {
		for _, c := range []float64{p.X, p.Y, p.Z} {
			assert.True(t, c == 0 || c == 2, "unexpected coordinate %v", c)
		}
		seen[p] = true
	}
	assert.Len(t, seen, 8)
}

func TestGrid(t *testing.T) {
	points := Grid(3, 1)
	require.Len(t, points, 27)
	assert.Equal(t, r3.Vector{}, points[0])
	assert.Equal(t, r3.Vector{X: 1, Y: 1, Z: 1}, points[26])

	assert.Len(t, Grid(1, 1), 8)
}

func TestSphere(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	points := Sphere(200, 3, rng)
	require.Len(t, points, 200)

	for _, p := range points {
		assert.InDelta(t, 3, p.Norm(), 1e-9)
	}
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	box := geom.Box{Min: r3.Vector{X: -1, Y: 2, Z: 0}, Max: r3.Vector{X: 1, Y: 3, Z: 10}}
	points := Random(500, box, rng)
	require.Len(t, points, 500)

	for _, p := range points {
		assert.True(t, box.ContainsPoint(p), "point %v outside %v", p, box)
	}
}

func TestRotatePreservesDistances(t *testing.T) {
	points := Cube(1)
	rotated := Rotate(points, 0.3, -1.1, 2.5)
	require.Len(t, rotated, len(points))

	for i := range points {
		assert.InDelta(t, points[i].Norm(), rotated[i].Norm(), 1e-12)
	}

	quarter := Rotate([]r3.Vector{{X: 1}}, math.Pi/2, 0, 0)
	assert.InDelta(t, 0, quarter[0].X, 1e-12)
	assert.InDelta(t, 1, quarter[0].Y, 1e-12)
}

func TestTranslate(t *testing.T) {
	moved := Translate([]r3.Vector{{X: 1, Y: 2, Z: 3}}, r3.Vector{X: -1, Y: 1, Z: 0.5})
	require.Len(t, moved, 1)
	assert.InDelta(t, 0, moved[0].X, 1e-12)
	assert.InDelta(t, 3, moved[0].Y, 1e-12)
	assert.InDelta(t, 3.5, moved[0].Z, 1e-12)
}

func TestWithDuplicates(t *testing.T) {
	points := Cube(1)
	dup := WithDuplicates(points, 3)
	require.Len(t, dup, 11)
	assert.Equal(t, points[:3], dup[8:])

	assert.Len(t, WithDuplicates(points, 100), 16)
}
