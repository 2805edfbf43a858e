package geom

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaneFromCoplanarPoints(t *testing.T) {
	// CCW если смотреть сверху (+Z)
	p := PlaneFromCoplanarPoints(
		r3.Vector{X: 0, Y: 0, Z: 1},
		r3.Vector{X: 1, Y: 0, Z: 1},
		r3.Vector{X: 0, Y: 1, Z: 1},
	)

	assert.InDelta(t, 0, p.Normal.X, 1e-12)
	assert.InDelta(t, 0, p.Normal.Y, 1e-12)
	assert.InDelta(t, 1, p.Normal.Z, 1e-12)
	assert.InDelta(t, -1, p.Constant, 1e-12)

	assert.InDelta(t, 2, p.DistanceToPoint(r3.Vector{X: 5, Y: -3, Z: 3}), 1e-12)
	assert.InDelta(t, -1, p.DistanceToPoint(r3.Vector{}), 1e-12)
	assert.InDelta(t, 1, p.Flip().DistanceToPoint(r3.Vector{}), 1e-12)
}

func TestPlaneDegenerate(t *testing.T) {
	a := r3.Vector{X: 1, Y: 1, Z: 1}
	p := PlaneFromCoplanarPoints(a, a, r3.Vector{X: 2, Y: 2, Z: 2})

	require.Equal(t, r3.Vector{}, p.Normal)
	require.Zero(t, p.DistanceToPoint(r3.Vector{X: 9, Y: 9, Z: 9}))
}

func TestPlaneProjectPoint(t *testing.T) {
	p := PlaneFromNormalAndPoint(r3.Vector{X: 0, Y: 1, Z: 0}, r3.Vector{X: 0, Y: 2, Z: 0})
	got := p.ProjectPoint(r3.Vector{X: 3, Y: 7, Z: -1})

	require.True(t, got.ApproxEqual(r3.Vector{X: 3, Y: 2, Z: -1}))
}

func TestSegmentClosestPoint(t *testing.T) {
	s := NewSegment(r3.Vector{}, r3.Vector{X: 2})

	tests := []struct {
		name  string
		point r3.Vector
		clamp bool
		want  r3.Vector
	}{
		{"inside", r3.Vector{X: 1, Y: 5}, true, r3.Vector{X: 1}},
		{"before start clamped", r3.Vector{X: -3, Y: 1}, true, r3.Vector{}},
		{"before start unclamped", r3.Vector{X: -3, Y: 1}, false, r3.Vector{X: -3}},
		{"after end clamped", r3.Vector{X: 4, Z: 1}, true, r3.Vector{X: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ClosestPointToPoint(tt.point, tt.clamp)
			assert.True(t, got.ApproxEqual(tt.want), "got %v, want %v", got, tt.want)
		})
	}

	assert.InDelta(t, 25, s.DistanceSqToPoint(r3.Vector{X: 7, Y: 3, Z: 4}), 1e-12)
}

func TestSegmentZeroLength(t *testing.T) {
	p := r3.Vector{X: 1, Y: 2, Z: 3}
	s := NewSegment(p, p)

	require.Equal(t, p, s.ClosestPointToPoint(r3.Vector{}, true))
}

func TestBox(t *testing.T) {
	b := BoxFromPoints([]r3.Vector{
		{X: -1, Y: 2, Z: 0},
		{X: 3, Y: -2, Z: 1},
		{X: 0, Y: 0, Z: -5},
	})

	assert.Equal(t, r3.Vector{X: -1, Y: -2, Z: -5}, b.Min)
	assert.Equal(t, r3.Vector{X: 3, Y: 2, Z: 1}, b.Max)
	assert.Equal(t, r3.Vector{X: 4, Y: 4, Z: 6}, b.Size())
	assert.Equal(t, r3.Vector{X: 1, Y: 0, Z: -2}, b.Center())
	assert.True(t, b.ContainsPoint(r3.Vector{}))
	assert.False(t, b.ContainsPoint(r3.Vector{X: 4}))

	empty := EmptyBox()
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, r3.Vector{}, empty.Size())
}

func TestCentroidAndArea(t *testing.T) {
	c := Centroid(r3.Vector{X: 3}, r3.Vector{Y: 3}, r3.Vector{Z: 3})
	assert.True(t, c.ApproxEqual(r3.Vector{X: 1, Y: 1, Z: 1}))
	assert.Equal(t, r3.Vector{}, Centroid())

	area := TriangleArea(r3.Vector{}, r3.Vector{X: 2}, r3.Vector{Y: 2})
	assert.InDelta(t, 2, area, 1e-12)
}

func TestEpsilon(t *testing.T) {
	require.Equal(t, math.Pow(2, -52), Epsilon)
}
