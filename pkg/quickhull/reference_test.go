package quickhull_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/0x0FACED/go-quickhull/pkg/geom"
	"github.com/0x0FACED/go-quickhull/pkg/pointcloud"
	"github.com/0x0FACED/go-quickhull/pkg/quickhull"
	"github.com/golang/geo/r3"
	reference "github.com/markus-wa/quickhull-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniqueSorted(indices []int) []int {
	seen := make(map[int]struct{})
	var out []int
	for _, i := range indices {
		if _, ok := seen[i]; !ok {
			seen[i] = struct{}{}
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

func meshVolume(points []r3.Vector, indices []int) float64 {
	var volume float64
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := points[indices[i]], points[indices[i+1]], points[indices[i+2]]
		volume += a.Dot(b.Cross(c))
	}
	return math.Abs(volume / 6)
}

// Сверяемся с независимой реализацией QuickHull
func TestMatchesReferenceImplementation(t *testing.T) {
	box := geom.Box{Min: r3.Vector{X: -1, Y: -1, Z: -1}, Max: r3.Vector{X: 1, Y: 1, Z: 1}}

	for _, n := range []int{8, 50, 500, 3000} {
		points := pointcloud.Random(n, box, rand.New(rand.NewSource(int64(n))))

		h, err := quickhull.New(quickhull.WithValidation(true)).FromPoints(points)
		require.NoError(t, err)

		ref := new(reference.QuickHull).ConvexHull(points, true, true, 1e-12)

		assert.Equal(t, uniqueSorted(ref.Indices), h.HullVertices(), "n=%d", n)
		assert.Len(t, h.Indices(), len(ref.Indices), "n=%d", n)
		assert.InDelta(t, meshVolume(points, ref.Indices), h.Volume(), 1e-9, "n=%d", n)
		assert.InDelta(t, meshVolume(points, h.Indices()), h.Volume(), 1e-9, "n=%d", n)
	}
}
