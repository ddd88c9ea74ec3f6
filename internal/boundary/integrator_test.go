package boundary_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verge-ml/verge/internal/boundary"
)

func TestGradientDescent_Update(t *testing.T) {
	points := []float32{1, 2, 3, 4}
	grad := []float32{1, -1, 0, 2}

	boundary.GradientDescent{LR: 0.5}.Update(points, grad, 2, 2)

	assert.Equal(t, []float32{0.5, 2.5, 3, 3}, points)
}

func TestGradientDescent_ZeroGradientStays(t *testing.T) {
	points := []float32{1, 2}
	grad := []float32{0, 0}

	boundary.GradientDescent{LR: 0.1}.Update(points, grad, 1, 2)

	assert.Equal(t, []float32{1, 2}, points)
}

func TestGradientDescent_DefaultLR(t *testing.T) {
	points := []float32{1}
	grad := []float32{1}

	boundary.GradientDescent{}.Update(points, grad, 1, 1)

	assert.InDelta(t, 0.99, float64(points[0]), 1e-6)
}

func TestQuasihyperbolic_UnitDirections(t *testing.T) {
	q := boundary.NewQuasihyperbolic(0.05, 3)
	n, dim := 8, 3
	points := make([]float32, n*dim)
	grad := make([]float32, n*dim)
	for i := range grad {
		grad[i] = float32(i%5) - 2
	}

	for iter := 0; iter < 20; iter++ {
		q.Update(points, grad, n, dim)
	}

	dirs := q.Directions()
	require.Len(t, dirs, n*dim)
	for p := 0; p < n; p++ {
		var norm float64
		for j := 0; j < dim; j++ {
			v := float64(dirs[p*dim+j])
			norm += v * v
		}
		assert.InDelta(t, 1.0, norm, 1e-5, "direction %d is not unit length", p)
	}
}

func TestQuasihyperbolic_ConstantSpeed(t *testing.T) {
	dt := float32(0.1)
	q := boundary.NewQuasihyperbolic(dt, 1)
	points := []float32{0, 0}
	grad := []float32{0, 0}

	before := append([]float32(nil), points...)
	q.Update(points, grad, 1, 2)

	// Even with a zero gradient the point travels dt along its direction.
	var dist float64
	for j := range points {
		d := float64(points[j] - before[j])
		dist += d * d
	}
	assert.InDelta(t, float64(dt), math.Sqrt(dist), 1e-5)
}
