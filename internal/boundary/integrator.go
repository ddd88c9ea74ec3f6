package boundary

import (
	"math"
	"math/rand"
)

// Integrator is the update rule moving points toward the decision boundary.
// Update receives the flat (n*dim) coordinate and gradient buffers and
// mutates the coordinates in place. Chosen at construction time so the flow
// variant stays swappable and testable in isolation.
type Integrator interface {
	Update(points, grad []float32, n, dim int)
}

// GradientDescent moves each point a fixed step against the gradient:
// x ← x − lr·∇L. A zero gradient leaves the point where it is.
type GradientDescent struct {
	LR float32
}

// Update applies one gradient descent step in place.
func (g GradientDescent) Update(points, grad []float32, n, dim int) {
	lr := g.LR
	if lr == 0 {
		lr = 0.01
	}
	for i := range points {
		points[i] -= lr * grad[i]
	}
}

// Quasihyperbolic integrates a coupled position/direction flow. Each point
// carries a unit direction vector; the point moves dt along its direction
// while the direction is steered by the descent component of the gradient
// orthogonal to it, then renormalized. Compared to plain gradient descent
// the step length is constant, so points traverse flat regions instead of
// stalling in them.
type Quasihyperbolic struct {
	dt   float32
	rng  *rand.Rand
	dirs []float32
}

// NewQuasihyperbolic creates the constrained-flow integrator with step size
// dt. Directions are initialized randomly per point using seed.
func NewQuasihyperbolic(dt float32, seed int64) *Quasihyperbolic {
	if dt == 0 {
		dt = 0.01
	}
	return &Quasihyperbolic{
		dt:  dt,
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // G404: statistical sampling, reproducibility wanted
	}
}

// Update advances positions along their directions and steers the
// directions toward descent.
func (q *Quasihyperbolic) Update(points, grad []float32, n, dim int) {
	if q.dirs == nil {
		q.initDirections(n, dim)
	}

	for p := 0; p < n; p++ {
		off := p * dim

		// x ← x + dt·v
		for j := 0; j < dim; j++ {
			points[off+j] += q.dt * q.dirs[off+j]
		}

		// Steer v by the descent direction's component orthogonal to v,
		// then renormalize to keep |v| = 1.
		var dot float32
		for j := 0; j < dim; j++ {
			dot += -grad[off+j] * q.dirs[off+j]
		}
		for j := 0; j < dim; j++ {
			perp := -grad[off+j] - dot*q.dirs[off+j]
			q.dirs[off+j] += q.dt * perp
		}
		normalize(q.dirs[off : off+dim])
	}
}

// Directions returns the current flat (n*dim) direction buffer, nil before
// the first update.
func (q *Quasihyperbolic) Directions() []float32 {
	return q.dirs
}

func (q *Quasihyperbolic) initDirections(n, dim int) {
	q.dirs = make([]float32, n*dim)
	for p := 0; p < n; p++ {
		off := p * dim
		for j := 0; j < dim; j++ {
			q.dirs[off+j] = float32(q.rng.NormFloat64())
		}
		normalize(q.dirs[off : off+dim])
	}
}

func normalize(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		v[0] = 1
		return
	}
	for i := range v {
		v[i] = float32(float64(v[i]) / norm)
	}
}
