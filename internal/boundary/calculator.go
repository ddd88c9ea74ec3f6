// Package boundary extracts the decision boundary of a frozen classifier.
//
// A UniformSampler seeds a batch of points in feature space, a Calculator
// flows them toward the locus where the classifier is maximally undecided
// (all class probabilities equal 1/C), and Boundary filters the converged
// cloud by a boundary-distance threshold.
package boundary

import (
	"gonum.org/v1/gonum/mat"

	"github.com/verge-ml/verge/internal/autodiff"
	"github.com/verge-ml/verge/internal/tensor"
)

// CalculatorConfig configures a Calculator. The zero value selects plain
// gradient descent with the default learning rate and no loss history.
type CalculatorConfig struct {
	// Integrator is the update rule. Defaults to GradientDescent{}.
	Integrator Integrator

	// TrackHistory appends the mean per-point loss of every iteration to
	// the history returned by History.
	TrackHistory bool
}

type calcState int

const (
	stateSampling calcState = iota
	stateFiltered
)

// Calculator flows a fixed batch of points toward a classifier's decision
// boundary. The batch size never changes; only coordinates mutate. The
// calculator is the sole owner of its point batch, so no locking is needed.
//
// Lifecycle: Sampling (repeated Step calls) → Filtered (terminal, entered
// by Boundary). A new run requires a new Calculator.
type Calculator[B tensor.Backend] struct {
	model      Classifier[B]
	points     *tensor.Tensor[float32, B]
	taped      autodiff.TapeBackend
	integrator Integrator
	track      bool

	losses  []float32
	history []float32

	n       int
	dim     int
	classes int
	state   calcState
}

// NewCalculator creates a calculator flowing the seed batch toward the
// model's decision boundary.
//
// The seeds' backend must record operations on a gradient tape (wrap a
// plain backend with autodiff.New); the tape is what provides gradients
// with respect to the point coordinates. Returns a ConfigurationError for
// nil arguments, a non-2D seed batch, a backend without a tape, or a seed
// dimension that contradicts the model's declared input width.
func NewCalculator[B tensor.Backend](model Classifier[B], seeds *tensor.Tensor[float32, B], cfg CalculatorConfig) (*Calculator[B], error) {
	if model == nil {
		return nil, configErrorf("model", "must not be nil")
	}
	if seeds == nil {
		return nil, configErrorf("seeds", "must not be nil")
	}

	shape := seeds.Shape()
	if len(shape) != 2 {
		return nil, configErrorf("seeds", "expected a 2D (n, d) batch, got shape %v", shape)
	}
	n, dim := shape[0], shape[1]

	taped, ok := any(seeds.Backend()).(autodiff.TapeBackend)
	if !ok {
		return nil, configErrorf("backend", "%s does not record a gradient tape", seeds.Backend().Name())
	}

	if sized, ok := model.(InputSized); ok && sized.InFeatures() != dim {
		return nil, configErrorf("seeds", "batch has %d features but model expects %d", dim, sized.InFeatures())
	}

	integrator := cfg.Integrator
	if integrator == nil {
		integrator = GradientDescent{}
	}

	c := &Calculator[B]{
		model:      model,
		points:     seeds,
		taped:      taped,
		integrator: integrator,
		track:      cfg.TrackHistory,
		n:          n,
		dim:        dim,
	}

	// First forward pass fixes the class count and the initial losses.
	probs, err := c.evaluate()
	if err != nil {
		return nil, err
	}
	c.losses = lossesPerPoint(probs.Data(), c.n, c.classes)

	return c, nil
}

// Step runs the given number of forward/backward/update rounds, mutating
// the point batch in place. Step(0) is a no-op. Points in flat classifier
// regions receive no gradient and stay put. Returns ErrFiltered once the
// calculator is in its terminal state.
func (c *Calculator[B]) Step(iterations int) error {
	if c.state == stateFiltered {
		return ErrFiltered
	}
	if iterations < 0 {
		return configErrorf("iterations", "must be nonnegative, got %d", iterations)
	}

	tape := c.taped.Tape()
	for it := 0; it < iterations; it++ {
		tape.Clear()
		tape.Start()

		probs := c.model.Forward(c.points)
		diff := probs.SubScalar(c.target())
		loss := diff.Mul(diff).Sum()

		tape.Stop()

		if c.track {
			c.history = append(c.history, mean(lossesPerPoint(probs.Data(), c.n, c.classes)))
		}

		grads := tape.Backward(loss.Raw(), c.taped.InnerBackend())
		tape.Clear()

		grad, ok := grads[c.points.Raw()]
		if !ok {
			// The classifier is flat here; nothing moves this iteration.
			continue
		}
		c.integrator.Update(c.points.Data(), grad.AsFloat32(), c.n, c.dim)
	}

	probs, err := c.evaluate()
	if err != nil {
		return err
	}
	c.losses = lossesPerPoint(probs.Data(), c.n, c.classes)
	return nil
}

// Boundary filters the current batch to points whose boundary-distance
// loss is at most threshold and returns their coordinates, one point per
// row. An empty result is a normal value, returned as nil. The calculator
// transitions to its terminal Filtered state; further Step calls fail with
// ErrFiltered.
func (c *Calculator[B]) Boundary(threshold float64) (*mat.Dense, error) {
	if threshold < 0 {
		return nil, configErrorf("threshold", "must be nonnegative, got %g", threshold)
	}
	c.state = stateFiltered

	var rows []int
	for i, l := range c.losses {
		if float64(l) <= threshold {
			rows = append(rows, i)
		}
	}
	if len(rows) == 0 {
		return nil, nil
	}

	data := c.points.Data()
	out := make([]float64, len(rows)*c.dim)
	for r, i := range rows {
		for j := 0; j < c.dim; j++ {
			out[r*c.dim+j] = float64(data[i*c.dim+j])
		}
	}
	return mat.NewDense(len(rows), c.dim, out), nil
}

// Points returns a copy of the current point batch.
func (c *Calculator[B]) Points() *tensor.Tensor[float32, B] {
	return c.points.Clone()
}

// Losses returns a copy of the current per-point boundary-distance losses.
func (c *Calculator[B]) Losses() []float32 {
	return append([]float32(nil), c.losses...)
}

// History returns a copy of the recorded mean loss per iteration. Empty
// unless TrackHistory was set.
func (c *Calculator[B]) History() []float32 {
	return append([]float32(nil), c.history...)
}

// NumPoints returns the batch size n.
func (c *Calculator[B]) NumPoints() int {
	return c.n
}

// Dim returns the feature dimension d.
func (c *Calculator[B]) Dim() int {
	return c.dim
}

// NumClasses returns the classifier's class count C.
func (c *Calculator[B]) NumClasses() int {
	return c.classes
}

// evaluate runs an untaped forward pass and validates the output shape.
// It fixes the class count on first use.
func (c *Calculator[B]) evaluate() (*tensor.Tensor[float32, B], error) {
	tape := c.taped.Tape()
	if tape.IsRecording() {
		tape.Stop()
	}

	probs := c.model.Forward(c.points)

	shape := probs.Shape()
	if len(shape) != 2 || shape[0] != c.n {
		return nil, configErrorf("model", "expected (%d, C) output, got shape %v", c.n, shape)
	}
	if c.classes == 0 {
		if shape[1] < 2 {
			return nil, configErrorf("model", "expected at least 2 classes, got %d", shape[1])
		}
		c.classes = shape[1]
	}
	return probs, nil
}

// target is the undecided probability 1/C every class converges to on the
// decision boundary.
func (c *Calculator[B]) target() float32 {
	return 1 / float32(c.classes)
}

// lossesPerPoint computes Σ_j (p_ij − 1/C)² for each row of a flat (n, C)
// probability buffer.
func lossesPerPoint(probs []float32, n, classes int) []float32 {
	target := 1 / float32(classes)
	losses := make([]float32, n)
	for i := 0; i < n; i++ {
		var sum float32
		for j := 0; j < classes; j++ {
			d := probs[i*classes+j] - target
			sum += d * d
		}
		losses[i] = sum
	}
	return losses
}

func mean(xs []float32) float32 {
	if len(xs) == 0 {
		return 0
	}
	var sum float32
	for _, x := range xs {
		sum += x
	}
	return sum / float32(len(xs))
}
