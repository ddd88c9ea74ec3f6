package boundary

import (
	"math/rand"

	"github.com/verge-ml/verge/internal/tensor"
)

// Interval is a closed sampling range [Low, High] for one feature dimension.
type Interval struct {
	Low  float32
	High float32
}

// UniformSampler draws points uniformly from a box in feature space, each
// coordinate independently within its interval. Sampling is deterministic
// for a given seed.
type UniformSampler[B tensor.Backend] struct {
	intervals []Interval
	rng       *rand.Rand
	backend   B
}

// NewUniformSampler creates a sampler over the given per-dimension
// intervals. Returns a ConfigurationError if no intervals are given or any
// interval has Low > High.
func NewUniformSampler[B tensor.Backend](intervals []Interval, seed int64, backend B) (*UniformSampler[B], error) {
	if len(intervals) == 0 {
		return nil, configErrorf("ranges", "at least one sampling interval is required")
	}
	for i, iv := range intervals {
		if iv.Low > iv.High {
			return nil, configErrorf("ranges", "interval %d has low %g > high %g", i, iv.Low, iv.High)
		}
	}

	return &UniformSampler[B]{
		intervals: append([]Interval(nil), intervals...),
		rng:       rand.New(rand.NewSource(seed)), //nolint:gosec // G404: statistical sampling, reproducibility wanted
		backend:   backend,
	}, nil
}

// Dim returns the number of feature dimensions.
func (s *UniformSampler[B]) Dim() int {
	return len(s.intervals)
}

// Sample draws n points and returns them as an (n, d) tensor. Returns a
// ConfigurationError if n is not positive.
func (s *UniformSampler[B]) Sample(n int) (*tensor.Tensor[float32, B], error) {
	if n <= 0 {
		return nil, configErrorf("n_samples", "must be positive, got %d", n)
	}

	d := len(s.intervals)
	points := tensor.Zeros[float32](tensor.Shape{n, d}, s.backend)

	data := points.Data()
	for i := 0; i < n; i++ {
		for j, iv := range s.intervals {
			data[i*d+j] = iv.Low + s.rng.Float32()*(iv.High-iv.Low)
		}
	}

	return points, nil
}
