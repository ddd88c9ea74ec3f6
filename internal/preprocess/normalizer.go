// Package preprocess provides dataset-level feature transforms that are
// fitted once and then applied to batches.
package preprocess

import (
	"math"

	"github.com/pkg/errors"

	"github.com/verge-ml/verge/internal/tensor"
)

// minStddev floors near-constant features so Transform never divides by
// zero.
const minStddev = 1e-7

// ErrNotFitted is returned by Transform when Fit has not been called.
var ErrNotFitted = errors.New("preprocess: transform applied before fit")

// Transformer is a fitted batch transform.
type Transformer[B tensor.Backend] interface {
	// Fit computes the transform's statistics from an (N, d) batch.
	Fit(x *tensor.Tensor[float32, B]) error

	// Transform applies the fitted transform to an (N, d) batch,
	// returning a new tensor. Fails if called before Fit.
	Transform(x *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error)
}

// Normalizer standardizes features to zero mean and unit variance using
// statistics recorded by Fit.
type Normalizer[B tensor.Backend] struct {
	mean   []float32
	stddev []float32
}

// NewNormalizer creates an unfitted normalizer.
func NewNormalizer[B tensor.Backend]() *Normalizer[B] {
	return &Normalizer[B]{}
}

// Fit records per-feature mean and standard deviation from an (N, d)
// batch. Constant features get their stddev floored at 1e-7.
func (n *Normalizer[B]) Fit(x *tensor.Tensor[float32, B]) error {
	shape := x.Shape()
	if len(shape) != 2 {
		return errors.Errorf("preprocess: expected a 2D (n, d) batch, got shape %v", shape)
	}
	rows, cols := shape[0], shape[1]
	if rows == 0 {
		return errors.New("preprocess: cannot fit on an empty batch")
	}

	data := x.Data()
	mean := make([]float32, cols)
	stddev := make([]float32, cols)

	for j := 0; j < cols; j++ {
		var sum float64
		for i := 0; i < rows; i++ {
			sum += float64(data[i*cols+j])
		}
		m := sum / float64(rows)

		var variance float64
		for i := 0; i < rows; i++ {
			d := float64(data[i*cols+j]) - m
			variance += d * d
		}
		variance /= float64(rows)

		sd := math.Sqrt(variance)
		if sd < minStddev {
			sd = minStddev
		}

		mean[j] = float32(m)
		stddev[j] = float32(sd)
	}

	n.mean = mean
	n.stddev = stddev
	return nil
}

// Transform standardizes x with the fitted statistics, returning a new
// tensor. Returns ErrNotFitted before Fit and an error on a feature-count
// mismatch.
func (n *Normalizer[B]) Transform(x *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error) {
	if n.mean == nil {
		return nil, ErrNotFitted
	}

	shape := x.Shape()
	if len(shape) != 2 {
		return nil, errors.Errorf("preprocess: expected a 2D (n, d) batch, got shape %v", shape)
	}
	rows, cols := shape[0], shape[1]
	if cols != len(n.mean) {
		return nil, errors.Errorf("preprocess: fitted on %d features, got %d", len(n.mean), cols)
	}

	out := x.Clone()
	data := out.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = (data[i*cols+j] - n.mean[j]) / n.stddev[j]
		}
	}
	return out, nil
}

// Mean returns the fitted per-feature means, nil before Fit.
func (n *Normalizer[B]) Mean() []float32 {
	return append([]float32(nil), n.mean...)
}

// Stddev returns the fitted per-feature standard deviations, nil before Fit.
func (n *Normalizer[B]) Stddev() []float32 {
	return append([]float32(nil), n.stddev...)
}
