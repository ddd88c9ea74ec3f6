// Copyright 2026 Verge ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package boundary extracts the decision boundary of a frozen classifier.
//
// A UniformSampler seeds a batch of points in feature space, a Calculator
// flows them toward the locus where the classifier is maximally undecided
// (all class probabilities equal 1/C), and Boundary filters the converged
// cloud by a boundary-distance threshold, returning a gonum matrix ready
// for downstream analysis.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	sampler, _ := boundary.NewUniformSampler([]boundary.Interval{
//	    {Low: -2, High: 2}, {Low: -2, High: 2},
//	}, 42, backend)
//	seeds, _ := sampler.Sample(500)
//
//	calc, _ := boundary.NewCalculator[*autodiff.Backend[*cpu.Backend]](model, seeds, boundary.CalculatorConfig{})
//	_ = calc.Step(300)
//	cloud, _ := calc.Boundary(1e-3) // *mat.Dense, nil when empty
package boundary

import (
	"github.com/verge-ml/verge/internal/boundary"
	"github.com/verge-ml/verge/internal/tensor"
)

// Interval is a closed sampling range [Low, High] for one feature
// dimension.
type Interval = boundary.Interval

// UniformSampler draws points uniformly from a box in feature space,
// deterministically for a given seed.
type UniformSampler[B tensor.Backend] = boundary.UniformSampler[B]

// NewUniformSampler creates a sampler over the given per-dimension
// intervals. Returns a ConfigurationError if no intervals are given or any
// interval has Low > High.
func NewUniformSampler[B tensor.Backend](intervals []Interval, seed int64, backend B) (*UniformSampler[B], error) {
	return boundary.NewUniformSampler(intervals, seed, backend)
}

// Classifier maps an (N, d) batch to (N, C) per-class probabilities.
type Classifier[B tensor.Backend] = boundary.Classifier[B]

// InputSized is optionally implemented by classifiers that know their
// input width.
type InputSized = boundary.InputSized

// Integrator is the update rule moving points toward the boundary.
type Integrator = boundary.Integrator

// GradientDescent moves each point a fixed step against the gradient.
type GradientDescent = boundary.GradientDescent

// Quasihyperbolic integrates a coupled position/direction flow with a
// constant step length.
type Quasihyperbolic = boundary.Quasihyperbolic

// NewQuasihyperbolic creates the constrained-flow integrator with step
// size dt and seeded random initial directions.
func NewQuasihyperbolic(dt float32, seed int64) *Quasihyperbolic {
	return boundary.NewQuasihyperbolic(dt, seed)
}

// CalculatorConfig configures a Calculator. The zero value selects plain
// gradient descent and no loss history.
type CalculatorConfig = boundary.CalculatorConfig

// Calculator flows a fixed batch of points toward a classifier's decision
// boundary.
type Calculator[B tensor.Backend] = boundary.Calculator[B]

// NewCalculator creates a calculator flowing the seed batch toward the
// model's decision boundary. The seeds' backend must record a gradient
// tape (wrap it with autodiff.New).
func NewCalculator[B tensor.Backend](model Classifier[B], seeds *tensor.Tensor[float32, B], cfg CalculatorConfig) (*Calculator[B], error) {
	return boundary.NewCalculator(model, seeds, cfg)
}

// ErrFiltered is returned by Step once the calculator has produced its
// filtered boundary and become read-only.
var ErrFiltered = boundary.ErrFiltered

// ConfigurationError reports an invalid construction-time argument.
type ConfigurationError = boundary.ConfigurationError

// IsConfigurationError reports whether err is a ConfigurationError
// anywhere in its chain.
func IsConfigurationError(err error) bool {
	return boundary.IsConfigurationError(err)
}
