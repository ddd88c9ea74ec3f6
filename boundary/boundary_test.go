// Copyright 2026 Verge ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package boundary_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verge-ml/verge/autodiff"
	"github.com/verge-ml/verge/backend/cpu"
	"github.com/verge-ml/verge/boundary"
	"github.com/verge-ml/verge/nn"
)

type AD = *autodiff.Backend[*cpu.Backend]

// TestExtractBoundary_EndToEnd drives the whole public API: sample seeds,
// flow them toward a known linear boundary, filter, and check the cloud
// lies on the line x + y = 0.
func TestExtractBoundary_EndToEnd(t *testing.T) {
	backend := autodiff.New(cpu.New())

	lin := nn.NewLinear[float32, AD](2, 2, rand.New(rand.NewSource(1)), backend)
	w := lin.Weight().Tensor()
	w.Set(1, 0, 0)
	w.Set(1, 0, 1)
	w.Set(-1, 1, 0)
	w.Set(-1, 1, 1)
	lin.Weight().Freeze()
	lin.Bias().Freeze()
	model := nn.NewSequential[float32, AD](lin, nn.NewSoftmax[float32, AD]())

	sampler, err := boundary.NewUniformSampler([]boundary.Interval{
		{Low: -0.5, High: 0.5},
		{Low: -0.5, High: 0.5},
	}, 42, backend)
	require.NoError(t, err)

	seeds, err := sampler.Sample(50)
	require.NoError(t, err)

	calc, err := boundary.NewCalculator[AD](model, seeds, boundary.CalculatorConfig{
		Integrator:   boundary.GradientDescent{LR: 0.1},
		TrackHistory: true,
	})
	require.NoError(t, err)

	require.NoError(t, calc.Step(400))

	cloud, err := calc.Boundary(1e-3)
	require.NoError(t, err)
	require.NotNil(t, cloud, "flow should reach the boundary from nearby seeds")

	rows, cols := cloud.Dims()
	assert.Equal(t, 2, cols)
	assert.Greater(t, rows, 0)
	for i := 0; i < rows; i++ {
		assert.InDelta(t, 0, cloud.At(i, 0)+cloud.At(i, 1), 0.1)
	}

	history := calc.History()
	require.NotEmpty(t, history)
	assert.Less(t, history[len(history)-1], history[0])

	err = calc.Step(1)
	assert.ErrorIs(t, err, boundary.ErrFiltered)
}
