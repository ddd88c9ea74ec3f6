package boundary_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verge-ml/verge/internal/backend/cpu"
	"github.com/verge-ml/verge/internal/boundary"
	"github.com/verge-ml/verge/internal/tensor"
)

type CPU = *cpu.CPUBackend

func TestUniformSampler_BoundsAndShape(t *testing.T) {
	backend := cpu.New()
	intervals := []boundary.Interval{
		{Low: -2, High: 4},
		{Low: -2, High: 2},
		{Low: -2, High: 2},
		{Low: 0, High: 2 * math.Pi},
		{Low: -1, High: 1},
	}

	sampler, err := boundary.NewUniformSampler(intervals, 42, backend)
	require.NoError(t, err)
	assert.Equal(t, 5, sampler.Dim())

	points, err := sampler.Sample(100)
	require.NoError(t, err)
	require.True(t, points.Shape().Equal(tensor.Shape{100, 5}))

	data := points.Data()
	for i := 0; i < 100; i++ {
		for j, iv := range intervals {
			v := data[i*5+j]
			assert.GreaterOrEqual(t, v, iv.Low, "point %d dim %d", i, j)
			assert.LessOrEqual(t, v, iv.High, "point %d dim %d", i, j)
		}
	}
}

func TestUniformSampler_Deterministic(t *testing.T) {
	backend := cpu.New()
	intervals := []boundary.Interval{{Low: 0, High: 1}, {Low: -5, High: 5}}

	s1, err := boundary.NewUniformSampler(intervals, 7, backend)
	require.NoError(t, err)
	s2, err := boundary.NewUniformSampler(intervals, 7, backend)
	require.NoError(t, err)

	a, err := s1.Sample(50)
	require.NoError(t, err)
	b, err := s2.Sample(50)
	require.NoError(t, err)

	assert.Equal(t, a.Data(), b.Data())
}

func TestUniformSampler_InvalidRanges(t *testing.T) {
	backend := cpu.New()

	_, err := boundary.NewUniformSampler([]boundary.Interval{{Low: 2, High: 1}}, 1, backend)
	require.Error(t, err)
	assert.True(t, boundary.IsConfigurationError(err))

	_, err = boundary.NewUniformSampler(nil, 1, backend)
	require.Error(t, err)
	assert.True(t, boundary.IsConfigurationError(err))
}

func TestUniformSampler_InvalidCount(t *testing.T) {
	backend := cpu.New()
	sampler, err := boundary.NewUniformSampler([]boundary.Interval{{Low: 0, High: 1}}, 1, backend)
	require.NoError(t, err)

	for _, n := range []int{0, -3} {
		_, err := sampler.Sample(n)
		require.Error(t, err, "n=%d", n)
		assert.True(t, boundary.IsConfigurationError(err))
	}
}

func TestUniformSampler_DegenerateInterval(t *testing.T) {
	backend := cpu.New()
	sampler, err := boundary.NewUniformSampler([]boundary.Interval{{Low: 3, High: 3}}, 1, backend)
	require.NoError(t, err)

	points, err := sampler.Sample(10)
	require.NoError(t, err)
	for _, v := range points.Data() {
		assert.Equal(t, float32(3), v)
	}
}
