package preprocess_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verge-ml/verge/internal/backend/cpu"
	"github.com/verge-ml/verge/internal/preprocess"
	"github.com/verge-ml/verge/internal/tensor"
)

type CPU = *cpu.CPUBackend

func TestNormalizer_FitTransform(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{
		1, 10,
		2, 20,
		3, 30,
	}, tensor.Shape{3, 2}, backend)
	require.NoError(t, err)

	norm := preprocess.NewNormalizer[CPU]()
	require.NoError(t, norm.Fit(x))

	assert.InDelta(t, 2.0, float64(norm.Mean()[0]), 1e-6)
	assert.InDelta(t, 20.0, float64(norm.Mean()[1]), 1e-6)

	out, err := norm.Transform(x)
	require.NoError(t, err)

	data := out.Data()
	for j := 0; j < 2; j++ {
		var sum, sumSq float64
		for i := 0; i < 3; i++ {
			v := float64(data[i*2+j])
			sum += v
			sumSq += v * v
		}
		assert.InDelta(t, 0.0, sum/3, 1e-5, "column %d mean", j)
		assert.InDelta(t, 1.0, sumSq/3, 1e-4, "column %d variance", j)
	}

	// The input batch is untouched.
	assert.Equal(t, float32(1), x.At(0, 0))
}

func TestNormalizer_TransformBeforeFit(t *testing.T) {
	backend := cpu.New()
	x := tensor.Ones[float32](tensor.Shape{2, 2}, backend)

	_, err := preprocess.NewNormalizer[CPU]().Transform(x)
	assert.ErrorIs(t, err, preprocess.ErrNotFitted)
}

func TestNormalizer_ConstantFeature(t *testing.T) {
	backend := cpu.New()
	x := tensor.Full[float32](tensor.Shape{4, 1}, 7, backend)

	norm := preprocess.NewNormalizer[CPU]()
	require.NoError(t, norm.Fit(x))

	out, err := norm.Transform(x)
	require.NoError(t, err)

	// Stddev is floored, so the result is finite (zero, in fact).
	for _, v := range out.Data() {
		require.False(t, math.IsNaN(float64(v)) || math.IsInf(float64(v), 0))
		assert.Zero(t, v)
	}
}

func TestNormalizer_FeatureCountMismatch(t *testing.T) {
	backend := cpu.New()
	norm := preprocess.NewNormalizer[CPU]()
	require.NoError(t, norm.Fit(tensor.Ones[float32](tensor.Shape{2, 3}, backend)))

	_, err := norm.Transform(tensor.Ones[float32](tensor.Shape{2, 4}, backend))
	assert.Error(t, err)
}

func TestNormalizer_RejectsNon2D(t *testing.T) {
	backend := cpu.New()
	norm := preprocess.NewNormalizer[CPU]()

	assert.Error(t, norm.Fit(tensor.Ones[float32](tensor.Shape{4}, backend)))
}

func TestPipeline(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{0, 100, 2, 200, 4, 300}, tensor.Shape{3, 2}, backend)
	require.NoError(t, err)

	pipe := preprocess.NewPipeline[CPU](preprocess.NewNormalizer[CPU]())
	require.NoError(t, pipe.Fit(x))

	out, err := pipe.Transform(x)
	require.NoError(t, err)

	for j := 0; j < 2; j++ {
		var sum float64
		for i := 0; i < 3; i++ {
			sum += float64(out.At(i, j))
		}
		assert.InDelta(t, 0.0, sum/3, 1e-5)
	}
}

func TestPipeline_PropagatesErrors(t *testing.T) {
	backend := cpu.New()
	pipe := preprocess.NewPipeline[CPU](preprocess.NewNormalizer[CPU]())

	_, err := pipe.Transform(tensor.Ones[float32](tensor.Shape{2, 2}, backend))
	assert.ErrorIs(t, err, preprocess.ErrNotFitted)
}
