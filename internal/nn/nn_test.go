package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verge-ml/verge/internal/backend/cpu"
	"github.com/verge-ml/verge/internal/nn"
	"github.com/verge-ml/verge/internal/tensor"
)

type CPU = *cpu.CPUBackend

func TestLinear_Forward(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(1))

	lin := nn.NewLinear[float32, CPU](2, 2, rng, backend)

	// y = x @ Wᵀ + b with W = [[1, 2], [3, 4]], b = [10, 20].
	w := lin.Weight().Tensor()
	w.Set(1, 0, 0)
	w.Set(2, 0, 1)
	w.Set(3, 1, 0)
	w.Set(4, 1, 1)
	b := lin.Bias().Tensor()
	b.Set(10, 0)
	b.Set(20, 1)

	x, err := tensor.FromSlice([]float32{1, 1, 2, 0}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	out := lin.Forward(x)

	require.True(t, out.Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, []float32{13, 27, 12, 26}, out.Data())
}

func TestLinear_XavierInitBounds(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(42))

	lin := nn.NewLinear[float32, CPU](8, 4, rng, backend)

	limit := float32(math.Sqrt(6.0 / 12.0))
	for _, v := range lin.Weight().Tensor().Data() {
		assert.LessOrEqual(t, v, limit)
		assert.GreaterOrEqual(t, v, -limit)
	}
	for _, v := range lin.Bias().Tensor().Data() {
		assert.Zero(t, v)
	}
}

func TestLinear_Metadata(t *testing.T) {
	backend := cpu.New()
	lin := nn.NewLinear[float32, CPU](3, 5, rand.New(rand.NewSource(1)), backend)

	assert.Equal(t, 3, lin.InFeatures())
	assert.Equal(t, 5, lin.OutFeatures())
	assert.Len(t, lin.Parameters(), 2)

	assert.Panics(t, func() {
		nn.NewLinear[float32, CPU](0, 5, rand.New(rand.NewSource(1)), backend)
	})
}

func TestParameter_Freeze(t *testing.T) {
	backend := cpu.New()
	p := nn.NewParameter("w", tensor.Ones[float32](tensor.Shape{2}, backend))

	assert.False(t, p.Frozen())
	p.Freeze()
	assert.True(t, p.Frozen())
	p.Unfreeze()
	assert.False(t, p.Frozen())
	assert.Equal(t, "w", p.Name())
}

func TestActivations_Forward(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{-1, 0, 2}, tensor.Shape{1, 3}, backend)
	require.NoError(t, err)

	relu := nn.NewReLU[float32, CPU]().Forward(x)
	assert.Equal(t, []float32{0, 0, 2}, relu.Data())

	sig := nn.NewSigmoid[float32, CPU]().Forward(x)
	assert.InDelta(t, 0.5, float64(sig.Data()[1]), 1e-6)

	tanh := nn.NewTanh[float32, CPU]().Forward(x)
	assert.InDelta(t, math.Tanh(2), float64(tanh.Data()[2]), 1e-6)

	assert.Nil(t, nn.NewReLU[float32, CPU]().Parameters())
}

func TestSoftmax_Forward(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{0, 0, 1, 3}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	out := nn.NewSoftmax[float32, CPU]().Forward(x)

	data := out.Data()
	assert.InDelta(t, 0.5, float64(data[0]), 1e-6)
	assert.InDelta(t, 0.5, float64(data[1]), 1e-6)
	assert.InDelta(t, 1.0, float64(data[2]+data[3]), 1e-6)
	assert.Less(t, data[2], data[3])
}

func TestSequential(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(3))

	lin1 := nn.NewLinear[float32, CPU](2, 4, rng, backend)
	lin2 := nn.NewLinear[float32, CPU](4, 2, rng, backend)
	model := nn.NewSequential[float32, CPU](
		lin1,
		nn.NewTanh[float32, CPU](),
		lin2,
		nn.NewSoftmax[float32, CPU](),
	)

	assert.Len(t, model.Parameters(), 4)
	assert.Len(t, model.Modules(), 4)

	x, err := tensor.FromSlice([]float32{0.5, -0.5, 1, 2}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	out := model.Forward(x)

	require.True(t, out.Shape().Equal(tensor.Shape{2, 2}))
	for r := 0; r < 2; r++ {
		sum := out.At(r, 0) + out.At(r, 1)
		assert.InDelta(t, 1.0, float64(sum), 1e-5, "row %d is not a distribution", r)
	}
}
