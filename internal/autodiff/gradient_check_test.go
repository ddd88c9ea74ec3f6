package autodiff_test

import (
	"math"
	"testing"

	"github.com/verge-ml/verge/internal/autodiff"
	"github.com/verge-ml/verge/internal/backend/cpu"
	"github.com/verge-ml/verge/internal/tensor"
)

// boundaryLoss computes Σ (softmax(x @ Wᵀ) − ½)² on the given backend.
// This is the composed loss the boundary calculator differentiates.
func boundaryLoss[B tensor.Backend](xData, wData []float64, n, d, c int, backend B) float64 {
	x, _ := tensor.FromSlice(xData, tensor.Shape{n, d}, backend)
	w, _ := tensor.FromSlice(wData, tensor.Shape{c, d}, backend)

	probs := x.MatMul(w.T()).Softmax()
	diff := probs.SubScalar(1 / float64(c))
	return diff.Mul(diff).Sum().Item()
}

// TestGradientCheck_BoundaryLoss compares taped input gradients of the
// boundary loss against central finite differences.
func TestGradientCheck_BoundaryLoss(t *testing.T) {
	base := cpu.New()
	backend := autodiff.New(base)
	tape := backend.Tape()

	xData := []float64{0.3, -1.1, 0.7, 0.2, -0.4, 1.5}
	wData := []float64{1.0, -0.5, -0.3, 0.8}
	n, d, c := 3, 2, 2

	tape.Start()
	x, _ := tensor.FromSlice(xData, tensor.Shape{n, d}, backend)
	w, _ := tensor.FromSlice(wData, tensor.Shape{c, d}, backend)
	probs := x.MatMul(w.T()).Softmax()
	diff := probs.SubScalar(1 / float64(c))
	loss := diff.Mul(diff).Sum()
	tape.Stop()

	grads := autodiff.Backward(loss.Raw(), backend)
	grad, ok := grads[x.Raw()]
	if !ok {
		t.Fatal("no gradient for input coordinates")
	}
	analytic := grad.AsFloat64()

	const eps = 1e-6
	for i := range xData {
		plus := append([]float64(nil), xData...)
		minus := append([]float64(nil), xData...)
		plus[i] += eps
		minus[i] -= eps

		numeric := (boundaryLoss(plus, wData, n, d, c, base) -
			boundaryLoss(minus, wData, n, d, c, base)) / (2 * eps)

		if math.Abs(analytic[i]-numeric) > 1e-5 {
			t.Errorf("coordinate %d: analytic %.8f vs numeric %.8f", i, analytic[i], numeric)
		}
	}
}

// TestGradientCheck_Activations verifies activation gradients against
// finite differences through a Σ f(x) reduction.
func TestGradientCheck_Activations(t *testing.T) {
	cases := []struct {
		name    string
		forward func(b *autodiff.Backend[*cpu.CPUBackend], x *tensor.RawTensor) *tensor.RawTensor
		numeric func(b *cpu.CPUBackend, x *tensor.RawTensor) *tensor.RawTensor
	}{
		{
			"sigmoid",
			func(b *autodiff.Backend[*cpu.CPUBackend], x *tensor.RawTensor) *tensor.RawTensor { return b.Sigmoid(x) },
			func(b *cpu.CPUBackend, x *tensor.RawTensor) *tensor.RawTensor { return b.Sigmoid(x) },
		},
		{
			"tanh",
			func(b *autodiff.Backend[*cpu.CPUBackend], x *tensor.RawTensor) *tensor.RawTensor { return b.Tanh(x) },
			func(b *cpu.CPUBackend, x *tensor.RawTensor) *tensor.RawTensor { return b.Tanh(x) },
		},
		{
			"relu",
			func(b *autodiff.Backend[*cpu.CPUBackend], x *tensor.RawTensor) *tensor.RawTensor { return b.ReLU(x) },
			func(b *cpu.CPUBackend, x *tensor.RawTensor) *tensor.RawTensor { return b.ReLU(x) },
		},
		{
			"exp",
			func(b *autodiff.Backend[*cpu.CPUBackend], x *tensor.RawTensor) *tensor.RawTensor { return b.Exp(x) },
			func(b *cpu.CPUBackend, x *tensor.RawTensor) *tensor.RawTensor { return b.Exp(x) },
		},
	}

	xData := []float64{-1.2, -0.3, 0.4, 1.7}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base := cpu.New()
			backend := autodiff.New(base)
			tape := backend.Tape()

			tape.Start()
			x, _ := tensor.FromSlice(xData, tensor.Shape{4}, backend)
			y := backend.Sum(tc.forward(backend, x.Raw()))
			tape.Stop()

			grads := autodiff.Backward(y, backend)
			analytic := grads[x.Raw()].AsFloat64()

			const eps = 1e-6
			eval := func(data []float64) float64 {
				xt, _ := tensor.FromSlice(data, tensor.Shape{4}, base)
				return base.Sum(tc.numeric(base, xt.Raw())).AsFloat64()[0]
			}

			for i := range xData {
				plus := append([]float64(nil), xData...)
				minus := append([]float64(nil), xData...)
				plus[i] += eps
				minus[i] -= eps
				numeric := (eval(plus) - eval(minus)) / (2 * eps)

				if math.Abs(analytic[i]-numeric) > 1e-5 {
					t.Errorf("coordinate %d: analytic %.8f vs numeric %.8f", i, analytic[i], numeric)
				}
			}
		})
	}
}
