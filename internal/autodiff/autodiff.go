// Package autodiff provides reverse-mode automatic differentiation by
// decorating a compute backend with a gradient tape.
//
// Wrap any backend with New, run the forward pass while the tape records,
// then call Backward on the tape to obtain gradients with respect to any
// tensor that participated in the computation, inputs included.
package autodiff

import (
	"fmt"

	"github.com/verge-ml/verge/internal/autodiff/ops"
	"github.com/verge-ml/verge/internal/tensor"
)

// Backend decorates an inner backend, recording every operation on a
// gradient tape while delegating the computation itself.
type Backend[B tensor.Backend] struct {
	inner B
	tape  *GradientTape
}

// New wraps the given backend with a fresh gradient tape.
func New[B tensor.Backend](inner B) *Backend[B] {
	return &Backend[B]{
		inner: inner,
		tape:  NewGradientTape(),
	}
}

// Inner returns the wrapped backend. Use it for computations that must not
// be recorded, like the backward sweep itself.
func (ad *Backend[B]) Inner() B {
	return ad.inner
}

// Tape returns the gradient tape.
func (ad *Backend[B]) Tape() *GradientTape {
	return ad.tape
}

// InnerBackend returns the wrapped backend as a plain tensor.Backend.
// It exists alongside Inner so non-generic code can satisfy TapeBackend.
func (ad *Backend[B]) InnerBackend() tensor.Backend {
	return ad.inner
}

// Name returns the backend name, marking it as autodiff-wrapped.
func (ad *Backend[B]) Name() string {
	return "Autodiff(" + ad.inner.Name() + ")"
}

// Device returns the inner backend's device.
func (ad *Backend[B]) Device() tensor.Device {
	return ad.inner.Device()
}

// Add computes a + b and records the operation.
func (ad *Backend[B]) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	out := ad.inner.Add(a, b)
	ad.tape.Record(ops.NewAddOp(a, b, out))
	return out
}

// Sub computes a - b and records the operation.
func (ad *Backend[B]) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	out := ad.inner.Sub(a, b)
	ad.tape.Record(ops.NewSubOp(a, b, out))
	return out
}

// Mul computes a * b and records the operation.
func (ad *Backend[B]) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	out := ad.inner.Mul(a, b)
	ad.tape.Record(ops.NewMulOp(a, b, out))
	return out
}

// Div computes a / b and records the operation.
func (ad *Backend[B]) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	out := ad.inner.Div(a, b)
	ad.tape.Record(ops.NewDivOp(a, b, out))
	return out
}

// MatMul computes a @ b and records the operation.
func (ad *Backend[B]) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	out := ad.inner.MatMul(a, b)
	ad.tape.Record(ops.NewMatMulOp(a, b, out))
	return out
}

// Reshape changes the tensor shape and records the operation.
func (ad *Backend[B]) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	out := ad.inner.Reshape(t, newShape)
	ad.tape.Record(ops.NewReshapeOp(t, out))
	return out
}

// Transpose permutes tensor dimensions and records the operation.
func (ad *Backend[B]) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	out := ad.inner.Transpose(t, axes...)

	// Materialize the default permutation so the backward pass can invert it.
	if len(axes) == 0 {
		ndim := len(t.Shape())
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	ad.tape.Record(ops.NewTransposeOp(t, out, axes))
	return out
}

// AddScalar computes x + scalar and records the operation.
func (ad *Backend[B]) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	out := ad.inner.AddScalar(x, scalar)
	ad.tape.Record(ops.NewAddScalarOp(x, out, scalar))
	return out
}

// SubScalar computes x - scalar and records the operation.
func (ad *Backend[B]) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	out := ad.inner.SubScalar(x, scalar)
	ad.tape.Record(ops.NewSubScalarOp(x, out, scalar))
	return out
}

// MulScalar computes x * scalar and records the operation.
func (ad *Backend[B]) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	out := ad.inner.MulScalar(x, scalar)
	ad.tape.Record(ops.NewMulScalarOp(x, out, scalar))
	return out
}

// DivScalar computes x / scalar and records the operation.
func (ad *Backend[B]) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	out := ad.inner.DivScalar(x, scalar)
	ad.tape.Record(ops.NewDivScalarOp(x, out, scalar))
	return out
}

// Exp computes exp(x) and records the operation.
func (ad *Backend[B]) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	out := ad.inner.Exp(x)
	ad.tape.Record(ops.NewExpOp(x, out))
	return out
}

// Sqrt computes sqrt(x) and records the operation.
func (ad *Backend[B]) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	out := ad.inner.Sqrt(x)
	ad.tape.Record(ops.NewSqrtOp(x, out))
	return out
}

// Softmax computes row-wise softmax and records the operation.
func (ad *Backend[B]) Softmax(x *tensor.RawTensor) *tensor.RawTensor {
	out := ad.inner.Softmax(x)
	ad.tape.Record(ops.NewSoftmaxOp(x, out))
	return out
}

// Sum computes the total sum and records the operation.
func (ad *Backend[B]) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	out := ad.inner.Sum(x)
	ad.tape.Record(ops.NewSumOp(x, out))
	return out
}

// SumDim sums along a dimension and records the operation.
func (ad *Backend[B]) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	out := ad.inner.SumDim(x, dim, keepDim)
	ad.tape.Record(ops.NewSumDimOp(x, out, dim, keepDim))
	return out
}

// MeanDim averages along a dimension and records the operation.
func (ad *Backend[B]) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	out := ad.inner.MeanDim(x, dim, keepDim)
	ad.tape.Record(ops.NewMeanDimOp(x, out, dim, keepDim))
	return out
}

// ReLU computes max(0, x) and records the operation. Panics if the inner
// backend does not provide activation kernels.
func (ad *Backend[B]) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	out := ad.activations().ReLU(x)
	ad.tape.Record(ops.NewReLUOp(x, out))
	return out
}

// Sigmoid computes σ(x) and records the operation. Panics if the inner
// backend does not provide activation kernels.
func (ad *Backend[B]) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	out := ad.activations().Sigmoid(x)
	ad.tape.Record(ops.NewSigmoidOp(x, out))
	return out
}

// Tanh computes tanh(x) and records the operation. Panics if the inner
// backend does not provide activation kernels.
func (ad *Backend[B]) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	out := ad.activations().Tanh(x)
	ad.tape.Record(ops.NewTanhOp(x, out))
	return out
}

func (ad *Backend[B]) activations() tensor.ActivationBackend {
	act, ok := any(ad.inner).(tensor.ActivationBackend)
	if !ok {
		panic(fmt.Sprintf("autodiff: backend %s does not implement activations", ad.inner.Name()))
	}
	return act
}
