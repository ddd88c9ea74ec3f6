// Package cpu implements the pure-Go CPU backend.
package cpu

import (
	"fmt"

	"github.com/verge-ml/verge/internal/parallel"
	"github.com/verge-ml/verge/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
// Matrix multiplication is delegated to gonum BLAS kernels; element-wise
// loops over large tensors are data-parallel via the parallel package.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.DefaultConfig(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("sub", a, b,
		func(x, y float32) float32 { return x - y },
		func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("div", a, b,
		func(x, y float32) float32 { return x / y },
		func(x, y float64) float64 { return x / y })
}

// binaryOp applies an element-wise binary function with broadcasting.
func (cpu *CPUBackend) binaryOp(
	name string,
	a, b *tensor.RawTensor,
	f32 func(x, y float32) float32,
	f64 func(x, y float64) float64,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch a.DType() {
	case tensor.Float32:
		if needsBroadcast {
			mappedBinary(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(),
				outShape, a.Shape(), b.Shape(), f32, cpu.par)
		} else {
			directBinary(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), f32, cpu.par)
		}
	case tensor.Float64:
		if needsBroadcast {
			mappedBinary(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(),
				outShape, a.Shape(), b.Shape(), f64, cpu.par)
		} else {
			directBinary(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), f64, cpu.par)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}

// directBinary is the fast path for operands of identical shape.
func directBinary[T tensor.DType](dst, a, b []T, f func(x, y T) T, cfg parallel.Config) {
	parallel.For(len(dst), func(i int) {
		dst[i] = f(a[i], b[i])
	}, cfg)
}

// mappedBinary is the broadcasting path: each output index is mapped back to
// the (possibly repeated) source index of both operands.
func mappedBinary[T tensor.DType](
	dst, a, b []T,
	outShape, aShape, bShape tensor.Shape,
	f func(x, y T) T,
	cfg parallel.Config,
) {
	aIndex := newBroadcastIndexer(aShape, outShape)
	bIndex := newBroadcastIndexer(bShape, outShape)
	parallel.For(len(dst), func(i int) {
		dst[i] = f(a[aIndex.source(i)], b[bIndex.source(i)])
	}, cfg)
}
