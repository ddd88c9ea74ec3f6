package cpu

import (
	"fmt"
	"math"

	"github.com/verge-ml/verge/internal/parallel"
	"github.com/verge-ml/verge/internal/tensor"
)

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryOp("exp", x,
		func(v float32) float32 { return float32(math.Exp(float64(v))) },
		func(v float64) float64 { return math.Exp(v) })
}

// Sqrt computes element-wise square root: sqrt(x).
// Panics on negative values.
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	switch x.DType() {
	case tensor.Float32:
		for i, v := range x.AsFloat32() {
			if v < 0 {
				panic(fmt.Sprintf("sqrt: negative value at index %d: %f", i, v))
			}
		}
	case tensor.Float64:
		for i, v := range x.AsFloat64() {
			if v < 0 {
				panic(fmt.Sprintf("sqrt: negative value at index %d: %f", i, v))
			}
		}
	}
	return cpu.unaryOp("sqrt", x,
		func(v float32) float32 { return float32(math.Sqrt(float64(v))) },
		func(v float64) float64 { return math.Sqrt(v) })
}

func (cpu *CPUBackend) unaryOp(
	name string,
	x *tensor.RawTensor,
	f32 func(v float32) float32,
	f64 func(v float64) float64,
) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		parallel.For(len(dst), func(i int) {
			dst[i] = f32(src[i])
		}, cpu.par)
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		parallel.For(len(dst), func(i int) {
			dst[i] = f64(src[i])
		}, cpu.par)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}

// Softmax applies row-wise softmax along the last dimension.
//
// For each row: softmax(x)_i = exp(x_i - max(x)) / Σ_j exp(x_j - max(x)).
// The max-shift keeps exponentials in range.
//
// Supports 2D tensors [batch_size, num_classes].
func (cpu *CPUBackend) Softmax(x *tensor.RawTensor) *tensor.RawTensor {
	shape := x.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("softmax: only 2D tensors supported, got %dD", len(shape)))
	}

	result, err := tensor.NewRaw(shape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("softmax: %v", err))
	}

	rows, cols := shape[0], shape[1]
	switch x.DType() {
	case tensor.Float32:
		softmaxRows(x.AsFloat32(), result.AsFloat32(), rows, cols)
	case tensor.Float64:
		softmaxRows(x.AsFloat64(), result.AsFloat64(), rows, cols)
	default:
		panic(fmt.Sprintf("softmax: unsupported dtype %s", x.DType()))
	}

	return result
}

func softmaxRows[T tensor.DType](src, dst []T, rows, cols int) {
	for r := 0; r < rows; r++ {
		offset := r * cols

		maxVal := src[offset]
		for j := 1; j < cols; j++ {
			if src[offset+j] > maxVal {
				maxVal = src[offset+j]
			}
		}

		var sum T
		for j := 0; j < cols; j++ {
			e := T(math.Exp(float64(src[offset+j] - maxVal)))
			dst[offset+j] = e
			sum += e
		}

		for j := 0; j < cols; j++ {
			dst[offset+j] /= sum
		}
	}
}
