package cpu

import (
	"fmt"

	"github.com/verge-ml/verge/internal/tensor"
)

// Reshape returns a tensor with the same data under a different shape.
// Zero-copy: the result shares the input's buffer.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	result, err := t.WithShape(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return result
}

// Transpose transposes the tensor by permuting its dimensions.
// If axes is empty, all dimensions are reversed.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD tensor", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	newShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		newShape[i] = shape[ax]
	}

	result, err := tensor.NewRaw(newShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	switch t.DType() {
	case tensor.Float32:
		transposeData(t.AsFloat32(), result.AsFloat32(), shape, newShape, axes)
	case tensor.Float64:
		transposeData(t.AsFloat64(), result.AsFloat64(), shape, newShape, axes)
	default:
		panic(fmt.Sprintf("transpose: unsupported dtype %s", t.DType()))
	}

	return result
}

// transposeData permutes elements so that dst[i0,...,in] = src[i_axes[0],...].
func transposeData[T tensor.DType](src, dst []T, srcShape, dstShape tensor.Shape, axes []int) {
	srcStrides := srcShape.ComputeStrides()
	dstStrides := dstShape.ComputeStrides()

	for i := range dst {
		srcIdx := 0
		rem := i
		for d := range dstShape {
			coord := rem / dstStrides[d]
			rem %= dstStrides[d]
			srcIdx += coord * srcStrides[axes[d]]
		}
		dst[i] = src[srcIdx]
	}
}
