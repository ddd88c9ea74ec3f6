package cpu

import (
	"fmt"

	"github.com/verge-ml/verge/internal/tensor"
)

// Sum reduces the whole tensor to a single-element tensor.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{1}, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		var total float32
		for _, v := range x.AsFloat32() {
			total += v
		}
		result.AsFloat32()[0] = total
	case tensor.Float64:
		var total float64
		for _, v := range x.AsFloat64() {
			total += v
		}
		result.AsFloat64()[0] = total
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

// SumDim sums tensor elements along the specified dimension.
// Negative dims index from the end (-1 = last dim). If keepDim is true the
// reduced dimension is kept with size 1, otherwise it is removed.
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("sumdim: dimension %d out of range for %dD tensor", dim, ndim))
	}

	outShape := reducedShape(shape, dim, keepDim)
	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sumdim: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		sumAlongDim(x.AsFloat32(), result.AsFloat32(), shape, dim)
	case tensor.Float64:
		sumAlongDim(x.AsFloat64(), result.AsFloat64(), shape, dim)
	default:
		panic(fmt.Sprintf("sumdim: unsupported dtype %s", x.DType()))
	}

	return result
}

// MeanDim computes the mean of tensor elements along the specified dimension.
func (cpu *CPUBackend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	result := cpu.SumDim(x, dim, keepDim)

	shape := x.Shape()
	if dim < 0 {
		dim = len(shape) + dim
	}
	n := shape[dim]

	switch result.DType() {
	case tensor.Float32:
		data := result.AsFloat32()
		inv := 1 / float32(n)
		for i := range data {
			data[i] *= inv
		}
	case tensor.Float64:
		data := result.AsFloat64()
		inv := 1 / float64(n)
		for i := range data {
			data[i] *= inv
		}
	}

	return result
}

// reducedShape computes the output shape after reducing dim.
func reducedShape(shape tensor.Shape, dim int, keepDim bool) tensor.Shape {
	if keepDim {
		out := shape.Clone()
		out[dim] = 1
		return out
	}
	out := make(tensor.Shape, 0, len(shape)-1)
	for i, d := range shape {
		if i != dim {
			out = append(out, d)
		}
	}
	return out
}

// sumAlongDim accumulates src into dst with the reduced dimension removed.
// Layout: src index = (outer*n + k)*inner + i for k in [0, n).
func sumAlongDim[T tensor.DType](src, dst []T, shape tensor.Shape, dim int) {
	outer := 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	n := shape[dim]
	inner := 1
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}

	for o := 0; o < outer; o++ {
		for k := 0; k < n; k++ {
			base := (o*n + k) * inner
			dstBase := o * inner
			for i := 0; i < inner; i++ {
				dst[dstBase+i] += src[base+i]
			}
		}
	}
}
