package cpu

import (
	"fmt"

	"github.com/verge-ml/verge/internal/parallel"
	"github.com/verge-ml/verge/internal/tensor"
)

// Scalar operations: element-wise combination with a single scalar value.
// The scalar must match the tensor's dtype (float32 or float64).

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("addScalar", x, scalar,
		func(v, s float32) float32 { return v + s },
		func(v, s float64) float64 { return v + s })
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("subScalar", x, scalar,
		func(v, s float32) float32 { return v - s },
		func(v, s float64) float64 { return v - s })
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("mulScalar", x, scalar,
		func(v, s float32) float32 { return v * s },
		func(v, s float64) float64 { return v * s })
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("divScalar", x, scalar,
		func(v, s float32) float32 { return v / s },
		func(v, s float64) float64 { return v / s })
}

func (cpu *CPUBackend) scalarOp(
	name string,
	x *tensor.RawTensor,
	scalar any,
	f32 func(v, s float32) float32,
	f64 func(v, s float64) float64,
) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		s, ok := scalar.(float32)
		if !ok {
			panic(fmt.Sprintf("%s: scalar %v is not float32", name, scalar))
		}
		src := x.AsFloat32()
		dst := result.AsFloat32()
		parallel.For(len(dst), func(i int) {
			dst[i] = f32(src[i], s)
		}, cpu.par)
	case tensor.Float64:
		s, ok := scalar.(float64)
		if !ok {
			panic(fmt.Sprintf("%s: scalar %v is not float64", name, scalar))
		}
		src := x.AsFloat64()
		dst := result.AsFloat64()
		parallel.For(len(dst), func(i int) {
			dst[i] = f64(src[i], s)
		}, cpu.par)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}
