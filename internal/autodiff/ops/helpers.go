package ops

import (
	"fmt"

	"github.com/verge-ml/verge/internal/tensor"
)

// reduceBroadcast reduces a gradient tensor to match the target shape.
// This is necessary when broadcasting was used in the forward pass:
//
//	Forward:  a[3,1] + b[3,4] -> c[3,4]   (a broadcast along dim 1)
//	Backward: grad_c[3,4] -> grad_a[3,1]  (sum along dim 1)
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	gradShape := grad.Shape()

	// Clone when shapes already match so accumulation never aliases a
	// gradient that another operation still holds.
	if gradShape.Equal(targetShape) {
		return grad.Clone()
	}

	// Sum away leading dimensions the target does not have.
	result := grad
	for len(result.Shape()) > len(targetShape) {
		result = backend.SumDim(result, 0, false)
	}

	// Sum along dimensions where the target is 1.
	for i := 0; i < len(targetShape); i++ {
		if targetShape[i] == 1 && result.Shape()[i] > 1 {
			result = backend.SumDim(result, i, true)
		}
	}

	if !result.Shape().Equal(targetShape) {
		result = backend.Reshape(result, targetShape)
	}

	return result
}

// broadcastTo expands a gradient tensor to the given shape, repeating values
// along size-1 or missing dimensions. Used by reduction backward passes.
func broadcastTo(t *tensor.RawTensor, targetShape tensor.Shape) *tensor.RawTensor {
	if t.Shape().Equal(targetShape) {
		return t.Clone()
	}

	result, err := tensor.NewRaw(targetShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("broadcastTo: %v", err))
	}

	switch t.DType() {
	case tensor.Float32:
		broadcastData(t.AsFloat32(), result.AsFloat32(), t.Shape(), targetShape)
	case tensor.Float64:
		broadcastData(t.AsFloat64(), result.AsFloat64(), t.Shape(), targetShape)
	default:
		panic(fmt.Sprintf("broadcastTo: unsupported dtype %s", t.DType()))
	}

	return result
}

func broadcastData[T tensor.DType](src, dst []T, srcShape, dstShape tensor.Shape) {
	srcStrides := srcShape.ComputeStrides()
	dstStrides := dstShape.ComputeStrides()

	for i := range dst {
		srcIdx := 0
		rem := i
		for d := range dstShape {
			coord := rem / dstStrides[d]
			rem %= dstStrides[d]

			srcDim := d - (len(dstShape) - len(srcShape))
			if srcDim >= 0 && srcDim < len(srcShape) {
				if srcShape[srcDim] == 1 {
					coord = 0
				}
				srcIdx += coord * srcStrides[srcDim]
			}
		}
		dst[i] = src[srcIdx]
	}
}

// unsqueeze re-inserts a reduced dimension of size 1 so a keepDim=false
// reduction gradient broadcasts correctly against the original input shape.
func unsqueeze(t *tensor.RawTensor, dim int, inputShape tensor.Shape) *tensor.RawTensor {
	ndim := len(inputShape)
	if dim < 0 {
		dim = ndim + dim
	}

	newShape := inputShape.Clone()
	newShape[dim] = 1

	result, err := tensor.NewRaw(newShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("unsqueeze: %v", err))
	}

	copy(result.Data(), t.Data())
	return result
}
