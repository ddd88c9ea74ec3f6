package ops

import (
	"fmt"

	"github.com/verge-ml/verge/internal/tensor"
)

// ReLUOp represents an element-wise rectified linear unit: output = max(0, x).
//
// Backward: grad where x > 0, zero elsewhere. The derivative at exactly
// zero is taken as zero.
type ReLUOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // max(0, x)
}

// NewReLUOp creates a new ReLUOp.
func NewReLUOp(x, output *tensor.RawTensor) *ReLUOp {
	return &ReLUOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward masks the output gradient by the sign of the input.
func (op *ReLUOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]

	grad, err := tensor.NewRaw(x.Shape(), x.DType(), x.Device())
	if err != nil {
		panic(fmt.Sprintf("relu backward: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		reluMask(x.AsFloat32(), outputGrad.AsFloat32(), grad.AsFloat32())
	case tensor.Float64:
		reluMask(x.AsFloat64(), outputGrad.AsFloat64(), grad.AsFloat64())
	default:
		panic(fmt.Sprintf("relu backward: unsupported dtype %s", x.DType()))
	}

	return []*tensor.RawTensor{grad}
}

func reluMask[T tensor.DType](x, outGrad, grad []T) {
	for i := range grad {
		if x[i] > 0 {
			grad[i] = outGrad[i]
		}
	}
}

// Inputs returns the input tensors [x].
func (op *ReLUOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor max(0, x).
func (op *ReLUOp) Output() *tensor.RawTensor {
	return op.output
}
