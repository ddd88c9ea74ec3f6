package ops

import (
	"fmt"

	"github.com/verge-ml/verge/internal/tensor"
)

// SumOp represents a total reduction: output = Σ x (single-element tensor).
//
// Backward: every input element contributed with weight 1, so the scalar
// output gradient fills the input shape.
type SumOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // Σ x, shape [1]
}

// NewSumOp creates a new SumOp.
func NewSumOp(x, output *tensor.RawTensor) *SumOp {
	return &SumOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward fills the input shape with the scalar output gradient.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]

	grad, err := tensor.NewRaw(x.Shape(), x.DType(), x.Device())
	if err != nil {
		panic(fmt.Sprintf("sum backward: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		fill(grad.AsFloat32(), outputGrad.AsFloat32()[0])
	case tensor.Float64:
		fill(grad.AsFloat64(), outputGrad.AsFloat64()[0])
	default:
		panic(fmt.Sprintf("sum backward: unsupported dtype %s", x.DType()))
	}

	return []*tensor.RawTensor{grad}
}

func fill[T tensor.DType](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// Inputs returns the input tensors [x].
func (op *SumOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the single-element sum tensor.
func (op *SumOp) Output() *tensor.RawTensor {
	return op.output
}
