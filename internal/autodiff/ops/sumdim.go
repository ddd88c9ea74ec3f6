package ops

import "github.com/verge-ml/verge/internal/tensor"

// SumDimOp represents a reduction along a single dimension:
// output = sum(x, dim, keepDim).
//
// Backward: the output gradient is expanded back along the reduced
// dimension, every element of the input along it receiving the same value.
type SumDimOp struct {
	inputs  []*tensor.RawTensor // [x]
	output  *tensor.RawTensor
	dim     int
	keepDim bool
}

// NewSumDimOp creates a new SumDimOp.
func NewSumDimOp(x, output *tensor.RawTensor, dim int, keepDim bool) *SumDimOp {
	return &SumDimOp{
		inputs:  []*tensor.RawTensor{x},
		output:  output,
		dim:     dim,
		keepDim: keepDim,
	}
}

// Backward broadcasts the output gradient back to the input shape.
func (op *SumDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inputShape := op.inputs[0].Shape()

	grad := outputGrad
	if !op.keepDim {
		grad = unsqueeze(grad, op.dim, inputShape)
	}

	return []*tensor.RawTensor{broadcastTo(grad, inputShape)}
}

// Inputs returns the input tensors [x].
func (op *SumDimOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the reduced output tensor.
func (op *SumDimOp) Output() *tensor.RawTensor {
	return op.output
}
