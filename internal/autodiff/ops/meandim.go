package ops

import "github.com/verge-ml/verge/internal/tensor"

// MeanDimOp represents an averaging reduction along a single dimension:
// output = mean(x, dim, keepDim).
//
// Backward: like SumDimOp, divided by the size of the reduced dimension.
type MeanDimOp struct {
	inputs  []*tensor.RawTensor // [x]
	output  *tensor.RawTensor
	dim     int
	keepDim bool
}

// NewMeanDimOp creates a new MeanDimOp.
func NewMeanDimOp(x, output *tensor.RawTensor, dim int, keepDim bool) *MeanDimOp {
	return &MeanDimOp{
		inputs:  []*tensor.RawTensor{x},
		output:  output,
		dim:     dim,
		keepDim: keepDim,
	}
}

// Backward broadcasts the output gradient back and divides by the
// reduced dimension size.
func (op *MeanDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inputShape := op.inputs[0].Shape()

	dim := op.dim
	if dim < 0 {
		dim = len(inputShape) + dim
	}
	n := inputShape[dim]

	grad := outputGrad
	if !op.keepDim {
		grad = unsqueeze(grad, dim, inputShape)
	}
	grad = broadcastTo(grad, inputShape)

	switch grad.DType() {
	case tensor.Float64:
		grad = backend.DivScalar(grad, float64(n))
	default:
		grad = backend.DivScalar(grad, float32(n))
	}

	return []*tensor.RawTensor{grad}
}

// Inputs returns the input tensors [x].
func (op *MeanDimOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the reduced output tensor.
func (op *MeanDimOp) Output() *tensor.RawTensor {
	return op.output
}
