package ops

import "github.com/verge-ml/verge/internal/tensor"

// ReshapeOp represents a shape change: output = reshape(x, newShape).
//
// Backward: reshape the output gradient back to the input's shape.
type ReshapeOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // reshape(x)
}

// NewReshapeOp creates a new ReshapeOp.
func NewReshapeOp(x, output *tensor.RawTensor) *ReshapeOp {
	return &ReshapeOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward reshapes the output gradient to the input shape.
func (op *ReshapeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Reshape(outputGrad, op.inputs[0].Shape())}
}

// Inputs returns the input tensors [x].
func (op *ReshapeOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the reshaped output tensor.
func (op *ReshapeOp) Output() *tensor.RawTensor {
	return op.output
}
