package ops

import "github.com/verge-ml/verge/internal/tensor"

// SqrtOp represents an element-wise square root: output = sqrt(x).
//
// Backward: d(sqrt(x))/dx = 1 / (2 * sqrt(x)) = 1 / (2 * output).
type SqrtOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // sqrt(x)
}

// NewSqrtOp creates a new SqrtOp.
func NewSqrtOp(x, output *tensor.RawTensor) *SqrtOp {
	return &SqrtOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward computes the input gradient: grad / (2 * sqrt(x)).
func (op *SqrtOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	var two any
	switch op.output.DType() {
	case tensor.Float64:
		two = float64(2)
	default:
		two = float32(2)
	}
	denom := backend.MulScalar(op.output, two)
	return []*tensor.RawTensor{backend.Div(outputGrad, denom)}
}

// Inputs returns the input tensors [x].
func (op *SqrtOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor sqrt(x).
func (op *SqrtOp) Output() *tensor.RawTensor {
	return op.output
}
