package ops

import "github.com/verge-ml/verge/internal/tensor"

// SigmoidOp represents an element-wise logistic sigmoid: output = σ(x).
//
// Backward: dσ(x)/dx = σ(x) * (1 - σ(x)), computed from the saved output.
type SigmoidOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // σ(x)
}

// NewSigmoidOp creates a new SigmoidOp.
func NewSigmoidOp(x, output *tensor.RawTensor) *SigmoidOp {
	return &SigmoidOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward computes the input gradient: grad * s * (1 - s).
func (op *SigmoidOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	s := op.output

	var one any
	switch s.DType() {
	case tensor.Float64:
		one = float64(1)
	default:
		one = float32(1)
	}

	// 1 - s computed as (-s) + 1
	oneMinusS := backend.AddScalar(negateScalarFor(s, backend), one)
	grad := backend.Mul(outputGrad, backend.Mul(s, oneMinusS))

	return []*tensor.RawTensor{grad}
}

// Inputs returns the input tensors [x].
func (op *SigmoidOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor σ(x).
func (op *SigmoidOp) Output() *tensor.RawTensor {
	return op.output
}
