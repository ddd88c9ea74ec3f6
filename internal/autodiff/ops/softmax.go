package ops

import "github.com/verge-ml/verge/internal/tensor"

// SoftmaxOp represents a row-wise softmax over the last dimension.
//
// Backward uses the Jacobian-vector product expressed in terms of the
// softmax output s:
//
//	grad_x = s * (grad - Σ_j(grad_j * s_j))
//
// where the sum runs over the softmax dimension for each row.
type SoftmaxOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // softmax(x)
}

// NewSoftmaxOp creates a new SoftmaxOp.
func NewSoftmaxOp(x, output *tensor.RawTensor) *SoftmaxOp {
	return &SoftmaxOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward computes the input gradient from the softmax output.
func (op *SoftmaxOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	s := op.output
	lastDim := len(s.Shape()) - 1

	gs := backend.Mul(outputGrad, s)
	rowDot := backend.SumDim(gs, lastDim, true)
	gradX := backend.Mul(s, backend.Sub(outputGrad, rowDot))

	return []*tensor.RawTensor{gradX}
}

// Inputs returns the input tensors [x].
func (op *SoftmaxOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor softmax(x).
func (op *SoftmaxOp) Output() *tensor.RawTensor {
	return op.output
}
