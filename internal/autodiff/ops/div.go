package ops

import "github.com/verge-ml/verge/internal/tensor"

// DivOp represents an element-wise division: output = a / b.
//
// Backward: d(a/b)/da = 1/b, d(a/b)/db = -a/b².
type DivOp struct {
	inputs []*tensor.RawTensor // [a, b]
	output *tensor.RawTensor   // a / b
}

// NewDivOp creates a new DivOp.
func NewDivOp(a, b, output *tensor.RawTensor) *DivOp {
	return &DivOp{
		inputs: []*tensor.RawTensor{a, b},
		output: output,
	}
}

// Backward computes input gradients for division.
func (op *DivOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	a, b := op.inputs[0], op.inputs[1]

	// grad_a = outputGrad / b
	gradA := reduceBroadcast(backend.Div(outputGrad, b), a.Shape(), backend)

	// grad_b = -outputGrad * a / b²
	bSquared := backend.Mul(b, b)
	gradB := backend.Div(backend.Mul(outputGrad, a), bSquared)
	gradB = negateScalarFor(gradB, backend)
	gradB = reduceBroadcast(gradB, b.Shape(), backend)

	return []*tensor.RawTensor{gradA, gradB}
}

// Inputs returns the input tensors [a, b].
func (op *DivOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor a / b.
func (op *DivOp) Output() *tensor.RawTensor {
	return op.output
}
