package ops

import "github.com/verge-ml/verge/internal/tensor"

// SubOp represents an element-wise subtraction: output = a - b.
//
// Backward: d(a-b)/da = 1, d(a-b)/db = -1.
type SubOp struct {
	inputs []*tensor.RawTensor // [a, b]
	output *tensor.RawTensor   // a - b
}

// NewSubOp creates a new SubOp.
func NewSubOp(a, b, output *tensor.RawTensor) *SubOp {
	return &SubOp{
		inputs: []*tensor.RawTensor{a, b},
		output: output,
	}
}

// Backward computes input gradients for subtraction.
func (op *SubOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	a, b := op.inputs[0], op.inputs[1]

	gradA := reduceBroadcast(outputGrad, a.Shape(), backend)

	negGrad := negateScalarFor(outputGrad, backend)
	gradB := reduceBroadcast(negGrad, b.Shape(), backend)

	return []*tensor.RawTensor{gradA, gradB}
}

// Inputs returns the input tensors [a, b].
func (op *SubOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor a - b.
func (op *SubOp) Output() *tensor.RawTensor {
	return op.output
}

// negateScalarFor multiplies by -1 with the scalar typed to the tensor's dtype.
func negateScalarFor(t *tensor.RawTensor, backend tensor.Backend) *tensor.RawTensor {
	switch t.DType() {
	case tensor.Float64:
		return backend.MulScalar(t, float64(-1))
	default:
		return backend.MulScalar(t, float32(-1))
	}
}
