package ops

import "github.com/verge-ml/verge/internal/tensor"

// TanhOp represents an element-wise hyperbolic tangent: output = tanh(x).
//
// Backward: d(tanh(x))/dx = 1 - tanh²(x), computed from the saved output.
type TanhOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // tanh(x)
}

// NewTanhOp creates a new TanhOp.
func NewTanhOp(x, output *tensor.RawTensor) *TanhOp {
	return &TanhOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward computes the input gradient: grad * (1 - tanh²(x)).
func (op *TanhOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	t := op.output

	var one any
	switch t.DType() {
	case tensor.Float64:
		one = float64(1)
	default:
		one = float32(1)
	}

	tSquared := backend.Mul(t, t)
	oneMinusT2 := backend.AddScalar(negateScalarFor(tSquared, backend), one)
	grad := backend.Mul(outputGrad, oneMinusT2)

	return []*tensor.RawTensor{grad}
}

// Inputs returns the input tensors [x].
func (op *TanhOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor tanh(x).
func (op *TanhOp) Output() *tensor.RawTensor {
	return op.output
}
