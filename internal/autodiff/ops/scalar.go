package ops

import "github.com/verge-ml/verge/internal/tensor"

// scalarKind selects the backward rule for a scalar operation.
type scalarKind int

const (
	scalarAdd scalarKind = iota // output = x + s, grad_x = grad
	scalarSub                   // output = x - s, grad_x = grad
	scalarMul                   // output = x * s, grad_x = grad * s
	scalarDiv                   // output = x / s, grad_x = grad / s
)

// ScalarOp represents an element-wise operation between a tensor and a
// scalar constant. The scalar is a constant, so only the tensor input
// receives a gradient.
type ScalarOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
	scalar any
	kind   scalarKind
}

// NewAddScalarOp records output = x + scalar.
func NewAddScalarOp(x, output *tensor.RawTensor, scalar any) *ScalarOp {
	return &ScalarOp{inputs: []*tensor.RawTensor{x}, output: output, scalar: scalar, kind: scalarAdd}
}

// NewSubScalarOp records output = x - scalar.
func NewSubScalarOp(x, output *tensor.RawTensor, scalar any) *ScalarOp {
	return &ScalarOp{inputs: []*tensor.RawTensor{x}, output: output, scalar: scalar, kind: scalarSub}
}

// NewMulScalarOp records output = x * scalar.
func NewMulScalarOp(x, output *tensor.RawTensor, scalar any) *ScalarOp {
	return &ScalarOp{inputs: []*tensor.RawTensor{x}, output: output, scalar: scalar, kind: scalarMul}
}

// NewDivScalarOp records output = x / scalar.
func NewDivScalarOp(x, output *tensor.RawTensor, scalar any) *ScalarOp {
	return &ScalarOp{inputs: []*tensor.RawTensor{x}, output: output, scalar: scalar, kind: scalarDiv}
}

// Backward computes the input gradient for the scalar operation.
func (op *ScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	switch op.kind {
	case scalarAdd, scalarSub:
		return []*tensor.RawTensor{outputGrad.Clone()}
	case scalarMul:
		return []*tensor.RawTensor{backend.MulScalar(outputGrad, op.scalar)}
	case scalarDiv:
		return []*tensor.RawTensor{backend.DivScalar(outputGrad, op.scalar)}
	default:
		panic("ScalarOp: unknown kind")
	}
}

// Inputs returns the input tensors [x].
func (op *ScalarOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor.
func (op *ScalarOp) Output() *tensor.RawTensor {
	return op.output
}
