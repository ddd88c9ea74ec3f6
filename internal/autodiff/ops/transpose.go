package ops

import "github.com/verge-ml/verge/internal/tensor"

// TransposeOp represents a dimension permutation: output = transpose(x, axes).
//
// Transpose creates a new tensor, so it must be recorded: without it,
// gradients computed for the transposed view would never reach the original
// tensor (classically, a Linear layer's weight behind Wᵀ).
//
// Backward: apply the inverse permutation to the output gradient.
type TransposeOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor   // transpose(x, axes)
	axes   []int
}

// NewTransposeOp creates a new TransposeOp.
func NewTransposeOp(x, output *tensor.RawTensor, axes []int) *TransposeOp {
	return &TransposeOp{
		inputs: []*tensor.RawTensor{x},
		output: output,
		axes:   axes,
	}
}

// Backward computes the input gradient by inverting the permutation.
func (op *TransposeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inverse := make([]int, len(op.axes))
	for i, ax := range op.axes {
		inverse[ax] = i
	}
	return []*tensor.RawTensor{backend.Transpose(outputGrad, inverse...)}
}

// Inputs returns the input tensors [x].
func (op *TransposeOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the transposed output tensor.
func (op *TransposeOp) Output() *tensor.RawTensor {
	return op.output
}
