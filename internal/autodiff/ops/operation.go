// Package ops defines operation records for reverse-mode automatic differentiation.
//
// Each operation captures its input and output tensors during the forward
// pass and knows how to turn the gradient of its output into gradients of
// its inputs during the backward pass.
package ops

import "github.com/verge-ml/verge/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns a slice of gradients corresponding to each input tensor.
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor
}
