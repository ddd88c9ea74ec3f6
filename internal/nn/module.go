// Package nn provides neural network building blocks: layers, activations
// and containers composed through the Module interface.
package nn

import "github.com/verge-ml/verge/internal/tensor"

// Module is the interface implemented by all network components.
type Module[T tensor.DType, B tensor.Backend] interface {
	// Forward computes the module's output for the given input.
	Forward(x *tensor.Tensor[T, B]) *tensor.Tensor[T, B]

	// Parameters returns all learnable parameters of the module,
	// including those of nested modules.
	Parameters() []*Parameter[T, B]
}
