package nn

import "github.com/verge-ml/verge/internal/tensor"

// Softmax normalizes each row of a 2D input into a probability
// distribution over the last dimension.
type Softmax[T tensor.DType, B tensor.Backend] struct{}

// NewSoftmax creates a Softmax module.
func NewSoftmax[T tensor.DType, B tensor.Backend]() *Softmax[T, B] {
	return &Softmax[T, B]{}
}

// Forward applies row-wise softmax.
func (s *Softmax[T, B]) Forward(x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return x.Softmax()
}

// Parameters returns nil; softmax has no parameters.
func (s *Softmax[T, B]) Parameters() []*Parameter[T, B] {
	return nil
}
