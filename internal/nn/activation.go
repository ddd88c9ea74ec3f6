package nn

import (
	"fmt"

	"github.com/verge-ml/verge/internal/tensor"
)

// ReLU applies max(0, x) element-wise.
type ReLU[T tensor.DType, B tensor.Backend] struct{}

// NewReLU creates a ReLU activation module.
func NewReLU[T tensor.DType, B tensor.Backend]() *ReLU[T, B] {
	return &ReLU[T, B]{}
}

// Forward applies the activation.
func (r *ReLU[T, B]) Forward(x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return applyActivation(x, "relu", tensor.ActivationBackend.ReLU)
}

// Parameters returns nil; activations have no parameters.
func (r *ReLU[T, B]) Parameters() []*Parameter[T, B] {
	return nil
}

// Sigmoid applies the logistic function element-wise.
type Sigmoid[T tensor.DType, B tensor.Backend] struct{}

// NewSigmoid creates a Sigmoid activation module.
func NewSigmoid[T tensor.DType, B tensor.Backend]() *Sigmoid[T, B] {
	return &Sigmoid[T, B]{}
}

// Forward applies the activation.
func (s *Sigmoid[T, B]) Forward(x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return applyActivation(x, "sigmoid", tensor.ActivationBackend.Sigmoid)
}

// Parameters returns nil; activations have no parameters.
func (s *Sigmoid[T, B]) Parameters() []*Parameter[T, B] {
	return nil
}

// Tanh applies the hyperbolic tangent element-wise.
type Tanh[T tensor.DType, B tensor.Backend] struct{}

// NewTanh creates a Tanh activation module.
func NewTanh[T tensor.DType, B tensor.Backend]() *Tanh[T, B] {
	return &Tanh[T, B]{}
}

// Forward applies the activation.
func (t *Tanh[T, B]) Forward(x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return applyActivation(x, "tanh", tensor.ActivationBackend.Tanh)
}

// Parameters returns nil; activations have no parameters.
func (t *Tanh[T, B]) Parameters() []*Parameter[T, B] {
	return nil
}

// applyActivation probes the tensor's backend for activation kernels and
// applies the given one.
func applyActivation[T tensor.DType, B tensor.Backend](
	x *tensor.Tensor[T, B],
	name string,
	f func(tensor.ActivationBackend, *tensor.RawTensor) *tensor.RawTensor,
) *tensor.Tensor[T, B] {
	backend := x.Backend()
	act, ok := any(backend).(tensor.ActivationBackend)
	if !ok {
		panic(fmt.Sprintf("nn: backend %s does not implement %s", backend.Name(), name))
	}
	return tensor.New[T](f(act, x.Raw()), backend)
}
