package nn

import "github.com/verge-ml/verge/internal/tensor"

// Sequential chains modules, feeding each module's output into the next.
type Sequential[T tensor.DType, B tensor.Backend] struct {
	modules []Module[T, B]
}

// NewSequential creates a sequential container from the given modules.
func NewSequential[T tensor.DType, B tensor.Backend](modules ...Module[T, B]) *Sequential[T, B] {
	return &Sequential[T, B]{modules: modules}
}

// Forward runs the input through each module in order.
func (s *Sequential[T, B]) Forward(x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	out := x
	for _, m := range s.modules {
		out = m.Forward(out)
	}
	return out
}

// Parameters returns the parameters of all contained modules.
func (s *Sequential[T, B]) Parameters() []*Parameter[T, B] {
	var params []*Parameter[T, B]
	for _, m := range s.modules {
		params = append(params, m.Parameters()...)
	}
	return params
}

// Modules returns the contained modules in order.
func (s *Sequential[T, B]) Modules() []Module[T, B] {
	return s.modules
}
