package nn

import "github.com/verge-ml/verge/internal/tensor"

// Parameter is a named tensor owned by a module. A frozen parameter keeps
// its values fixed: optimizers and other update rules must skip it.
type Parameter[T tensor.DType, B tensor.Backend] struct {
	name   string
	value  *tensor.Tensor[T, B]
	frozen bool
}

// NewParameter creates a parameter wrapping the given tensor.
func NewParameter[T tensor.DType, B tensor.Backend](name string, value *tensor.Tensor[T, B]) *Parameter[T, B] {
	return &Parameter[T, B]{
		name:  name,
		value: value,
	}
}

// Name returns the parameter's name.
func (p *Parameter[T, B]) Name() string {
	return p.name
}

// Tensor returns the parameter's value tensor.
func (p *Parameter[T, B]) Tensor() *tensor.Tensor[T, B] {
	return p.value
}

// Freeze marks the parameter as non-trainable.
func (p *Parameter[T, B]) Freeze() {
	p.frozen = true
}

// Unfreeze marks the parameter as trainable again.
func (p *Parameter[T, B]) Unfreeze() {
	p.frozen = false
}

// Frozen reports whether the parameter is non-trainable.
func (p *Parameter[T, B]) Frozen() bool {
	return p.frozen
}
