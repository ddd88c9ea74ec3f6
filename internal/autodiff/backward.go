package autodiff

import "github.com/verge-ml/verge/internal/tensor"

// TapeBackend is implemented by backends that record operations on a
// gradient tape. Code that needs gradients probes a generic backend for
// this interface instead of depending on the concrete decorator type.
type TapeBackend interface {
	tensor.Backend

	// Tape returns the gradient tape recording this backend's operations.
	Tape() *GradientTape

	// InnerBackend returns the wrapped, non-recording backend.
	InnerBackend() tensor.Backend
}

// Backward computes gradients of root with respect to every tensor the
// tape recorded, using the non-recording inner backend for the sweep.
func Backward(root *tensor.RawTensor, backend TapeBackend) map[*tensor.RawTensor]*tensor.RawTensor {
	return backend.Tape().Backward(root, backend.InnerBackend())
}
