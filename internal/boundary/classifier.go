package boundary

import "github.com/verge-ml/verge/internal/tensor"

// Classifier maps a batch of points, shape (N, d), to per-class
// probabilities, shape (N, C), each row on the probability simplex.
//
// Any nn.Module whose output layer is a softmax satisfies this interface.
// The classifier is treated as frozen: the calculator only ever reads
// gradients with respect to the input coordinates, never the parameters.
type Classifier[B tensor.Backend] interface {
	Forward(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]
}

// InputSized is optionally implemented by classifiers that know their input
// width. When available, the calculator uses it to reject seed batches of
// the wrong dimension at construction time.
type InputSized interface {
	InFeatures() int
}
