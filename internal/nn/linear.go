package nn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/verge-ml/verge/internal/tensor"
)

// Linear is a fully connected layer computing y = x @ Wᵀ + b.
//
// The weight has shape [outFeatures, inFeatures] and the bias has shape
// [outFeatures], broadcasting across the batch dimension.
type Linear[T tensor.DType, B tensor.Backend] struct {
	weight *Parameter[T, B]
	bias   *Parameter[T, B]

	inFeatures  int
	outFeatures int
}

// NewLinear creates a linear layer with Xavier-uniform initialized weights
// and zero bias. The rng makes initialization reproducible.
func NewLinear[T tensor.DType, B tensor.Backend](inFeatures, outFeatures int, rng *rand.Rand, backend B) *Linear[T, B] {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("linear: feature counts must be positive, got in=%d out=%d", inFeatures, outFeatures))
	}

	weight := tensor.Zeros[T](tensor.Shape{outFeatures, inFeatures}, backend)
	limit := math.Sqrt(6.0 / float64(inFeatures+outFeatures))
	data := weight.Data()
	for i := range data {
		data[i] = T((rng.Float64()*2 - 1) * limit)
	}

	bias := tensor.Zeros[T](tensor.Shape{outFeatures}, backend)

	return &Linear[T, B]{
		weight:      NewParameter("weight", weight),
		bias:        NewParameter("bias", bias),
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
	}
}

// Forward computes x @ Wᵀ + b for a batch x of shape [batch, inFeatures].
func (l *Linear[T, B]) Forward(x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return x.MatMul(l.weight.Tensor().T()).Add(l.bias.Tensor())
}

// Parameters returns the layer's weight and bias.
func (l *Linear[T, B]) Parameters() []*Parameter[T, B] {
	return []*Parameter[T, B]{l.weight, l.bias}
}

// Weight returns the weight parameter, shape [outFeatures, inFeatures].
func (l *Linear[T, B]) Weight() *Parameter[T, B] {
	return l.weight
}

// Bias returns the bias parameter, shape [outFeatures].
func (l *Linear[T, B]) Bias() *Parameter[T, B] {
	return l.bias
}

// InFeatures returns the expected input width.
func (l *Linear[T, B]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output width.
func (l *Linear[T, B]) OutFeatures() int {
	return l.outFeatures
}
