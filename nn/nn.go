// Copyright 2026 Verge ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks: layers, activations
// and containers composed through the Module interface.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	model := nn.NewSequential[float32, *autodiff.Backend[*cpu.Backend]](
//	    nn.NewLinear[float32](2, 8, rng, backend),
//	    nn.NewTanh[float32, *autodiff.Backend[*cpu.Backend]](),
//	    nn.NewLinear[float32](8, 2, rng, backend),
//	    nn.NewSoftmax[float32, *autodiff.Backend[*cpu.Backend]](),
//	)
package nn

import (
	"math/rand"

	"github.com/verge-ml/verge/internal/nn"
	"github.com/verge-ml/verge/internal/tensor"
)

// Module is the interface implemented by all network components.
type Module[T tensor.DType, B tensor.Backend] = nn.Module[T, B]

// Parameter is a named tensor owned by a module. Freeze marks it
// non-trainable.
type Parameter[T tensor.DType, B tensor.Backend] = nn.Parameter[T, B]

// NewParameter creates a parameter wrapping the given tensor.
func NewParameter[T tensor.DType, B tensor.Backend](name string, value *tensor.Tensor[T, B]) *Parameter[T, B] {
	return nn.NewParameter(name, value)
}

// Linear is a fully connected layer computing y = x @ Wᵀ + b.
type Linear[T tensor.DType, B tensor.Backend] = nn.Linear[T, B]

// NewLinear creates a linear layer with Xavier-uniform initialized weights
// and zero bias.
func NewLinear[T tensor.DType, B tensor.Backend](inFeatures, outFeatures int, rng *rand.Rand, backend B) *Linear[T, B] {
	return nn.NewLinear[T, B](inFeatures, outFeatures, rng, backend)
}

// ReLU applies max(0, x) element-wise.
type ReLU[T tensor.DType, B tensor.Backend] = nn.ReLU[T, B]

// NewReLU creates a ReLU activation module.
func NewReLU[T tensor.DType, B tensor.Backend]() *ReLU[T, B] {
	return nn.NewReLU[T, B]()
}

// Sigmoid applies the logistic function element-wise.
type Sigmoid[T tensor.DType, B tensor.Backend] = nn.Sigmoid[T, B]

// NewSigmoid creates a Sigmoid activation module.
func NewSigmoid[T tensor.DType, B tensor.Backend]() *Sigmoid[T, B] {
	return nn.NewSigmoid[T, B]()
}

// Tanh applies the hyperbolic tangent element-wise.
type Tanh[T tensor.DType, B tensor.Backend] = nn.Tanh[T, B]

// NewTanh creates a Tanh activation module.
func NewTanh[T tensor.DType, B tensor.Backend]() *Tanh[T, B] {
	return nn.NewTanh[T, B]()
}

// Softmax normalizes each row into a probability distribution.
type Softmax[T tensor.DType, B tensor.Backend] = nn.Softmax[T, B]

// NewSoftmax creates a Softmax module.
func NewSoftmax[T tensor.DType, B tensor.Backend]() *Softmax[T, B] {
	return nn.NewSoftmax[T, B]()
}

// Sequential chains modules, feeding each module's output into the next.
type Sequential[T tensor.DType, B tensor.Backend] = nn.Sequential[T, B]

// NewSequential creates a sequential container from the given modules.
func NewSequential[T tensor.DType, B tensor.Backend](modules ...Module[T, B]) *Sequential[T, B] {
	return nn.NewSequential[T, B](modules...)
}
