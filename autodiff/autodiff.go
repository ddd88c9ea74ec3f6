// Copyright 2026 Verge ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// It wraps any backend with a gradient tape that records every operation
// of the forward pass. Backward then replays the tape in reverse and
// returns gradients with respect to every tensor that participated in the
// computation, inputs included.
//
// Example:
//
//	base := cpu.New()
//	backend := autodiff.New(base)
//
//	backend.Tape().Start()
//	x, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{1, 2}, backend)
//	y := x.Mul(x).Sum()
//	backend.Tape().Stop()
//
//	grads := autodiff.Backward(y.Raw(), backend)
//	dx := grads[x.Raw()] // 2x
package autodiff

import (
	"github.com/verge-ml/verge/internal/autodiff"
	"github.com/verge-ml/verge/internal/tensor"
)

// Backend is the autodiff-enabled backend decorator.
type Backend[B tensor.Backend] = autodiff.Backend[B]

// New wraps the given backend with a fresh gradient tape.
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// TapeBackend is implemented by backends that record operations on a
// gradient tape.
type TapeBackend = autodiff.TapeBackend

// Backward computes gradients of root with respect to every recorded
// tensor, keyed by tensor identity.
func Backward(root *tensor.RawTensor, backend TapeBackend) map[*tensor.RawTensor]*tensor.RawTensor {
	return autodiff.Backward(root, backend)
}
