// Copyright 2026 Verge ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure-Go CPU compute backend.
//
// Element-wise operations run through a bounded worker pool for large
// tensors; matrix multiplication dispatches to gonum's BLAS kernels.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
package cpu

import "github.com/verge-ml/verge/internal/backend/cpu"

// Backend is the CPU compute backend.
type Backend = cpu.CPUBackend

// New creates a new CPU backend.
func New() *Backend {
	return cpu.New()
}
