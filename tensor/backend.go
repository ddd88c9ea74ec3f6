// Copyright 2026 Verge ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/verge-ml/verge/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: pure Go with gonum BLAS matrix kernels
//
// Decorator backends for additional functionality:
//   - autodiff: reverse-mode automatic differentiation (wraps any backend)
type Backend = tensor.Backend

// ActivationBackend is implemented by backends that provide element-wise
// activation kernels (ReLU, Sigmoid, Tanh) beyond the core Backend
// interface.
type ActivationBackend = tensor.ActivationBackend
