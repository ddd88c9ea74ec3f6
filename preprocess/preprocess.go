// Copyright 2026 Verge ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package preprocess provides dataset-level feature transforms that are
// fitted once and then applied to batches.
package preprocess

import (
	"github.com/verge-ml/verge/internal/preprocess"
	"github.com/verge-ml/verge/internal/tensor"
)

// Transformer is a fitted batch transform.
type Transformer[B tensor.Backend] = preprocess.Transformer[B]

// Normalizer standardizes features to zero mean and unit variance.
type Normalizer[B tensor.Backend] = preprocess.Normalizer[B]

// NewNormalizer creates an unfitted normalizer.
func NewNormalizer[B tensor.Backend]() *Normalizer[B] {
	return preprocess.NewNormalizer[B]()
}

// Pipeline chains transformers, fitting and applying them in order.
type Pipeline[B tensor.Backend] = preprocess.Pipeline[B]

// NewPipeline creates a pipeline from the given stages.
func NewPipeline[B tensor.Backend](stages ...Transformer[B]) *Pipeline[B] {
	return preprocess.NewPipeline[B](stages...)
}

// ErrNotFitted is returned by Transform when Fit has not been called.
var ErrNotFitted = preprocess.ErrNotFitted
