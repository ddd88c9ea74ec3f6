package preprocess

import (
	"github.com/pkg/errors"

	"github.com/verge-ml/verge/internal/tensor"
)

// Pipeline chains transformers, fitting and applying them in order. Each
// stage is fitted on the output of the previous stage's transform.
type Pipeline[B tensor.Backend] struct {
	stages []Transformer[B]
}

// NewPipeline creates a pipeline from the given stages.
func NewPipeline[B tensor.Backend](stages ...Transformer[B]) *Pipeline[B] {
	return &Pipeline[B]{stages: stages}
}

// Fit fits every stage in order, transforming the batch between stages.
func (p *Pipeline[B]) Fit(x *tensor.Tensor[float32, B]) error {
	current := x
	for i, stage := range p.stages {
		if err := stage.Fit(current); err != nil {
			return errors.Wrapf(err, "pipeline stage %d", i)
		}
		if i == len(p.stages)-1 {
			break
		}
		next, err := stage.Transform(current)
		if err != nil {
			return errors.Wrapf(err, "pipeline stage %d", i)
		}
		current = next
	}
	return nil
}

// Transform applies every fitted stage in order.
func (p *Pipeline[B]) Transform(x *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error) {
	current := x
	for i, stage := range p.stages {
		next, err := stage.Transform(current)
		if err != nil {
			return nil, errors.Wrapf(err, "pipeline stage %d", i)
		}
		current = next
	}
	return current, nil
}
