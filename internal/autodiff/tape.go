package autodiff

import (
	"github.com/verge-ml/verge/internal/autodiff/ops"
	"github.com/verge-ml/verge/internal/tensor"
)

// GradientTape records operations during the forward pass so gradients can
// be computed by replaying them in reverse.
//
// A tape is not safe for concurrent use.
type GradientTape struct {
	operations []ops.Operation
	recording  bool
}

// NewGradientTape creates a new gradient tape. The tape starts out not
// recording; call Start before the forward pass.
func NewGradientTape() *GradientTape {
	return &GradientTape{}
}

// Start begins recording operations.
func (t *GradientTape) Start() {
	t.recording = true
}

// Stop ends recording. Recorded operations are kept until Clear.
func (t *GradientTape) Stop() {
	t.recording = false
}

// IsRecording reports whether the tape is currently recording.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Record appends an operation to the tape. No-op unless recording.
func (t *GradientTape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear drops all recorded operations and stops recording.
func (t *GradientTape) Clear() {
	t.operations = t.operations[:0]
	t.recording = false
}

// NumOperations returns the number of recorded operations.
func (t *GradientTape) NumOperations() int {
	return len(t.operations)
}

// Backward runs reverse-mode differentiation seeded at root.
//
// The root's gradient is initialized to ones, then each recorded operation
// is replayed in reverse, accumulating gradients per tensor. The result
// maps every tensor reached in the sweep (identified by pointer) to its
// gradient with respect to root. Tensors not on a path to root are absent
// from the map.
//
// The backend must be a plain (non-recording) backend so the backward
// computations are not themselves taped.
func (t *GradientTape) Backward(root *tensor.RawTensor, backend tensor.Backend) map[*tensor.RawTensor]*tensor.RawTensor {
	grads := make(map[*tensor.RawTensor]*tensor.RawTensor)
	grads[root] = onesLike(root)

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]

		outputGrad, ok := grads[op.Output()]
		if !ok {
			continue
		}

		inputGrads := op.Backward(outputGrad, backend)
		for j, input := range op.Inputs() {
			if inputGrads[j] == nil {
				continue
			}
			if existing, ok := grads[input]; ok {
				grads[input] = backend.Add(existing, inputGrads[j])
			} else {
				grads[input] = inputGrads[j]
			}
		}
	}

	return grads
}

func onesLike(t *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(t.Shape(), t.DType(), t.Device())
	if err != nil {
		panic(err)
	}
	switch t.DType() {
	case tensor.Float32:
		data := result.AsFloat32()
		for i := range data {
			data[i] = 1
		}
	case tensor.Float64:
		data := result.AsFloat64()
		for i := range data {
			data[i] = 1
		}
	}
	return result
}
