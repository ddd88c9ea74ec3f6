package cpu

import (
	"math"

	"github.com/verge-ml/verge/internal/tensor"
)

// ReLU computes element-wise max(0, x).
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryOp("relu", x,
		func(v float32) float32 {
			if v > 0 {
				return v
			}
			return 0
		},
		func(v float64) float64 {
			if v > 0 {
				return v
			}
			return 0
		})
}

// Sigmoid computes element-wise 1 / (1 + exp(-x)).
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryOp("sigmoid", x,
		func(v float32) float32 { return float32(1 / (1 + math.Exp(-float64(v)))) },
		func(v float64) float64 { return 1 / (1 + math.Exp(-v)) })
}

// Tanh computes element-wise hyperbolic tangent.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryOp("tanh", x,
		func(v float32) float32 { return float32(math.Tanh(float64(v))) },
		func(v float64) float64 { return math.Tanh(v) })
}
