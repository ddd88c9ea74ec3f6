package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](tensor.Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, T(1), b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](tensor.Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
// Note: uses math/rand (not crypto/rand) - appropriate for statistical work
// and reproducible runs.
func Rand[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = T(rng.Float64()) //nolint:gosec // G404: statistical sampling, reproducibility wanted
	}
	return t
}

// Randn creates a tensor with random values from a standard normal
// distribution using the Box-Muller transform.
func Randn[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := 0; i < len(data); i += 2 {
		u1 := rng.Float64() //nolint:gosec // G404: statistical sampling, reproducibility wanted
		u2 := rng.Float64() //nolint:gosec // G404: statistical sampling, reproducibility wanted
		r := math.Sqrt(-2.0 * math.Log(u1))
		data[i] = T(r * math.Cos(2.0*math.Pi*u2))
		if i+1 < len(data) {
			data[i+1] = T(r * math.Sin(2.0*math.Pi*u2))
		}
	}
	return t
}
