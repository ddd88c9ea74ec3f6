package tensor

// ActivationBackend is implemented by backends that provide element-wise
// activation kernels beyond the core Backend interface. Neural network
// layers probe for it with a type assertion.
type ActivationBackend interface {
	ReLU(x *RawTensor) *RawTensor
	Sigmoid(x *RawTensor) *RawTensor
	Tanh(x *RawTensor) *RawTensor
}
