package autodiff_test

import (
	"math"
	"testing"

	"github.com/verge-ml/verge/internal/autodiff"
	"github.com/verge-ml/verge/internal/backend/cpu"
	"github.com/verge-ml/verge/internal/tensor"
)

func TestBackend_Name(t *testing.T) {
	backend := autodiff.New(cpu.New())
	if backend.Name() != "Autodiff(CPU)" {
		t.Errorf("Name() = %s, want Autodiff(CPU)", backend.Name())
	}
}

func TestBackend_Device(t *testing.T) {
	backend := autodiff.New(cpu.New())
	if backend.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want %v", backend.Device(), tensor.CPU)
	}
}

func TestTape_Recording(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	if tape.IsRecording() {
		t.Error("tape should not be recording initially")
	}

	tape.Start()
	if !tape.IsRecording() {
		t.Error("tape should be recording after Start()")
	}

	tape.Stop()
	if tape.IsRecording() {
		t.Error("tape should not be recording after Stop()")
	}
}

func TestTape_RecordAndClear(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	a, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	b, _ := tensor.FromSlice([]float32{3, 4}, tensor.Shape{2}, backend)

	// Not recording: nothing lands on the tape.
	backend.Add(a.Raw(), b.Raw())
	if tape.NumOperations() != 0 {
		t.Errorf("NumOperations() = %d before Start()", tape.NumOperations())
	}

	tape.Start()
	backend.Add(a.Raw(), b.Raw())
	backend.Mul(a.Raw(), b.Raw())
	if tape.NumOperations() != 2 {
		t.Errorf("NumOperations() = %d, want 2", tape.NumOperations())
	}

	tape.Clear()
	if tape.NumOperations() != 0 || tape.IsRecording() {
		t.Error("Clear() should drop operations and stop recording")
	}
}

// TestBackward_Square checks d(Σx²)/dx = 2x.
func TestBackward_Square(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	tape.Start()
	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{1, 3}, backend)
	y := x.Mul(x).Sum()
	tape.Stop()

	grads := autodiff.Backward(y.Raw(), backend)

	grad, ok := grads[x.Raw()]
	if !ok {
		t.Fatal("no gradient recorded for x")
	}
	want := []float32{2, 4, 6}
	for i, g := range grad.AsFloat32() {
		if math.Abs(float64(g-want[i])) > 1e-5 {
			t.Errorf("grad[%d] = %f, want %f", i, g, want[i])
		}
	}
}

// TestBackward_MatMul checks the matrix product gradients against the
// closed form grad_a = g @ bᵀ, grad_b = aᵀ @ g with g = ones.
func TestBackward_MatMul(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	tape.Start()
	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	b, _ := tensor.FromSlice([]float32{5, 6, 7, 8}, tensor.Shape{2, 2}, backend)
	y := a.MatMul(b).Sum()
	tape.Stop()

	grads := autodiff.Backward(y.Raw(), backend)

	gradA := grads[a.Raw()].AsFloat32()
	gradB := grads[b.Raw()].AsFloat32()

	wantA := []float32{11, 15, 11, 15} // row sums of b
	wantB := []float32{4, 4, 6, 6}     // column sums of a
	for i := range wantA {
		if math.Abs(float64(gradA[i]-wantA[i])) > 1e-5 {
			t.Errorf("gradA[%d] = %f, want %f", i, gradA[i], wantA[i])
		}
		if math.Abs(float64(gradB[i]-wantB[i])) > 1e-5 {
			t.Errorf("gradB[%d] = %f, want %f", i, gradB[i], wantB[i])
		}
	}
}

// TestBackward_BroadcastAdd checks that a broadcast bias gradient is
// reduced back to the bias shape.
func TestBackward_BroadcastAdd(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	tape.Start()
	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	bias, _ := tensor.FromSlice([]float32{10, 20, 30}, tensor.Shape{3}, backend)
	y := x.Add(bias).Sum()
	tape.Stop()

	grads := autodiff.Backward(y.Raw(), backend)

	gradBias := grads[bias.Raw()]
	if !gradBias.Shape().Equal(tensor.Shape{3}) {
		t.Fatalf("bias gradient shape = %v, want [3]", gradBias.Shape())
	}
	for i, g := range gradBias.AsFloat32() {
		if g != 2 { // two rows contribute
			t.Errorf("gradBias[%d] = %f, want 2", i, g)
		}
	}
}

// TestBackward_Unreached checks that tensors with no path to the root get
// no gradient entry.
func TestBackward_Unreached(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	tape.Start()
	x, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	unrelated, _ := tensor.FromSlice([]float32{3, 4}, tensor.Shape{2}, backend)
	y := x.Mul(x).Sum()
	tape.Stop()

	grads := autodiff.Backward(y.Raw(), backend)

	if _, ok := grads[unrelated.Raw()]; ok {
		t.Error("unrelated tensor should have no gradient")
	}
}

// TestBackward_SumDim checks gradient expansion through a reduction.
func TestBackward_SumDim(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	tape.Start()
	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	y := x.SumDim(1, false).Sum()
	tape.Stop()

	grads := autodiff.Backward(y.Raw(), backend)

	grad := grads[x.Raw()]
	if !grad.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("gradient shape = %v, want [2 3]", grad.Shape())
	}
	for i, g := range grad.AsFloat32() {
		if g != 1 {
			t.Errorf("grad[%d] = %f, want 1", i, g)
		}
	}
}

// TestBackward_ScalarOps checks pass-through and scaled gradients.
func TestBackward_ScalarOps(t *testing.T) {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	tape.Start()
	x, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	y := x.MulScalar(3).SubScalar(1).Sum() // dy/dx = 3
	tape.Stop()

	grads := autodiff.Backward(y.Raw(), backend)

	for i, g := range grads[x.Raw()].AsFloat32() {
		if g != 3 {
			t.Errorf("grad[%d] = %f, want 3", i, g)
		}
	}
}
