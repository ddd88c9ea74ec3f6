package cpu

import "github.com/verge-ml/verge/internal/tensor"

// broadcastIndexer maps flat indices of a broadcasted output tensor back to
// flat indices of a source operand, following NumPy's right-aligned rules.
type broadcastIndexer struct {
	outStrides []int
	srcStrides []int // stride 0 for broadcast (size-1 or missing) dimensions
}

func newBroadcastIndexer(srcShape, outShape tensor.Shape) broadcastIndexer {
	outStrides := outShape.ComputeStrides()
	srcNative := srcShape.ComputeStrides()

	srcStrides := make([]int, len(outShape))
	offset := len(outShape) - len(srcShape)
	for d := range outShape {
		srcDim := d - offset
		if srcDim < 0 || srcShape[srcDim] == 1 {
			srcStrides[d] = 0
			continue
		}
		srcStrides[d] = srcNative[srcDim]
	}

	return broadcastIndexer{outStrides: outStrides, srcStrides: srcStrides}
}

// source returns the source flat index for output flat index i.
func (bi broadcastIndexer) source(i int) int {
	src := 0
	rem := i
	for d := range bi.outStrides {
		coord := rem / bi.outStrides[d]
		rem %= bi.outStrides[d]
		src += coord * bi.srcStrides[d]
	}
	return src
}
