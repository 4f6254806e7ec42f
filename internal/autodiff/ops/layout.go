package ops

import "github.com/born-ml/linreg/internal/tensor"

// ReshapeOp records a reshape so that gradients reach the original layout,
// e.g. a [out] bias reshaped to [1, out] for broadcasting.
type ReshapeOp struct {
	unaryOp
	origShape tensor.Shape
}

// NewReshapeOp creates a new ReshapeOp.
func NewReshapeOp(input, output *tensor.RawTensor) *ReshapeOp {
	return &ReshapeOp{
		unaryOp:   unaryOp{input: input, output: output},
		origShape: input.Shape().Clone(),
	}
}

// Backward reshapes the output gradient back to the input shape.
func (op *ReshapeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Reshape(outputGrad, op.origShape)}
}

// TransposeOp records a transpose.
//
// The backend materializes a new tensor for the transposed layout, so the
// op must be on the tape for a transposed weight to receive its gradient.
type TransposeOp struct {
	unaryOp
	axes []int // Axes used for the forward transpose
}

// NewTransposeOp creates a new TransposeOp.
func NewTransposeOp(input, output *tensor.RawTensor, axes []int) *TransposeOp {
	return &TransposeOp{
		unaryOp: unaryOp{input: input, output: output},
		axes:    append([]int(nil), axes...),
	}
}

// Backward transposes the output gradient with the inverse permutation.
func (op *TransposeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inverseAxes := make([]int, len(op.axes))
	for i, ax := range op.axes {
		inverseAxes[ax] = i
	}
	return []*tensor.RawTensor{backend.Transpose(outputGrad, inverseAxes...)}
}
