package ops

import "github.com/born-ml/linreg/internal/tensor"

// SumOp represents a full reduction: output = sum(x).
type SumOp struct {
	unaryOp
}

// NewSumOp creates a new SumOp.
func NewSumOp(input, output *tensor.RawTensor) *SumOp {
	return &SumOp{unaryOp{input: input, output: output}}
}

// Backward spreads the scalar gradient to every input element.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{spreadScalar(outputGrad, op.input.Shape(), 1)}
}

// MeanOp represents a full mean: output = sum(x) / n.
type MeanOp struct {
	unaryOp
}

// NewMeanOp creates a new MeanOp.
func NewMeanOp(input, output *tensor.RawTensor) *MeanOp {
	return &MeanOp{unaryOp{input: input, output: output}}
}

// Backward spreads grad / n to every input element.
func (op *MeanOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	n := float64(op.input.NumElements())
	return []*tensor.RawTensor{spreadScalar(outputGrad, op.input.Shape(), 1/n)}
}
