package nn

import (
	"golang.org/x/exp/rand"

	"github.com/born-ml/linreg/internal/tensor"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W.T + b
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias vector with shape [out_features]
//   - y is the output tensor with shape [batch_size, out_features]
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	layer := nn.NewLinear(1, 1, backend)
//	output := layer.Forward(input) // [N, 1] -> [N, 1]
type Linear[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[B] // [out_features, in_features]
	bias        *Parameter[B] // [out_features]
}

// LinearOption configures a Linear layer.
type LinearOption func(*linearOptions)

type linearOptions struct {
	zeroInit bool
	rng      *rand.Rand
}

// WithZeroInit starts the weight at zero instead of Xavier-uniform values.
func WithZeroInit() LinearOption {
	return func(o *linearOptions) { o.zeroInit = true }
}

// WithRand draws Xavier initial weights from rng.
func WithRand(rng *rand.Rand) LinearOption {
	return func(o *linearOptions) { o.rng = rng }
}

// NewLinear creates a new Linear layer.
//
// By default weights use Xavier/Glorot uniform initialization and biases
// start at zero.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B, opts ...LinearOption) *Linear[B] {
	var o linearOptions
	for _, opt := range opts {
		opt(&o)
	}

	weightShape := tensor.Shape{outFeatures, inFeatures}
	var weightTensor *tensor.Tensor[float32, B]
	if o.zeroInit {
		weightTensor = Zeros(weightShape, backend)
	} else {
		weightTensor = Xavier(inFeatures, outFeatures, weightShape, backend, o.rng)
	}

	return &Linear[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", weightTensor),
		bias:        NewParameter("bias", Zeros(tensor.Shape{outFeatures}, backend)),
	}
}

// Forward computes the output of the linear layer.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
//
// Panics with a *tensor.ShapeError if the input is not 2D or its trailing
// dimension is not in_features.
func (l *Linear[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	inputShape := input.Shape()
	if len(inputShape) != 2 {
		panic(tensor.NewShapeError("linear", []tensor.Shape{inputShape},
			"expected 2D input [batch, features]"))
	}
	if inputShape[1] != l.inFeatures {
		panic(tensor.NewShapeError("linear", []tensor.Shape{inputShape, l.weight.Tensor().Shape()},
			"expected %d input features, got %d", l.inFeatures, inputShape[1]))
	}

	// [batch, in] @ [in, out] = [batch, out]
	output := input.MatMul(l.weight.Tensor().T())

	// [out] -> [1, out] so it broadcasts across the batch
	return output.Add(l.bias.Tensor().Reshape(1, l.outFeatures))
}

// Parameters returns [weight, bias].
func (l *Linear[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear[B]) Weight() *Parameter[B] {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear[B]) Bias() *Parameter[B] {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear[B]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear[B]) OutFeatures() int {
	return l.outFeatures
}
