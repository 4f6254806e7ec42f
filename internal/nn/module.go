// Package nn implements the neural network building blocks used by the
// regression model.
//
//   - Module interface: Forward plus Parameters
//   - Parameter: trainable tensor with an attached gradient
//   - Linear: fully connected layer
//   - MSELoss: mean squared error recorded on the autodiff tape
package nn

import (
	"github.com/born-ml/linreg/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	// Linear expects [batch_size, in_features].
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all trainable parameters of this module.
	Parameters() []*Parameter[B]
}
