// Package optim implements the optimization algorithm used to train the
// regression model.
//
// Example usage:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.01}, backend)
//
//	for epoch := range epochs {
//	    backend.Tape().StartRecording()
//	    loss := mse.Forward(model.Forward(x), y)
//	    backend.Tape().StopRecording()
//
//	    optimizer.ZeroGrad()
//	    grads := autodiff.Backward(loss, backend)
//	    optimizer.Step(grads)
//	    backend.Tape().Clear()
//	}
package optim

import (
	"github.com/born-ml/linreg/internal/nn"
	"github.com/born-ml/linreg/internal/tensor"
)

// Optimizer is the base interface for optimization algorithms.
type Optimizer interface {
	// Step applies gradient updates to all parameters.
	//
	// Takes a gradient map from autodiff.Backward and updates parameters in place.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor)

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float32
}

// getGradient retrieves the gradient for a parameter.
//
// Returns nil if the parameter was not part of the computation graph.
func getGradient[B tensor.Backend](param *nn.Parameter[B], grads map[*tensor.RawTensor]*tensor.RawTensor) *tensor.RawTensor {
	if param == nil {
		return nil
	}
	return grads[param.Tensor().Raw()]
}
