// Package model defines the one-input one-output linear regression model.
package model

import (
	"fmt"

	"github.com/born-ml/linreg/internal/nn"
	"github.com/born-ml/linreg/internal/tensor"
)

// Regression fits y = w*x + b with a single Linear(1, 1) layer.
//
// Both parameters start at zero so that training runs are reproducible
// from the data seed alone.
type Regression[B tensor.Backend] struct {
	linear  *nn.Linear[B]
	backend B
}

// NewRegression creates a zero-initialized regression model on backend.
func NewRegression[B tensor.Backend](backend B) *Regression[B] {
	return &Regression[B]{
		linear:  nn.NewLinear(1, 1, backend, nn.WithZeroInit()),
		backend: backend,
	}
}

// Forward maps inputs of shape [N, 1] to predictions of shape [N, 1].
//
// Panics with a *tensor.ShapeError for any other input shape.
func (r *Regression[B]) Forward(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return r.linear.Forward(x)
}

// Parameters returns [weight, bias].
func (r *Regression[B]) Parameters() []*nn.Parameter[B] {
	return r.linear.Parameters()
}

// Weight returns the current slope.
func (r *Regression[B]) Weight() float32 {
	return r.linear.Weight().Tensor().Data()[0]
}

// Bias returns the current intercept.
func (r *Regression[B]) Bias() float32 {
	return r.linear.Bias().Tensor().Data()[0]
}

// Predict evaluates the model on xs.
//
// Callers on an autodiff backend should stop tape recording first, or the
// evaluation is recorded like any other forward pass.
func (r *Regression[B]) Predict(xs []float32) ([]float32, error) {
	if len(xs) == 0 {
		return nil, nil
	}
	x, err := tensor.FromSlice(append([]float32(nil), xs...), tensor.Shape{len(xs), 1}, r.backend)
	if err != nil {
		return nil, fmt.Errorf("model: predict: %w", err)
	}
	return r.Forward(x).Data(), nil
}

// String describes the fitted line.
func (r *Regression[B]) String() string {
	return fmt.Sprintf("y = %.4f*x + %.4f", r.Weight(), r.Bias())
}
