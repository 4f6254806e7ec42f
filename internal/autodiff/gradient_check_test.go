package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/linreg/internal/autodiff"
	"github.com/born-ml/linreg/internal/backend/cpu"
	"github.com/born-ml/linreg/internal/tensor"
)

// mseLinear evaluates mean((x*w + b - y)^2) in plain Go.
func mseLinear(xs, ys []float64, w, b float64) float64 {
	var sum float64
	for i := range xs {
		d := xs[i]*w + b - ys[i]
		sum += d * d
	}
	return sum / float64(len(xs))
}

// numericalGradient computes the gradient using central differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

func TestNumericalGradient_LinearMSE(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{1.5, 2.7, 5.4, 7.1, 8.6}
	const w0, b0 = 0.5, -0.3

	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x, err := tensor.FromSlice(xs, tensor.Shape{5, 1}, backend)
	require.NoError(t, err)
	y, err := tensor.FromSlice(ys, tensor.Shape{5, 1}, backend)
	require.NoError(t, err)
	w, err := tensor.FromSlice([]float64{w0}, tensor.Shape{1, 1}, backend)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float64{b0}, tensor.Shape{1}, backend)
	require.NoError(t, err)

	// Same graph as a Linear layer followed by an MSE loss.
	pred := x.MatMul(w.T()).Add(b.Reshape(1, 1))
	diff := pred.Sub(y)
	loss := diff.Mul(diff).Mean()

	assert.InDelta(t, mseLinear(xs, ys, w0, b0), loss.Item(), 1e-12)

	grads := autodiff.Backward(loss, backend)
	require.Contains(t, grads, w.Raw())
	require.Contains(t, grads, b.Raw())

	const eps = 1e-6
	wantW := numericalGradient(func(v float64) float64 { return mseLinear(xs, ys, v, b0) }, w0, eps)
	wantB := numericalGradient(func(v float64) float64 { return mseLinear(xs, ys, w0, v) }, b0, eps)

	assert.Equal(t, tensor.Shape{1, 1}, grads[w.Raw()].Shape())
	assert.Equal(t, tensor.Shape{1}, grads[b.Raw()].Shape())
	assert.InDelta(t, wantW, grads[w.Raw()].AsFloat64()[0], 1e-5)
	assert.InDelta(t, wantB, grads[b.Raw()].AsFloat64()[0], 1e-5)
}

func TestNumericalGradient_Float32Square(t *testing.T) {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	x, err := tensor.FromSlice([]float32{3}, tensor.Shape{1}, backend)
	require.NoError(t, err)

	grads := autodiff.Backward(x.Mul(x).Sum(), backend)

	f := func(v float64) float64 { return v * v }
	assert.InDelta(t, numericalGradient(f, 3, 1e-4), float64(grads[x.Raw()].AsFloat32()[0]), 1e-3)
}
