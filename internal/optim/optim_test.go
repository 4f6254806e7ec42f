package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/linreg/internal/autodiff"
	"github.com/born-ml/linreg/internal/backend/cpu"
	"github.com/born-ml/linreg/internal/nn"
	"github.com/born-ml/linreg/internal/optim"
	"github.com/born-ml/linreg/internal/tensor"
)

type testBackend = *autodiff.AutodiffBackend[*cpu.CPUBackend]

func newParam(t *testing.T, backend testBackend, values ...float32) *nn.Parameter[testBackend] {
	t.Helper()
	x, err := tensor.FromSlice(values, tensor.Shape{len(values)}, backend)
	require.NoError(t, err)
	return nn.NewParameter("x", x)
}

func gradFor(t *testing.T, param *nn.Parameter[testBackend], values ...float32) map[*tensor.RawTensor]*tensor.RawTensor {
	t.Helper()
	grad, err := tensor.NewRaw(param.Tensor().Shape(), tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	copy(grad.AsFloat32(), values)
	return map[*tensor.RawTensor]*tensor.RawTensor{param.Tensor().Raw(): grad}
}

func TestAdam_Defaults(t *testing.T) {
	backend := autodiff.New(cpu.New())
	optimizer := optim.NewAdam([]*nn.Parameter[testBackend]{newParam(t, backend, 1)}, optim.AdamConfig{}, backend)

	assert.InDelta(t, 0.001, optimizer.GetLR(), 1e-9)
	assert.Equal(t, 0, optimizer.GetTimestep())

	var _ optim.Optimizer = optimizer
}

func TestAdam_SimpleUpdate(t *testing.T) {
	backend := autodiff.New(cpu.New())
	param := newParam(t, backend, 1.0)

	optimizer := optim.NewAdam([]*nn.Parameter[testBackend]{param},
		optim.AdamConfig{
			LR:    0.001,
			Betas: [2]float32{0.9, 0.999},
			Eps:   1e-8,
		},
		backend,
	)

	optimizer.Step(gradFor(t, param, 1.0))

	// m_1 = 0.1, v_1 = 0.001
	// m_hat = 0.1 / (1 - 0.9) = 1.0, v_hat = 0.001 / (1 - 0.999) = 1.0
	// x_new = 1.0 - 0.001 * 1.0 / (1.0 + 1e-8) ≈ 0.999
	assert.InDelta(t, 0.999, param.Tensor().Data()[0], 1e-5)

	require.NotNil(t, param.Grad(), "Step should attach the applied gradient")
	assert.Equal(t, []float32{1.0}, param.Grad().Data())
}

func TestAdam_StepSizeIndependentOfGradientScale(t *testing.T) {
	backend := autodiff.New(cpu.New())
	small := newParam(t, backend, 0)
	large := newParam(t, backend, 0)

	a := optim.NewAdam([]*nn.Parameter[testBackend]{small}, optim.AdamConfig{LR: 0.01}, backend)
	b := optim.NewAdam([]*nn.Parameter[testBackend]{large}, optim.AdamConfig{LR: 0.01}, backend)

	a.Step(gradFor(t, small, 0.5))
	b.Step(gradFor(t, large, 5000))

	// The first bias-corrected step is lr * sign(grad).
	assert.InDelta(t, -0.01, small.Tensor().Data()[0], 1e-6)
	assert.InDelta(t, -0.01, large.Tensor().Data()[0], 1e-6)
}

func TestAdam_BiasCorrection(t *testing.T) {
	backend := autodiff.New(cpu.New())
	param := newParam(t, backend, 1.0)

	optimizer := optim.NewAdam([]*nn.Parameter[testBackend]{param}, optim.AdamConfig{LR: 0.01}, backend)
	grads := gradFor(t, param, 1.0)

	for i := 1; i <= 3; i++ {
		optimizer.Step(grads)
		assert.Equal(t, i, optimizer.GetTimestep())
	}

	// A constant gradient keeps m_hat / sqrt(v_hat) at 1, so each step moves lr.
	assert.InDelta(t, 0.97, param.Tensor().Data()[0], 1e-5)
}

func TestAdam_SkipsParametersWithoutGradient(t *testing.T) {
	backend := autodiff.New(cpu.New())
	used := newParam(t, backend, 1, 2)
	unused := newParam(t, backend, 3)

	optimizer := optim.NewAdam([]*nn.Parameter[testBackend]{used, unused}, optim.AdamConfig{LR: 0.1}, backend)
	optimizer.Step(gradFor(t, used, 1, -1))

	assert.InDeltaSlice(t, []float32{0.9, 2.1}, used.Tensor().Data(), 1e-5)
	assert.Equal(t, []float32{3}, unused.Tensor().Data())
	assert.Nil(t, unused.Grad())
}

func TestAdam_ZeroGrad(t *testing.T) {
	backend := autodiff.New(cpu.New())
	param := newParam(t, backend, 1.0)

	grad, err := tensor.FromSlice([]float32{5.0}, tensor.Shape{1}, backend)
	require.NoError(t, err)
	param.SetGrad(grad)

	optimizer := optim.NewAdam([]*nn.Parameter[testBackend]{param}, optim.AdamConfig{LR: 0.001}, backend)
	optimizer.ZeroGrad()

	assert.Nil(t, param.Grad())
}

func TestAdam_GetSetLR(t *testing.T) {
	backend := autodiff.New(cpu.New())
	optimizer := optim.NewAdam([]*nn.Parameter[testBackend]{newParam(t, backend, 1)}, optim.AdamConfig{LR: 0.01}, backend)

	assert.InDelta(t, 0.01, optimizer.GetLR(), 1e-9)
	optimizer.SetLR(0.001)
	assert.InDelta(t, 0.001, optimizer.GetLR(), 1e-9)
}

// TestConvergence_SimpleQuadratic minimizes f(x) = x² with gradients from the tape.
func TestConvergence_SimpleQuadratic(t *testing.T) {
	backend := autodiff.New(cpu.New())
	param := newParam(t, backend, 3.0)

	optimizer := optim.NewAdam([]*nn.Parameter[testBackend]{param}, optim.AdamConfig{LR: 0.1}, backend)

	for range 500 {
		backend.Tape().StartRecording()
		x := param.Tensor()
		loss := x.Mul(x).Sum()
		backend.Tape().StopRecording()

		optimizer.ZeroGrad()
		optimizer.Step(autodiff.Backward(loss, backend))
		backend.Tape().Clear()
	}

	assert.InDelta(t, 0, param.Tensor().Data()[0], 0.05)
}
