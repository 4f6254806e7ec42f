package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataType(t *testing.T) {
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Float64.Size())
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "float64", Float64.String())
	assert.Equal(t, "unknown", DataType(42).String())
}

func TestFromSlice(t *testing.T) {
	x, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, mockBackend{})
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, x.Shape())
	assert.Equal(t, Float32, x.DType())
	assert.Equal(t, CPU, x.Device())
	assert.Equal(t, float32(6), x.Data()[5])
	assert.Equal(t, "Tensor[float32][2 3] on CPU", x.String())
}

func TestFromSlice_CopiesInput(t *testing.T) {
	src := []float64{1, 2}
	x, err := FromSlice(src, Shape{2}, mockBackend{})
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, 1.0, x.Data()[0])
}

func TestFromSlice_WrongLength(t *testing.T) {
	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2}, mockBackend{})
	assert.Error(t, err)
}

func TestCreation(t *testing.T) {
	b := mockBackend{}

	assert.Equal(t, []float32{0, 0, 0}, Zeros[float32](Shape{3}, b).Data())
	assert.Equal(t, []float64{0, 0}, Zeros[float64](Shape{1, 2}, b).Data())
}

func TestItem(t *testing.T) {
	b := mockBackend{}

	scalar, err := FromSlice([]float32{3}, Shape{}, b)
	require.NoError(t, err)
	assert.Equal(t, float32(3), scalar.Item())

	assert.Panics(t, func() { Zeros[float32](Shape{2}, b).Item() })
}

func TestOps_DelegateToBackend(t *testing.T) {
	b := mockBackend{}
	x, _ := FromSlice([]float32{1, 2, 3}, Shape{3, 1}, b)
	bias, _ := FromSlice([]float32{10}, Shape{1, 1}, b)

	assert.Equal(t, []float32{11, 12, 13}, x.Add(bias).Data())
	assert.Equal(t, []float32{-9, -8, -7}, x.Sub(bias).Data())
	assert.Equal(t, []float32{1, 4, 9}, x.Mul(x).Data())
	assert.Equal(t, Shape{1, 3}, x.T().Shape())
	assert.Equal(t, []float32{14}, x.T().MatMul(x).Data())
	assert.Equal(t, Shape{3}, x.Reshape(3).Shape())
	assert.Equal(t, float32(6), x.Sum().Item())
	assert.Equal(t, float32(2), x.Mean().Item())
}

func TestT_Requires2D(t *testing.T) {
	x := Zeros[float32](Shape{3}, mockBackend{})

	defer func() {
		r := recover()
		require.NotNil(t, r)
		_, ok := r.(*ShapeError)
		assert.True(t, ok, "expected *ShapeError, got %T", r)
	}()
	x.T()
}

func TestRawTensor_Fill(t *testing.T) {
	r, err := NewRaw(Shape{2, 2}, Float64, CPU)
	require.NoError(t, err)

	r.Fill(0.25)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, r.AsFloat64())
	assert.Panics(t, func() { r.AsFloat32() })
}
