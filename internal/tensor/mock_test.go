package tensor

// mockBackend is a naive float64 reference backend for package tests.
type mockBackend struct{}

var _ Backend = mockBackend{}

func (mockBackend) Name() string   { return "mock" }
func (mockBackend) Device() Device { return CPU }

func (m mockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

func (m mockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

func (m mockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

func (m mockBackend) elementWise(a, b *RawTensor, op func(float64, float64) float64) *RawTensor {
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}
	aData, bData := toFloat64(a), toFloat64(b)
	out := make([]float64, outShape.NumElements())
	for i := range out {
		out[i] = op(aData[broadcastIndex(i, outShape, a.Shape())], bData[broadcastIndex(i, outShape, b.Shape())])
	}
	return fromFloat64(out, outShape, a.DType())
}

func (m mockBackend) MatMul(a, b *RawTensor) *RawTensor {
	rows, inner, cols := a.Shape()[0], a.Shape()[1], b.Shape()[1]
	if inner != b.Shape()[0] {
		panic(NewShapeError("matmul", []Shape{a.Shape(), b.Shape()}, "inner dimensions differ"))
	}
	aData, bData := toFloat64(a), toFloat64(b)
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			for k := 0; k < inner; k++ {
				out[i*cols+j] += aData[i*inner+k] * bData[k*cols+j]
			}
		}
	}
	return fromFloat64(out, Shape{rows, cols}, a.DType())
}

func (m mockBackend) Reshape(t *RawTensor, newShape Shape) *RawTensor {
	return fromFloat64(toFloat64(t), newShape, t.DType())
}

func (m mockBackend) Transpose(t *RawTensor, _ ...int) *RawTensor {
	rows, cols := t.Shape()[0], t.Shape()[1]
	data := toFloat64(t)
	out := make([]float64, len(data))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = data[i*cols+j]
		}
	}
	return fromFloat64(out, Shape{cols, rows}, t.DType())
}

func (m mockBackend) Sum(x *RawTensor) *RawTensor {
	var sum float64
	for _, v := range toFloat64(x) {
		sum += v
	}
	return fromFloat64([]float64{sum}, Shape{}, x.DType())
}

func (m mockBackend) Mean(x *RawTensor) *RawTensor {
	sum := toFloat64(m.Sum(x))[0]
	return fromFloat64([]float64{sum / float64(x.NumElements())}, Shape{}, x.DType())
}

func broadcastIndex(flat int, outShape, inShape Shape) int {
	outStrides := outShape.ComputeStrides()
	inStrides := inShape.ComputeStrides()
	offset := len(outShape) - len(inShape)
	idx := 0
	for d := range outShape {
		coord := flat / outStrides[d]
		flat %= outStrides[d]
		if in := d - offset; in >= 0 && inShape[in] != 1 {
			idx += coord * inStrides[in]
		}
	}
	return idx
}

func toFloat64(r *RawTensor) []float64 {
	out := make([]float64, r.NumElements())
	switch r.DType() {
	case Float32:
		for i, v := range r.AsFloat32() {
			out[i] = float64(v)
		}
	case Float64:
		copy(out, r.AsFloat64())
	}
	return out
}

func fromFloat64(data []float64, shape Shape, dtype DataType) *RawTensor {
	r, err := NewRaw(shape, dtype, CPU)
	if err != nil {
		panic(err)
	}
	switch dtype {
	case Float32:
		dst := r.AsFloat32()
		for i, v := range data {
			dst[i] = float32(v)
		}
	case Float64:
		copy(r.AsFloat64(), data)
	}
	return r
}
