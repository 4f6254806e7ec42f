package ops

import (
	"fmt"

	"github.com/born-ml/linreg/internal/tensor"
)

// reduceBroadcast sums grad down to targetShape and multiplies by scale.
// This undoes NumPy-style broadcasting from the forward pass.
//
// Example:
//
//	Forward:  a[100,1] + b[1,1] -> c[100,1]   (b broadcast along dim 0)
//	Backward: grad_c[100,1]     -> grad_b[1,1] (sum along dim 0)
//
// The result never aliases grad.
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, scale float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(targetShape, grad.DType(), grad.Device())
	if err != nil {
		panic(fmt.Sprintf("reduceBroadcast: failed to create result: %v", err))
	}

	gradShape := grad.Shape()
	gradStrides := gradShape.ComputeStrides()
	targetStrides := broadcastStrides(targetShape, gradShape)

	switch grad.DType() {
	case tensor.Float32:
		accumulate(result.AsFloat32(), grad.AsFloat32(), gradStrides, targetStrides, float32(scale))
	case tensor.Float64:
		accumulate(result.AsFloat64(), grad.AsFloat64(), gradStrides, targetStrides, scale)
	default:
		panic(fmt.Sprintf("reduceBroadcast: unsupported dtype %s", grad.DType()))
	}

	return result
}

func accumulate[T tensor.DType](dst, src []T, srcStrides, dstStrides []int, scale T) {
	for i, v := range src {
		idx, rem := 0, i
		for d := range srcStrides {
			coord := rem / srcStrides[d]
			rem %= srcStrides[d]
			idx += coord * dstStrides[d]
		}
		dst[idx] += v * scale
	}
}

// broadcastStrides returns strides of inShape aligned to outShape, with 0 for
// dimensions that were broadcast.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	strides := make([]int, len(outShape))
	offset := len(outShape) - len(inShape)
	inStrides := inShape.ComputeStrides()
	for i := range outShape {
		if in := i - offset; in >= 0 && inShape[in] != 1 {
			strides[i] = inStrides[in]
		}
	}
	return strides
}

// spreadScalar builds a tensor of shape filled with grad's single value times scale.
func spreadScalar(grad *tensor.RawTensor, shape tensor.Shape, scale float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, grad.DType(), grad.Device())
	if err != nil {
		panic(fmt.Sprintf("spreadScalar: failed to create result: %v", err))
	}

	switch grad.DType() {
	case tensor.Float32:
		result.Fill(float64(grad.AsFloat32()[0]) * scale)
	case tensor.Float64:
		result.Fill(grad.AsFloat64()[0] * scale)
	default:
		panic(fmt.Sprintf("spreadScalar: unsupported dtype %s", grad.DType()))
	}

	return result
}
