package cpu

import (
	"fmt"

	"github.com/born-ml/linreg/internal/parallel"
	"github.com/born-ml/linreg/internal/tensor"
)

// MatMul performs matrix multiplication.
// For 2D tensors: (M, K) @ (K, N) -> (M, N).
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		panic(tensor.NewShapeError("matmul", []tensor.Shape{aShape, bShape},
			"only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]

	if k != kAlt {
		panic(tensor.NewShapeError("matmul", []tensor.Shape{aShape, bShape},
			"inner dimensions differ: %d vs %d", k, kAlt))
	}

	result, err := tensor.NewRaw(tensor.Shape{m, n}, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("matmul: failed to create result tensor: %v", err))
	}

	switch a.DType() {
	case tensor.Float32:
		c, x, y := result.AsFloat32(), a.AsFloat32(), b.AsFloat32()
		parallel.For(m, cpu.parallel, func(start, end int) { matmul(c, x, y, start, end, k, n) })
	case tensor.Float64:
		c, x, y := result.AsFloat64(), a.AsFloat64(), b.AsFloat64()
		parallel.For(m, cpu.parallel, func(start, end int) { matmul(c, x, y, start, end, k, n) })
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}

	return result
}

// matmul computes C[i,j] = sum_k A[i,k] * B[k,j] for rows [rowStart, rowEnd).
func matmul[T tensor.DType](c, a, b []T, rowStart, rowEnd, k, n int) {
	for i := rowStart; i < rowEnd; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}
