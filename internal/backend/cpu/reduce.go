package cpu

import (
	"fmt"

	"github.com/born-ml/linreg/internal/tensor"
)

// Sum reduces all elements of x to a 0-D tensor.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.reduce("sum", x, 1)
}

// Mean averages all elements of x into a 0-D tensor.
func (cpu *CPUBackend) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.reduce("mean", x, float64(x.NumElements()))
}

func (cpu *CPUBackend) reduce(name string, x *tensor.RawTensor, divisor float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] = sum(x.AsFloat32()) / float32(divisor)
	case tensor.Float64:
		result.AsFloat64()[0] = sum(x.AsFloat64()) / divisor
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}

func sum[T tensor.DType](data []T) T {
	var total T
	for _, v := range data {
		total += v
	}
	return total
}
