package cpu

import (
	"github.com/klauspost/cpuid/v2"
)

// HostInfo describes the processor the CPU backend runs on.
type HostInfo struct {
	Brand        string   // Processor brand string, empty if unavailable
	LogicalCores int      // Logical cores reported by CPUID
	SIMD         []string // Vector extensions available on this host
}

// simdFeatures lists the vector extensions worth reporting, in display order.
var simdFeatures = []struct {
	id   cpuid.FeatureID
	name string
}{
	{cpuid.SSE2, "SSE2"},
	{cpuid.AVX, "AVX"},
	{cpuid.AVX2, "AVX2"},
	{cpuid.FMA3, "FMA3"},
	{cpuid.AVX512F, "AVX512F"},
	{cpuid.ASIMD, "NEON"},
	{cpuid.SVE, "SVE"},
}

// Host reports the processor capabilities detected at startup.
func (cpu *CPUBackend) Host() HostInfo {
	info := HostInfo{
		Brand:        cpuid.CPU.BrandName,
		LogicalCores: cpuid.CPU.LogicalCores,
	}
	for _, f := range simdFeatures {
		if cpuid.CPU.Supports(f.id) {
			info.SIMD = append(info.SIMD, f.name)
		}
	}
	return info
}
