// Package dataset generates the synthetic regression data: points on the
// line y = slope*x + intercept perturbed by uniform noise.
package dataset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/rand"

	"github.com/born-ml/linreg/internal/tensor"
)

// ErrInvalidConfig is returned when a Config cannot produce a dataset.
var ErrInvalidConfig = errors.New("dataset: invalid config")

// Config describes the synthetic data.
type Config struct {
	Samples   int     // Number of points; x runs over 0..Samples-1
	Slope     float32 // Slope of the underlying line
	Intercept float32 // Intercept of the underlying line
	Noise     float32 // Half-width of the uniform noise interval [-Noise, Noise)
	Seed      int64   // Random seed (-1 for random)
}

// DefaultConfig returns the configuration of the demo: 100 points around
// y = 2x + 1 with noise in [-5, 5).
func DefaultConfig() Config {
	return Config{
		Samples:   100,
		Slope:     2,
		Intercept: 1,
		Noise:     5,
		Seed:      -1,
	}
}

// Validate reports whether the config describes a usable dataset.
func (c Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, c.Samples)
	}
	if c.Noise < 0 || math.IsNaN(float64(c.Noise)) {
		return fmt.Errorf("%w: noise must be non-negative, got %v", ErrInvalidConfig, c.Noise)
	}
	return nil
}

// NewRand returns a generator seeded with seed. A negative seed picks a
// random one; the seed actually used is returned alongside.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed < 0 {
		seed = int64(rand.Uint64() >> 1)
	}
	return rand.New(rand.NewSource(uint64(seed))), seed
}

// Dataset holds two aligned sequences of x and y values.
// It is immutable once generated.
type Dataset struct {
	x []float32
	y []float32
}

// Generate builds a dataset from cfg, drawing noise from rng.
//
// x_i = i and y_i = Slope*x_i + Intercept + r_i with r_i uniform in
// [-Noise, Noise).
func Generate(cfg Config, rng *rand.Rand) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Dataset{
		x: make([]float32, cfg.Samples),
		y: make([]float32, cfg.Samples),
	}
	for i := range d.x {
		x := float32(i)
		noise := float32((rng.Float64()*2 - 1) * float64(cfg.Noise))
		d.x[i] = x
		d.y[i] = cfg.Slope*x + cfg.Intercept + noise
	}
	return d, nil
}

// Len returns the number of points.
func (d *Dataset) Len() int {
	return len(d.x)
}

// X returns a copy of the inputs.
func (d *Dataset) X() []float32 {
	return append([]float32(nil), d.x...)
}

// Y returns a copy of the targets.
func (d *Dataset) Y() []float32 {
	return append([]float32(nil), d.y...)
}

// At returns the i-th point.
func (d *Dataset) At(i int) (x, y float32) {
	return d.x[i], d.y[i]
}

// Tensors returns the inputs and targets as [N, 1] tensors on backend.
func Tensors[B tensor.Backend](d *Dataset, backend B) (x, y *tensor.Tensor[float32, B], err error) {
	shape := tensor.Shape{d.Len(), 1}
	if x, err = tensor.FromSlice(d.X(), shape, backend); err != nil {
		return nil, nil, fmt.Errorf("dataset: inputs: %w", err)
	}
	if y, err = tensor.FromSlice(d.Y(), shape, backend); err != nil {
		return nil, nil, fmt.Errorf("dataset: targets: %w", err)
	}
	return x, y, nil
}

// Fingerprint returns an xxhash digest of the x and y values. Datasets
// generated from the same config and seed share a fingerprint.
func (d *Dataset) Fingerprint() uint64 {
	buf := make([]byte, 0, 8*len(d.x))
	for i := range d.x {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(d.x[i]))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(d.y[i]))
	}
	return xxhash.Sum64(buf)
}
