package train

import (
	"gonum.org/v1/gonum/stat"
)

// Fit is a closed-form least-squares line.
type Fit struct {
	Slope     float64
	Intercept float64
	RSquared  float64
}

// ReferenceFit computes the ordinary least-squares line through (xs, ys).
func ReferenceFit(xs, ys []float32) Fit {
	x := make([]float64, len(xs))
	y := make([]float64, len(ys))
	for i := range xs {
		x[i] = float64(xs[i])
		y[i] = float64(ys[i])
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	return Fit{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  stat.RSquared(x, y, nil, intercept, slope),
	}
}
