package filter

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// MeanFilter replaces each value with the mean of its window
type MeanFilter struct{}

// Name returns the registry name of this filter
func (MeanFilter) Name() string {
	return "Mean"
}

// Smooth applies the mean filter
func (MeanFilter) Smooth(values []float64, width int) []float64 {
	out := make([]float64, len(values))
	if width <= 0 {
		copy(out, values)
		return out
	}
	for i := range values {
		lo, hi := window(i, width, len(values))
		out[i] = stat.Mean(values[lo:hi], nil)
	}
	return out
}

// MedianFilter replaces each value with the median of its window
type MedianFilter struct{}

// Name returns the registry name of this filter
func (MedianFilter) Name() string {
	return "Median"
}

// Smooth applies the median filter
func (MedianFilter) Smooth(values []float64, width int) []float64 {
	out := make([]float64, len(values))
	if width <= 0 {
		copy(out, values)
		return out
	}
	scratch := make([]float64, 0, 2*width+1)
	for i := range values {
		lo, hi := window(i, width, len(values))
		scratch = append(scratch[:0], values[lo:hi]...)
		sort.Float64s(scratch)
		mid := len(scratch) / 2
		if len(scratch)%2 == 1 {
			out[i] = scratch[mid]
		} else {
			out[i] = (scratch[mid-1] + scratch[mid]) / 2
		}
	}
	return out
}

// GaussianFilter replaces each value with a Gaussian-weighted average of its
// window. The kernel sigma is half the window half-width, so the window spans
// two standard deviations on each side.
type GaussianFilter struct{}

// Name returns the registry name of this filter
func (GaussianFilter) Name() string {
	return "Gaussian"
}

// Smooth applies the Gaussian filter
func (GaussianFilter) Smooth(values []float64, width int) []float64 {
	out := make([]float64, len(values))
	if width <= 0 {
		copy(out, values)
		return out
	}
	sigma := float64(width) / 2
	weights := make([]float64, 2*width+1)
	for d := -width; d <= width; d++ {
		weights[d+width] = math.Exp(-0.5 * float64(d) * float64(d) / (sigma * sigma))
	}
	for i := range values {
		lo, hi := window(i, width, len(values))
		sum, norm := 0.0, 0.0
		for j := lo; j < hi; j++ {
			w := weights[j-i+width]
			sum += w * values[j]
			norm += w
		}
		out[i] = sum / norm
	}
	return out
}
