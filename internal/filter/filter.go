// Package filter provides the 1-D smoothing filters registered in the
// smoothers family. Each filter smooths a series with a symmetric window,
// clamping the window at the series edges.
package filter

// Smoother smooths a series of values. Implementations never modify the
// input and return a slice of the same length.
type Smoother interface {
	// Name returns the stable registry name of this filter
	Name() string

	// Smooth smooths values with a window of the given half-width. A
	// non-positive width returns an unmodified copy.
	Smooth(values []float64, width int) []float64
}

// Factory constructs a smoother; registry lookup returns factories without
// instantiating
type Factory func() Smoother

// window returns the clamped [lo, hi) window bounds around index i
func window(i, width, length int) (int, int) {
	lo := i - width
	if lo < 0 {
		lo = 0
	}
	hi := i + width + 1
	if hi > length {
		hi = length
	}
	return lo, hi
}
