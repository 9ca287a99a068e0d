package proposal

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/stat"
)

func TestGaussianIsSymmetric(t *testing.T) {
	assert.True(t, NewGaussian(1.0, true).IsSymmetric())
}

func TestGaussianParameters(t *testing.T) {
	g := NewGaussian(2.0, true)

	params := g.Parameters()
	require.Len(t, params, 1)
	assert.Equal(t, 2.0, params[0].DefaultValue)
	assert.True(t, params[0].Adaptable)

	fixed := NewGaussian(0.5, false)
	assert.False(t, fixed.Parameters()[0].Adaptable)
}

func TestGaussianFragmentsAreStable(t *testing.T) {
	g := NewGaussian(1.0, true)

	require.Equal(t, g.JumpFunction().Render(), g.JumpFunction().Render())
	require.Equal(t, g.LogPDFFunction().Render(), g.LogPDFFunction().Render())

	assert.Equal(t, g.JumpFunctionName(), g.JumpFunction().FunctionName)
	assert.Equal(t, g.LogPDFFunctionName(), g.LogPDFFunction().FunctionName)
	assert.Contains(t, g.JumpFunction().Body, g.JumpFunctionName())
	assert.Contains(t, g.LogPDFFunction().Body, g.LogPDFFunctionName())
}

func TestGaussianLogPDFZeroOffsetTerm(t *testing.T) {
	g := NewGaussian(2.0, true)

	// at x == mu only the constant term log(2/(std*sqrt(pi))) remains
	got := g.LogPDF(1.5, 1.5, []float64{2.0})
	want := math.Log(2 / (2 * math.Sqrt(math.Pi)))
	assert.InDelta(t, want, got, 1e-12)
}

func TestGaussianLogPDFSymmetry(t *testing.T) {
	g := NewGaussian(1.0, true)
	values := []float64{1.0}

	assert.InDelta(t, g.LogPDF(0.3, 1.7, values), g.LogPDF(1.7, 0.3, values), 1e-12)
}

func TestGaussianSampleDistribution(t *testing.T) {
	g := NewGaussian(1.0, true).WithSource(rand.NewPCG(7, 11))

	const current, std = 5.0, 0.5
	draws := make([]float64, 20000)
	for i := range draws {
		draws[i] = g.Sample(current, []float64{std})
	}

	mean, stddev := stat.MeanStdDev(draws, nil)
	assert.InDelta(t, current, mean, 0.02)
	assert.InDelta(t, std, stddev, 0.02)
}

func TestGaussianSampleUsesDefaultWithoutValues(t *testing.T) {
	// a zero std collapses the jump to the current value, which makes the
	// default fallback observable
	g := NewGaussian(0.0, true).WithSource(rand.NewPCG(1, 2))
	assert.Equal(t, 3.0, g.Sample(3.0, nil))
}
