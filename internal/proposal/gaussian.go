package proposal

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/optkit/compute-dispatch/internal/kernel"
)

const (
	gaussianJumpName   = "prop_gaussian"
	gaussianLogPDFName = "prop_gaussian_logpdf"
)

// Gaussian proposes jumps from a normal distribution centered on the current
// value. It owns a single parameter, the standard deviation, which is
// adaptable by default. The density is symmetric in (x, current), so samplers
// need no Hastings correction.
type Gaussian struct {
	params []Parameter
	normal distuv.Normal
}

// NewGaussian creates a Gaussian proposal with the given standard deviation
func NewGaussian(std float64, adaptable bool) *Gaussian {
	return &Gaussian{
		params: []Parameter{{DefaultValue: std, Adaptable: adaptable}},
		normal: distuv.Normal{Mu: 0, Sigma: 1},
	}
}

// WithSource sets the random source used for native sampling; without it the
// global source is used
func (g *Gaussian) WithSource(src rand.Source) *Gaussian {
	g.normal.Src = src
	return g
}

// IsSymmetric reports true: a Gaussian jump density satisfies q(x|y) == q(y|x)
func (g *Gaussian) IsSymmetric() bool {
	return true
}

// Parameters returns the single std parameter
func (g *Gaussian) Parameters() []Parameter {
	return g.params
}

// JumpFunction returns the jump kernel: current + std * N(0, 1)
func (g *Gaussian) JumpFunction() kernel.Fragment {
	return kernel.Fragment{
		FunctionName: gaussianJumpName,
		GuardSymbol:  "PROP_GAUSSIAN_CL",
		Params:       []string{"std"},
		Body: `double prop_gaussian(const double current, rng_state* rng, const double std){
    return current + std * rng_normal(rng);
}`,
	}
}

// JumpFunctionName returns the callable name defined by JumpFunction
func (g *Gaussian) JumpFunctionName() string {
	return gaussianJumpName
}

// LogPDFFunction returns the log-density kernel:
// log(2/(std*sqrt(pi))) - 0.5*((x-mu)/std)^2
func (g *Gaussian) LogPDFFunction() kernel.Fragment {
	return kernel.Fragment{
		FunctionName: gaussianLogPDFName,
		GuardSymbol:  "PROP_GAUSSIAN_LOGPDF_CL",
		Params:       []string{"std"},
		Body: `double prop_gaussian_logpdf(const double x, const double mu, const double std){
    return log(M_2_SQRTPI / std) - 0.5 * pown((x - mu) / std, 2);
}`,
	}
}

// LogPDFFunctionName returns the callable name defined by LogPDFFunction
func (g *Gaussian) LogPDFFunctionName() string {
	return gaussianLogPDFName
}

// Sample draws a proposed value natively, mirroring the jump kernel
func (g *Gaussian) Sample(current float64, values []float64) float64 {
	std := g.std(values)
	return current + std*g.normal.Rand()
}

// LogPDF evaluates the jump log-density natively, mirroring the logpdf kernel
func (g *Gaussian) LogPDF(proposed, current float64, values []float64) float64 {
	std := g.std(values)
	diff := (proposed - current) / std
	return math.Log(2/(std*math.Sqrt(math.Pi))) - 0.5*diff*diff
}

func (g *Gaussian) std(values []float64) float64 {
	if len(values) > 0 {
		return values[0]
	}
	return g.params[0].DefaultValue
}
