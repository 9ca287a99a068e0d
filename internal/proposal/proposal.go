// Package proposal implements the adaptive jump-kernel layer used by the
// sampling routines. A Proposal produces the stochastic jump kernel and its
// log-density kernel for one model parameter, both as typed kernel-source
// fragments for the compute backend and as native Go functions for host-side
// sampling and tests.
//
// Generated fragments assume the backend preamble defines the rng_state type
// and a rng_normal(rng_state*) standard-normal draw; everything else in a
// fragment is self-contained.
package proposal

import (
	"github.com/optkit/compute-dispatch/internal/kernel"
)

// Proposal is the contract for parameter jump-kernel generators. A proposal
// owns an ordered list of Parameters; the order matches the additional
// arguments of both generated kernels, after the obligatory leading arguments.
//
// The jump kernel follows the signature shape
//
//	double <name>(const double current, rng_state* rng, <parameters...>)
//
// and the log-density kernel
//
//	double <name>(const double x, const double current, <parameters...>)
//
// Implementations must return byte-identical fragment sources on repeated
// calls, and a proposal with zero parameters is valid.
type Proposal interface {
	// IsSymmetric reports whether the jump density satisfies q(x|y) == q(y|x).
	// Samplers skip the Hastings correction term when this is true.
	IsSymmetric() bool

	// Parameters returns the proposal's owned parameters, order-stable
	// across calls
	Parameters() []Parameter

	// JumpFunction returns the jump-generation kernel fragment
	JumpFunction() kernel.Fragment

	// JumpFunctionName returns the exact callable name defined by
	// JumpFunction
	JumpFunctionName() string

	// LogPDFFunction returns the log-density kernel fragment
	LogPDFFunction() kernel.Fragment

	// LogPDFFunctionName returns the exact callable name defined by
	// LogPDFFunction
	LogPDFFunctionName() string
}

// NativeSampler is implemented by proposals that can also draw jumps on the
// host, mirroring the generated kernels. The values slice holds the current
// runtime values of the proposal's parameters, in Parameters() order.
type NativeSampler interface {
	// Sample draws a proposed value given the current one
	Sample(current float64, values []float64) float64

	// LogPDF evaluates the jump log-density q(proposed|current)
	LogPDF(proposed, current float64, values []float64) float64
}
