package proposal

import (
	"math"

	"github.com/optkit/compute-dispatch/internal/kernel"
)

// UpdateUpperBound caps the growth of adaptable parameter values so runaway
// acceptance streaks cannot overflow downstream kernels
const UpdateUpperBound = 1e10

const updateFunctionName = "prop_default_parameter_update"

// Parameter is a single scalar parameter of a proposal distribution. The
// parameter itself only carries configuration and the update rule; the
// evolving runtime value is threaded explicitly by the surrounding sampler,
// which keeps the rule a pure function.
type Parameter struct {
	// DefaultValue is the value the parameter starts a run with; must be finite
	DefaultValue float64
	// Adaptable controls whether the sampler may update the value at all.
	// When false the value stays at DefaultValue for the run's lifetime.
	Adaptable bool
}

// Update applies the default adaptation rule to the current value:
//
//	min(current * sqrt((acc+1) / ((jumps-acc)+1)), UpdateUpperBound)
//
// With zero counters the value is returned unchanged. When acceptances exceed
// jumps (a caller bookkeeping anomaly) the scale factor is unbounded and the
// result clamps to UpdateUpperBound.
func (Parameter) Update(current float64, acceptanceCounter, jumpCounter uint64) float64 {
	num := float64(acceptanceCounter) + 1
	den := float64(jumpCounter) - float64(acceptanceCounter) + 1
	if den <= 0 {
		return UpdateUpperBound
	}
	return math.Min(current*math.Sqrt(num/den), UpdateUpperBound)
}

// UpdateFunction returns the kernel-source form of the default update rule,
// with signature
//
//	double prop_default_parameter_update(const double current_value,
//	                                     const uint acceptance_counter,
//	                                     const uint jump_counter)
func (Parameter) UpdateFunction() kernel.Fragment {
	return kernel.Fragment{
		FunctionName: updateFunctionName,
		GuardSymbol:  "PROP_DEFAULT_PARAMETER_UPDATE",
		Params:       []string{"current_value", "acceptance_counter", "jump_counter"},
		Body: `double prop_default_parameter_update(const double current_value,
                                     const uint acceptance_counter,
                                     const uint jump_counter){
    return min(current_value *
                   sqrt((double)(acceptance_counter + 1) /
                        ((jump_counter - acceptance_counter) + 1)),
               1e10);
}`,
	}
}

// UpdateFunctionName returns the callable name defined by UpdateFunction
func (Parameter) UpdateFunctionName() string {
	return updateFunctionName
}
