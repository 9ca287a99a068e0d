package balance

import (
	"github.com/optkit/compute-dispatch/pkg/devices"
)

// PreferGPU assigns all work to accelerator-class environments, split evenly
// among them, and falls back to the full environment list when no accelerator
// is present.
type PreferGPU struct{}

// Name returns the registry name of this strategy
func (PreferGPU) Name() string {
	return "PreferGPU"
}

// Partition assigns all items to accelerator-class environments when any exist
func (PreferGPU) Partition(totalItems int, envs []devices.Environment) (Partition, error) {
	return preferClass(totalItems, envs, devices.ClassAccelerator)
}

// PreferCPU is the inverse of PreferGPU: all work goes to general-purpose
// environments, falling back to the full list when none are present.
type PreferCPU struct{}

// Name returns the registry name of this strategy
func (PreferCPU) Name() string {
	return "PreferCPU"
}

// Partition assigns all items to general-purpose environments when any exist
func (PreferCPU) Partition(totalItems int, envs []devices.Environment) (Partition, error) {
	return preferClass(totalItems, envs, devices.ClassGeneralPurpose)
}

func preferClass(totalItems int, envs []devices.Environment, preferred devices.Class) (Partition, error) {
	if err := validateArgs(totalItems, envs); err != nil {
		return nil, err
	}
	selected := devices.FilterByClass(envs, preferred)
	if len(selected) == 0 {
		selected = envs
	}
	return splitEvenly(totalItems, selected, envs), nil
}
