package balance

import (
	"github.com/optkit/compute-dispatch/pkg/devices"
)

// EvenDistribution splits work as evenly as possible across all supplied
// environments. The remainder of the integer division goes to the
// earliest-listed environments, so the split is deterministic and sensitive to
// environment order.
type EvenDistribution struct{}

// Name returns the registry name of this strategy
func (EvenDistribution) Name() string {
	return "EvenDistribution"
}

// Partition splits totalItems evenly across envs
func (EvenDistribution) Partition(totalItems int, envs []devices.Environment) (Partition, error) {
	if err := validateArgs(totalItems, envs); err != nil {
		return nil, err
	}
	return splitEvenly(totalItems, envs, envs), nil
}

// splitEvenly assigns totalItems evenly across the selected environments and
// zero to every other supplied environment. selected must be a subsequence of
// all.
func splitEvenly(totalItems int, selected, all []devices.Environment) Partition {
	p := make(Partition, len(all))
	for _, env := range all {
		p[env.ID] = 0
	}
	share := totalItems / len(selected)
	remainder := totalItems % len(selected)
	for i, env := range selected {
		count := share
		if i < remainder {
			count++
		}
		p[env.ID] = count
	}
	return p
}
