// Package balance implements the load-balancing strategy layer: deciding how
// a batch of independent work items is partitioned across the available
// compute environments. Strategies only compute the partition; dispatching the
// resulting sub-batches is the caller's concern.
package balance

import (
	"github.com/optkit/compute-dispatch/pkg/devices"
)

// Partition maps environment IDs to the number of work items assigned to each.
// A valid partition covers every supplied environment, has no negative counts,
// and sums exactly to the requested total.
type Partition map[string]int

// Total returns the sum of assigned item counts
func (p Partition) Total() int {
	total := 0
	for _, count := range p {
		total += count
	}
	return total
}

// Strategy decides how totalItems independent work items are split across the
// supplied environments. Partition is a synchronous pure computation: the same
// inputs (and, for stateful strategies, the same accumulated measurement
// state) always yield the same partition.
type Strategy interface {
	// Name returns the stable human-readable strategy name used for
	// registry lookup
	Name() string

	// Partition splits totalItems across envs. It fails with a
	// configuration error when envs is empty or totalItems is negative.
	Partition(totalItems int, envs []devices.Environment) (Partition, error)
}

// Options carries the constructor settings shared by the strategy family.
// Individual strategies consume the fields relevant to them and ignore the
// rest.
type Options struct {
	// PreferredEnvironment names the target for PreferSpecificEnvironment
	PreferredEnvironment string
	// SmoothingAlpha is the EWMA weight for RuntimeLoadBalancing throughput
	// updates; 0 selects the default
	SmoothingAlpha float64
}

// Factory constructs a strategy from the family-wide option set. Lookup via
// the registry returns a Factory without instantiating anything, deferring
// construction-time validation to the caller.
type Factory func(opts Options) (Strategy, error)

// validateArgs checks the shared Partition preconditions
func validateArgs(totalItems int, envs []devices.Environment) error {
	if len(envs) == 0 {
		return ErrNoEnvironments
	}
	if totalItems < 0 {
		return ErrNegativeItems
	}
	return nil
}
