// Package optimize contains the batch routines that consume the dispatch
// core: they split a batch of independent problems across environments with a
// load-balance strategy and, for sampling routines, draw jumps from an
// adaptive parameter proposal.
package optimize

import (
	"context"
	"fmt"

	"github.com/optkit/compute-dispatch/internal/balance"
	"github.com/optkit/compute-dispatch/internal/proposal"
	"github.com/optkit/compute-dispatch/pkg/devices"
)

// Batch describes a set of independent one-dimensional problems. Items are
// addressed by index; routines evaluate each item in isolation, which is what
// makes the batch partitionable.
type Batch struct {
	// Size is the number of independent problems
	Size int

	// Objective returns the cost of candidate x for an item; minimized by
	// optimization routines
	Objective func(item int, x float64) float64

	// LogTarget returns the log target density at x for an item; sampled by
	// sampling routines
	LogTarget func(item int, x float64) float64

	// Initial holds per-item starting values; items beyond its length start
	// at zero
	Initial []float64
}

func (b *Batch) initial(item int) float64 {
	if item < len(b.Initial) {
		return b.Initial[item]
	}
	return 0
}

// Result holds the per-item outcome of a routine run
type Result struct {
	// Values is the best candidate (optimizers) or the chain mean (samplers)
	// per item
	Values []float64
	// Scores is the best objective (optimizers) or the acceptance rate
	// (samplers) per item
	Scores []float64
	// Partition is the item split the run executed with
	Partition balance.Partition
	// JobID identifies the dispatch job
	JobID string
}

// Config carries the construction settings shared by the routine family.
// Routines consume the fields relevant to them.
type Config struct {
	// Strategy partitions the batch; required
	Strategy balance.Strategy
	// Environments is the environment list to partition over; required
	Environments []devices.Environment
	// Proposal supplies jump kernels for sampling routines
	Proposal proposal.Proposal
	// Seed seeds the sampling randomness
	Seed uint64
}

// Routine is a batch optimization or sampling routine
type Routine interface {
	// Name returns the stable registry name of this routine
	Name() string

	// Run executes the routine over the batch
	Run(ctx context.Context, batch *Batch) (*Result, error)
}

// Factory constructs a routine from shared config; registry lookup returns
// factories without instantiating
type Factory func(cfg Config) (Routine, error)

func validateDispatchConfig(cfg Config) error {
	if cfg.Strategy == nil {
		return fmt.Errorf("a load-balance strategy is required")
	}
	if len(cfg.Environments) == 0 {
		return fmt.Errorf("at least one environment is required")
	}
	return nil
}
