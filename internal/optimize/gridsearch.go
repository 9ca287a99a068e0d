package optimize

import (
	"context"
	"fmt"

	"github.com/optkit/compute-dispatch/internal/dispatch"
	"github.com/optkit/compute-dispatch/pkg/devices"
)

const (
	// DefaultGridLower is the default lower bound of the search interval
	DefaultGridLower = -10.0
	// DefaultGridUpper is the default upper bound of the search interval
	DefaultGridUpper = 10.0
	// DefaultGridPoints is the default number of grid points
	DefaultGridPoints = 201
)

// GridSearch exhaustively evaluates each item's objective over an evenly
// spaced grid and keeps the minimizing candidate. The batch is split across
// environments by the configured strategy; each environment scans its own
// contiguous item range.
type GridSearch struct {
	dispatcher *dispatch.Dispatcher
	lower      float64
	upper      float64
	points     int
}

// NewGridSearch creates a grid search over the configured environments
func NewGridSearch(cfg Config) (*GridSearch, error) {
	if err := validateDispatchConfig(cfg); err != nil {
		return nil, fmt.Errorf("grid search: %w", err)
	}
	return &GridSearch{
		dispatcher: dispatch.NewDispatcher(cfg.Strategy, cfg.Environments),
		lower:      DefaultGridLower,
		upper:      DefaultGridUpper,
		points:     DefaultGridPoints,
	}, nil
}

// WithBounds sets the search interval
func (g *GridSearch) WithBounds(lower, upper float64) *GridSearch {
	g.lower = lower
	g.upper = upper
	return g
}

// WithPoints sets the number of grid points
func (g *GridSearch) WithPoints(points int) *GridSearch {
	if points > 1 {
		g.points = points
	}
	return g
}

// Name returns the registry name of this routine
func (*GridSearch) Name() string {
	return "GridSearch"
}

// Run scans the grid for every item in the batch
func (g *GridSearch) Run(ctx context.Context, batch *Batch) (*Result, error) {
	if batch == nil || batch.Objective == nil {
		return nil, fmt.Errorf("grid search: batch with an objective is required")
	}
	if g.upper <= g.lower {
		return nil, fmt.Errorf("grid search: upper bound %v must exceed lower bound %v", g.upper, g.lower)
	}

	values := make([]float64, batch.Size)
	scores := make([]float64, batch.Size)
	step := (g.upper - g.lower) / float64(g.points-1)

	// Each environment writes a disjoint item range, so no locking is needed.
	work := func(ctx context.Context, env devices.Environment, start, count int) error {
		for item := start; item < start+count; item++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			bestX := g.lower
			bestScore := batch.Objective(item, g.lower)
			for i := 1; i < g.points; i++ {
				x := g.lower + float64(i)*step
				if score := batch.Objective(item, x); score < bestScore {
					bestX, bestScore = x, score
				}
			}
			values[item] = bestX
			scores[item] = bestScore
		}
		return nil
	}

	dispatched, err := g.dispatcher.Run(ctx, batch.Size, work)
	if err != nil {
		return nil, err
	}
	return &Result{
		Values:    values,
		Scores:    scores,
		Partition: dispatched.Partition,
		JobID:     dispatched.JobID,
	}, nil
}
