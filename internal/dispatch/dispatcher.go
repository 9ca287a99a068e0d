// Package dispatch executes a partitioned batch across compute environments.
// The dispatcher asks a load-balance strategy for the partition, hands each
// environment its contiguous item range on its own goroutine, and feeds timing
// observations back to strategies that learn from them.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/optkit/compute-dispatch/internal/balance"
	"github.com/optkit/compute-dispatch/internal/metrics"
	"github.com/optkit/compute-dispatch/pkg/devices"
	"github.com/optkit/compute-dispatch/pkg/logger"
)

// WorkFunc processes the half-open item range [start, start+count) on the
// given environment. Implementations are invoked concurrently, one call per
// environment with a non-zero share.
type WorkFunc func(ctx context.Context, env devices.Environment, start, count int) error

// Observer receives throughput feedback after each completed sub-batch.
// balance.RuntimeLoadBalancing implements it.
type Observer interface {
	Observe(environmentID string, itemsPerSecond float64)
}

// Result describes one completed dispatch job
type Result struct {
	// JobID uniquely identifies the dispatch job
	JobID string
	// Partition is the item split that was executed
	Partition balance.Partition
	// Elapsed is the wall time per environment ID
	Elapsed map[string]time.Duration
}

// Dispatcher splits batches across a fixed environment list using a
// load-balance strategy
type Dispatcher struct {
	strategy balance.Strategy
	envs     []devices.Environment
	recorder *metrics.Recorder
}

// NewDispatcher creates a dispatcher over the given strategy and environments
func NewDispatcher(strategy balance.Strategy, envs []devices.Environment) *Dispatcher {
	return &Dispatcher{
		strategy: strategy,
		envs:     envs,
	}
}

// WithRecorder attaches a throughput recorder that receives one sample per
// completed sub-batch
func (d *Dispatcher) WithRecorder(recorder *metrics.Recorder) *Dispatcher {
	d.recorder = recorder
	return d
}

// Environments returns the environment list the dispatcher was built with
func (d *Dispatcher) Environments() []devices.Environment {
	return d.envs
}

// Run partitions totalItems across the environments and invokes work once per
// environment with a non-zero share, concurrently. Item ranges are assigned
// contiguously in environment list order. The first sub-batch error cancels
// the remaining work through the group context and is returned; the partition
// itself fails before any work is started, so a misconfigured job never
// executes partially.
func (d *Dispatcher) Run(ctx context.Context, totalItems int, work WorkFunc) (*Result, error) {
	partition, err := d.strategy.Partition(totalItems, d.envs)
	if err != nil {
		return nil, fmt.Errorf("partitioning %d items with %s: %w", totalItems, d.strategy.Name(), err)
	}

	result := &Result{
		JobID:     uuid.NewString(),
		Partition: partition,
		Elapsed:   make(map[string]time.Duration, len(d.envs)),
	}

	group, ctx := errgroup.WithContext(ctx)
	elapsed := make([]time.Duration, len(d.envs))
	offset := 0
	for i, env := range d.envs {
		count := partition[env.ID]
		if count == 0 {
			continue
		}
		start := offset
		offset += count

		group.Go(func() error {
			began := time.Now()
			if err := work(ctx, env, start, count); err != nil {
				return fmt.Errorf("environment %s: %w", env.ID, err)
			}
			elapsed[i] = time.Since(began)

			sample := metrics.Sample{EnvironmentID: env.ID, Items: count, Elapsed: elapsed[i]}
			if d.recorder != nil {
				d.recorder.Record(sample)
			}
			if observer, ok := d.strategy.(Observer); ok {
				observer.Observe(env.ID, sample.ItemsPerSecond())
			}
			logger.Debug("sub-batch completed",
				"job_id", result.JobID,
				"environment", env.ID,
				"items", count,
				"elapsed_ms", elapsed[i].Milliseconds())
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	for i, env := range d.envs {
		if partition[env.ID] > 0 {
			result.Elapsed[env.ID] = elapsed[i]
		}
	}
	return result, nil
}
