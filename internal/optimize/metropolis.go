package optimize

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/optkit/compute-dispatch/internal/dispatch"
	"github.com/optkit/compute-dispatch/internal/proposal"
	"github.com/optkit/compute-dispatch/pkg/devices"
)

const (
	// DefaultSampleCount is the default chain length per item
	DefaultSampleCount = 2000
	// DefaultAdaptationInterval is the number of jumps between adaptation
	// steps for adaptable proposal parameters
	DefaultAdaptationInterval = 50
)

// Metropolis runs one Metropolis MCMC chain per batch item, drawing jumps
// from the configured parameter proposal. Adaptable proposal parameters are
// re-tuned every adaptation interval with their update rule, using the
// acceptance and jump counters accumulated since the previous adaptation.
// When the proposal is symmetric the Hastings correction term is skipped.
type Metropolis struct {
	dispatcher *dispatch.Dispatcher
	prop       proposal.Proposal
	native     proposal.NativeSampler
	samples    int
	interval   int
	seed       uint64
}

// NewMetropolis creates a Metropolis sampling routine. The configured
// proposal must support native sampling.
func NewMetropolis(cfg Config) (*Metropolis, error) {
	if err := validateDispatchConfig(cfg); err != nil {
		return nil, fmt.Errorf("metropolis: %w", err)
	}
	if cfg.Proposal == nil {
		return nil, fmt.Errorf("metropolis: a parameter proposal is required")
	}
	native, ok := cfg.Proposal.(proposal.NativeSampler)
	if !ok {
		return nil, fmt.Errorf("metropolis: proposal %T does not support native sampling", cfg.Proposal)
	}
	return &Metropolis{
		dispatcher: dispatch.NewDispatcher(cfg.Strategy, cfg.Environments),
		prop:       cfg.Proposal,
		native:     native,
		samples:    DefaultSampleCount,
		interval:   DefaultAdaptationInterval,
		seed:       cfg.Seed,
	}, nil
}

// WithSamples sets the chain length per item
func (m *Metropolis) WithSamples(samples int) *Metropolis {
	if samples > 0 {
		m.samples = samples
	}
	return m
}

// WithAdaptationInterval sets the number of jumps between adaptation steps;
// 0 disables adaptation entirely
func (m *Metropolis) WithAdaptationInterval(interval int) *Metropolis {
	if interval >= 0 {
		m.interval = interval
	}
	return m
}

// Name returns the registry name of this routine
func (*Metropolis) Name() string {
	return "Metropolis"
}

// Run samples every item's chain and reports the chain mean and acceptance
// rate per item
func (m *Metropolis) Run(ctx context.Context, batch *Batch) (*Result, error) {
	if batch == nil || batch.LogTarget == nil {
		return nil, fmt.Errorf("metropolis: batch with a log target is required")
	}

	values := make([]float64, batch.Size)
	scores := make([]float64, batch.Size)

	work := func(ctx context.Context, env devices.Environment, start, count int) error {
		for item := start; item < start+count; item++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			mean, acceptance := m.sampleChain(batch, item)
			values[item] = mean
			scores[item] = acceptance
		}
		return nil
	}

	dispatched, err := m.dispatcher.Run(ctx, batch.Size, work)
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

// sampleChain runs one chain and returns its mean and acceptance rate
func (m *Metropolis) sampleChain(batch *Batch, item int) (float64, float64) {
	// Acceptance draws are seeded per item so chain behavior does not depend
	// on how the batch was partitioned.
	rng := rand.New(rand.NewPCG(m.seed, uint64(item)))

	params := m.prop.Parameters()
	paramValues := make([]float64, len(params))
	for i, p := range params {
		paramValues[i] = p.DefaultValue
	}

	x := batch.initial(item)
	logp := batch.LogTarget(item, x)
	symmetric := m.prop.IsSymmetric()

	var accepted, jumps uint64
	var totalAccepted int
	sum := 0.0

	for s := 0; s < m.samples; s++ {
		proposed := m.native.Sample(x, paramValues)
		proposedLogp := batch.LogTarget(item, proposed)

		logAlpha := proposedLogp - logp
		if !symmetric {
			logAlpha += m.native.LogPDF(x, proposed, paramValues) -
				m.native.LogPDF(proposed, x, paramValues)
		}

		jumps++
		if logAlpha >= 0 || math.Log(rng.Float64()) < logAlpha {
			x, logp = proposed, proposedLogp
			accepted++
			totalAccepted++
		}

		if m.interval > 0 && jumps >= uint64(m.interval) {
			for i, p := range params {
				if p.Adaptable {
					paramValues[i] = p.Update(paramValues[i], accepted, jumps)
				}
			}
			accepted, jumps = 0, 0
		}

		sum += x
	}

	return sum / float64(m.samples), float64(totalAccepted) / float64(m.samples)
}
