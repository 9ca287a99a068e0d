package balance

import (
	"math"
	"sync"

	"github.com/optkit/compute-dispatch/pkg/devices"
)

// DefaultSmoothingAlpha is the EWMA weight applied to new throughput
// observations
const DefaultSmoothingAlpha = 0.3

// RuntimeLoadBalancing splits work proportionally to the relative throughput
// of each environment. Throughput is learned at runtime: after every completed
// sub-batch the dispatcher reports an items-per-second observation through
// Observe, and the strategy folds it into an exponentially-weighted moving
// average per environment. Before any observation exists for an environment
// its declared ThroughputHint is used; when no estimate of either kind covers
// every environment the strategy degrades to the EvenDistribution split.
//
// Observe updates are serialized by an internal mutex, so concurrent
// completions from parallel device queues cannot lose updates.
type RuntimeLoadBalancing struct {
	mu    sync.Mutex
	alpha float64
	// EWMA throughput estimate per environment ID, items per second
	throughput map[string]float64
}

// NewRuntimeLoadBalancing creates a runtime strategy with the default
// smoothing weight
func NewRuntimeLoadBalancing() *RuntimeLoadBalancing {
	return &RuntimeLoadBalancing{
		alpha:      DefaultSmoothingAlpha,
		throughput: make(map[string]float64),
	}
}

// WithAlpha overrides the EWMA weight; values outside (0, 1] are ignored
func (s *RuntimeLoadBalancing) WithAlpha(alpha float64) *RuntimeLoadBalancing {
	if alpha > 0 && alpha <= 1 {
		s.alpha = alpha
	}
	return s
}

// Name returns the registry name of this strategy
func (s *RuntimeLoadBalancing) Name() string {
	return "RuntimeLoadBalancing"
}

// Observe folds a measured throughput (items per second) for an environment
// into the strategy's moving average. Non-positive or non-finite observations
// are discarded.
func (s *RuntimeLoadBalancing) Observe(environmentID string, itemsPerSecond float64) {
	if itemsPerSecond <= 0 || math.IsInf(itemsPerSecond, 0) || math.IsNaN(itemsPerSecond) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	previous, seen := s.throughput[environmentID]
	if !seen {
		s.throughput[environmentID] = itemsPerSecond
		return
	}
	s.throughput[environmentID] = s.alpha*itemsPerSecond + (1-s.alpha)*previous
}

// Throughput returns the current estimate for an environment, if any
func (s *RuntimeLoadBalancing) Throughput(environmentID string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	estimate, seen := s.throughput[environmentID]
	return estimate, seen
}

// Partition splits totalItems proportionally to the throughput estimates,
// rounding down and assigning the rounding remainder to the fastest
// environment. Without a full set of estimates it behaves as EvenDistribution.
func (s *RuntimeLoadBalancing) Partition(totalItems int, envs []devices.Environment) (Partition, error) {
	if err := validateArgs(totalItems, envs); err != nil {
		return nil, err
	}

	rates := make([]float64, len(envs))
	sum := 0.0
	covered := true
	s.mu.Lock()
	for i, env := range envs {
		rate, seen := s.throughput[env.ID]
		if !seen {
			rate = env.ThroughputHint
		}
		if rate <= 0 {
			covered = false
			break
		}
		rates[i] = rate
		sum += rate
	}
	s.mu.Unlock()

	if !covered || sum <= 0 {
		return splitEvenly(totalItems, envs, envs), nil
	}

	p := make(Partition, len(envs))
	assigned := 0
	fastest := 0
	for i, env := range envs {
		count := int(float64(totalItems) * rates[i] / sum)
		p[env.ID] = count
		assigned += count
		if rates[i] > rates[fastest] {
			fastest = i
		}
	}
	p[envs[fastest].ID] += totalItems - assigned
	return p, nil
}
