package metrics

import (
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Sample is one throughput measurement for a completed sub-batch on an
// environment
type Sample struct {
	EnvironmentID string
	Items         int
	Elapsed       time.Duration
}

// ItemsPerSecond returns the sample's throughput; zero when the sample is
// degenerate
func (s Sample) ItemsPerSecond() float64 {
	if s.Items <= 0 || s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Items) / s.Elapsed.Seconds()
}

// Recorder accumulates dispatch timing samples per environment. It is safe for
// concurrent use; sub-batches running on parallel device queues record their
// samples as they complete.
type Recorder struct {
	mu sync.RWMutex

	// samples per environment ID, in completion order
	samples map[string][]Sample
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{
		samples: make(map[string][]Sample),
	}
}

// Record appends a sample
func (r *Recorder) Record(s Sample) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples[s.EnvironmentID] = append(r.samples[s.EnvironmentID], s)
}

// Samples returns a copy of the samples recorded for an environment
func (r *Recorder) Samples(environmentID string) []Sample {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recorded := r.samples[environmentID]
	out := make([]Sample, len(recorded))
	copy(out, recorded)
	return out
}

// MeanThroughput returns the mean observed items-per-second for an
// environment, 0 when nothing was recorded
func (r *Recorder) MeanThroughput(environmentID string) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recorded := r.samples[environmentID]
	if len(recorded) == 0 {
		return 0
	}
	rates := make([]float64, 0, len(recorded))
	for _, s := range recorded {
		rates = append(rates, s.ItemsPerSecond())
	}
	return stat.Mean(rates, nil)
}

// Environments returns the IDs with at least one recorded sample
func (r *Recorder) Environments() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.samples))
	for id := range r.samples {
		ids = append(ids, id)
	}
	return ids
}
