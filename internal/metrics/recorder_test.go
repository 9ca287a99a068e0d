package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleItemsPerSecond(t *testing.T) {
	s := Sample{EnvironmentID: "gpu0", Items: 500, Elapsed: 2 * time.Second}
	assert.InDelta(t, 250, s.ItemsPerSecond(), 1e-9)

	assert.Zero(t, Sample{Items: 0, Elapsed: time.Second}.ItemsPerSecond())
	assert.Zero(t, Sample{Items: 10, Elapsed: 0}.ItemsPerSecond())
}

func TestRecorderMeanThroughput(t *testing.T) {
	r := NewRecorder()
	r.Record(Sample{EnvironmentID: "gpu0", Items: 100, Elapsed: time.Second})
	r.Record(Sample{EnvironmentID: "gpu0", Items: 300, Elapsed: time.Second})
	r.Record(Sample{EnvironmentID: "cpu0", Items: 50, Elapsed: time.Second})

	assert.InDelta(t, 200, r.MeanThroughput("gpu0"), 1e-9)
	assert.InDelta(t, 50, r.MeanThroughput("cpu0"), 1e-9)
	assert.Zero(t, r.MeanThroughput("unknown"))
}

func TestRecorderSamplesAreCopies(t *testing.T) {
	r := NewRecorder()
	r.Record(Sample{EnvironmentID: "gpu0", Items: 10, Elapsed: time.Second})

	samples := r.Samples("gpu0")
	require.Len(t, samples, 1)
	samples[0].Items = 999

	assert.Equal(t, 10, r.Samples("gpu0")[0].Items)
}

func TestRecorderEnvironments(t *testing.T) {
	r := NewRecorder()
	assert.Empty(t, r.Environments())

	r.Record(Sample{EnvironmentID: "a", Items: 1, Elapsed: time.Millisecond})
	r.Record(Sample{EnvironmentID: "b", Items: 1, Elapsed: time.Millisecond})
	assert.ElementsMatch(t, []string{"a", "b"}, r.Environments())
}
