package optimize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optkit/compute-dispatch/internal/balance"
	"github.com/optkit/compute-dispatch/pkg/devices"
)

func optimizeEnvironments() []devices.Environment {
	return []devices.Environment{
		{ID: "gpu0", Class: devices.ClassAccelerator},
		{ID: "cpu0", Class: devices.ClassGeneralPurpose},
	}
}

func TestNewGridSearchValidatesConfig(t *testing.T) {
	_, err := NewGridSearch(Config{Environments: optimizeEnvironments()})
	assert.Error(t, err)

	_, err = NewGridSearch(Config{Strategy: balance.EvenDistribution{}})
	assert.Error(t, err)
}

func TestGridSearchFindsMinimumPerItem(t *testing.T) {
	gs, err := NewGridSearch(Config{
		Strategy:     balance.EvenDistribution{},
		Environments: optimizeEnvironments(),
	})
	require.NoError(t, err)
	gs.WithBounds(0, 6).WithPoints(61)

	// item i has its minimum at x = i
	batch := &Batch{
		Size: 5,
		Objective: func(item int, x float64) float64 {
			d := x - float64(item)
			return d * d
		},
	}

	result, err := gs.Run(context.Background(), batch)
	require.NoError(t, err)
	require.Len(t, result.Values, 5)

	for item := 0; item < 5; item++ {
		assert.InDelta(t, float64(item), result.Values[item], 1e-9, "item %d", item)
		assert.InDelta(t, 0.0, result.Scores[item], 1e-9, "item %d", item)
	}
	assert.Equal(t, 5, result.Partition.Total())
}

func TestGridSearchRequiresObjective(t *testing.T) {
	gs, err := NewGridSearch(Config{
		Strategy:     balance.EvenDistribution{},
		Environments: optimizeEnvironments(),
	})
	require.NoError(t, err)

	_, err = gs.Run(context.Background(), &Batch{Size: 3})
	assert.Error(t, err)
}

func TestGridSearchRejectsInvertedBounds(t *testing.T) {
	gs, err := NewGridSearch(Config{
		Strategy:     balance.EvenDistribution{},
		Environments: optimizeEnvironments(),
	})
	require.NoError(t, err)
	gs.WithBounds(5, -5)

	_, err = gs.Run(context.Background(), &Batch{
		Size:      1,
		Objective: func(int, float64) float64 { return 0 },
	})
	assert.Error(t, err)
}
