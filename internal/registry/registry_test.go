package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optkit/compute-dispatch/internal/balance"
	"github.com/optkit/compute-dispatch/internal/optimize"
	"github.com/optkit/compute-dispatch/internal/proposal"
	"github.com/optkit/compute-dispatch/pkg/devices"
)

func TestGetOptimizerNotFound(t *testing.T) {
	_, err := GetOptimizer("NonexistentAlgorithm")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "NonexistentAlgorithm", notFound.Name)
	assert.Equal(t, "optimizers", notFound.Family)
	assert.Contains(t, err.Error(), "NonexistentAlgorithm")
	assert.Contains(t, err.Error(), "optimizers")
}

func TestNotFoundErrorsNameTheirFamily(t *testing.T) {
	_, err := GetSmoother("Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smoothers")

	_, err = GetLoadBalanceStrategy("Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load balancers")
}

func TestLookupReturnsFactoriesWithoutConstructing(t *testing.T) {
	// PreferSpecificEnvironment with an empty target only fails at
	// construction time, so the lookup itself must succeed
	factory, err := GetLoadBalanceStrategy("PreferSpecificEnvironment")
	require.NoError(t, err)

	_, err = factory(balance.Options{})
	assert.Error(t, err)

	s, err := factory(balance.Options{PreferredEnvironment: "gpu0"})
	require.NoError(t, err)
	assert.Equal(t, "PreferSpecificEnvironment", s.Name())
}

func TestRegisteredStrategiesConstruct(t *testing.T) {
	for _, name := range LoadBalanceStrategies() {
		factory, err := GetLoadBalanceStrategy(name)
		require.NoError(t, err, name)

		s, err := factory(balance.Options{PreferredEnvironment: "gpu0", SmoothingAlpha: 0.5})
		require.NoError(t, err, name)
		assert.Equal(t, name, s.Name())
	}
}

func TestRegisteredSmoothersConstruct(t *testing.T) {
	for _, name := range Smoothers() {
		factory, err := GetSmoother(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, factory().Name())
	}
}

func TestRegisteredOptimizersConstruct(t *testing.T) {
	cfg := optimize.Config{
		Strategy:     balance.EvenDistribution{},
		Environments: []devices.Environment{{ID: "cpu0", Class: devices.ClassGeneralPurpose}},
		Proposal:     proposal.NewGaussian(1.0, true),
	}
	for _, name := range Optimizers() {
		factory, err := GetOptimizer(name)
		require.NoError(t, err, name)

		routine, err := factory(cfg)
		require.NoError(t, err, name)
		assert.Equal(t, name, routine.Name())
	}
}

func TestFamilyListOrder(t *testing.T) {
	assert.Equal(t, []string{"GridSearch", "Metropolis"}, Optimizers())
	assert.Equal(t, []string{"Gaussian", "Mean", "Median"}, Smoothers())
	assert.Equal(t, []string{
		"EvenDistribution",
		"RuntimeLoadBalancing",
		"PreferGPU",
		"PreferCPU",
		"PreferSpecificEnvironment",
	}, LoadBalanceStrategies())
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	f := newFamily[int]("test family")
	f.register("entry", 1)
	assert.Panics(t, func() { f.register("entry", 2) })
}
