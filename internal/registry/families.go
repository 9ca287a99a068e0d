package registry

import (
	"github.com/optkit/compute-dispatch/internal/balance"
	"github.com/optkit/compute-dispatch/internal/filter"
	"github.com/optkit/compute-dispatch/internal/optimize"
)

var (
	optimizers    = newFamily[optimize.Factory]("optimizers")
	smoothers     = newFamily[filter.Factory]("smoothers")
	loadBalancers = newFamily[balance.Factory]("load balancers")
)

func init() {
	optimizers.register("GridSearch", func(cfg optimize.Config) (optimize.Routine, error) {
		return optimize.NewGridSearch(cfg)
	})
	optimizers.register("Metropolis", func(cfg optimize.Config) (optimize.Routine, error) {
		return optimize.NewMetropolis(cfg)
	})

	smoothers.register("Gaussian", func() filter.Smoother { return filter.GaussianFilter{} })
	smoothers.register("Mean", func() filter.Smoother { return filter.MeanFilter{} })
	smoothers.register("Median", func() filter.Smoother { return filter.MedianFilter{} })

	loadBalancers.register("EvenDistribution", func(balance.Options) (balance.Strategy, error) {
		return balance.EvenDistribution{}, nil
	})
	loadBalancers.register("RuntimeLoadBalancing", func(opts balance.Options) (balance.Strategy, error) {
		s := balance.NewRuntimeLoadBalancing()
		if opts.SmoothingAlpha > 0 {
			s.WithAlpha(opts.SmoothingAlpha)
		}
		return s, nil
	})
	loadBalancers.register("PreferGPU", func(balance.Options) (balance.Strategy, error) {
		return balance.PreferGPU{}, nil
	})
	loadBalancers.register("PreferCPU", func(balance.Options) (balance.Strategy, error) {
		return balance.PreferCPU{}, nil
	})
	loadBalancers.register("PreferSpecificEnvironment", func(opts balance.Options) (balance.Strategy, error) {
		s, err := balance.NewPreferSpecificEnvironment(opts.PreferredEnvironment)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// GetOptimizer returns the factory registered under the given optimizer name
func GetOptimizer(name string) (optimize.Factory, error) {
	return optimizers.get(name)
}

// GetSmoother returns the factory registered under the given smoother name
func GetSmoother(name string) (filter.Factory, error) {
	return smoothers.get(name)
}

// GetLoadBalanceStrategy returns the factory registered under the given
// strategy name
func GetLoadBalanceStrategy(name string) (balance.Factory, error) {
	return loadBalancers.get(name)
}

// Optimizers lists the registered optimizer names in registration order
func Optimizers() []string {
	return optimizers.names()
}

// Smoothers lists the registered smoother names in registration order
func Smoothers() []string {
	return smoothers.names()
}

// LoadBalanceStrategies lists the registered strategy names in registration
// order
func LoadBalanceStrategies() []string {
	return loadBalancers.names()
}
