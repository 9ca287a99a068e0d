package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/optkit/compute-dispatch/internal/balance"
	"github.com/optkit/compute-dispatch/internal/kernel"
	"github.com/optkit/compute-dispatch/internal/proposal"
	"github.com/optkit/compute-dispatch/internal/registry"
	"github.com/optkit/compute-dispatch/pkg/config"
	"github.com/optkit/compute-dispatch/pkg/logger"
)

func main() {
	var configPath string
	var items int
	var strategyName string
	var logLevel string
	var list bool
	var renderKernels bool

	flag.StringVar(&configPath, "config", "", "path to the run configuration file")
	flag.IntVar(&items, "items", 0, "number of work items to partition")
	flag.StringVar(&strategyName, "strategy", "", "load-balance strategy name (overrides config)")
	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.BoolVar(&list, "list", false, "list registered implementations and exit")
	flag.BoolVar(&renderKernels, "render-kernels", false, "render the configured proposal kernel source")
	flag.Parse()

	logger.SetDefault(logger.NewText(logLevel, os.Stdout))

	if list {
		printRegistries()
		return
	}

	if configPath == "" {
		fmt.Fprintln(os.Stderr, "a -config file is required (or use -list)")
		os.Exit(2)
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if renderKernels {
		if err := renderProposalKernels(cfg); err != nil {
			logger.Error("failed to render kernels", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := printPartition(cfg, strategyName, items); err != nil {
		logger.Error("failed to compute partition", "error", err)
		os.Exit(1)
	}
}

func printRegistries() {
	fmt.Printf("optimizers:     %s\n", strings.Join(registry.Optimizers(), ", "))
	fmt.Printf("smoothers:      %s\n", strings.Join(registry.Smoothers(), ", "))
	fmt.Printf("load balancers: %s\n", strings.Join(registry.LoadBalanceStrategies(), ", "))
}

// printPartition resolves the strategy by name and prints its split of the
// requested items across the declared environments
func printPartition(cfg *config.Config, strategyName string, items int) error {
	if strategyName == "" {
		strategyName = cfg.LoadBalance.Strategy
	}
	factory, err := registry.GetLoadBalanceStrategy(strategyName)
	if err != nil {
		return err
	}
	strategy, err := factory(balance.Options{
		PreferredEnvironment: cfg.LoadBalance.PreferredEnvironment,
		SmoothingAlpha:       cfg.LoadBalance.SmoothingAlpha,
	})
	if err != nil {
		return err
	}

	envs := cfg.DeclaredEnvironments()
	partition, err := strategy.Partition(items, envs)
	if err != nil {
		return err
	}

	fmt.Printf("strategy %s, %d items:\n", strategy.Name(), items)
	for _, env := range envs {
		fmt.Printf("  %-16s %-16s %d\n", env.ID, env.Class, partition[env.ID])
	}
	return nil
}

// renderProposalKernels composes the configured proposals into one generated
// program, namespacing each proposal's functions with its model parameter
// name, and prints the source
func renderProposalKernels(cfg *config.Config) error {
	if len(cfg.Sampling.Proposals) == 0 {
		return fmt.Errorf("no proposals configured")
	}

	program := kernel.NewProgram()
	var param proposal.Parameter
	if err := program.Add(param.UpdateFunction()); err != nil {
		return err
	}
	for _, pc := range cfg.Sampling.Proposals {
		prop := proposal.NewGaussian(pc.Std, *pc.Adaptable)
		if err := program.Add(prop.JumpFunction().Qualify(pc.Parameter)); err != nil {
			return err
		}
		if err := program.Add(prop.LogPDFFunction().Qualify(pc.Parameter)); err != nil {
			return err
		}
	}

	fmt.Println(program.Source())
	return nil
}
