package config

// Config is the top-level configuration for a dispatch run
type Config struct {
	// LogLevel controls logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Seed seeds the random sources used by sampling routines; 0 selects a
	// time-based seed
	Seed int64 `yaml:"seed"`

	// Environments declares the compute environments available to the run.
	// This mirrors the backend enumeration and is what strategies partition
	// over.
	Environments []EnvironmentConfig `yaml:"environments"`

	// LoadBalance selects and configures the partitioning strategy
	LoadBalance LoadBalanceConfig `yaml:"load_balance"`

	// Sampling configures the proposal kernels used by sampling routines
	Sampling SamplingConfig `yaml:"sampling"`
}

// EnvironmentConfig declares one compute environment
type EnvironmentConfig struct {
	// ID uniquely identifies the environment
	ID string `yaml:"id"`
	// Class is the device class: accelerator or general-purpose
	Class string `yaml:"class"`
	// ThroughputHint is an optional declared throughput in items per second
	ThroughputHint float64 `yaml:"throughput_hint"`
}

// LoadBalanceConfig selects a load-balance strategy by registry name
type LoadBalanceConfig struct {
	// Strategy is the registry name, e.g. EvenDistribution or PreferGPU
	Strategy string `yaml:"strategy"`
	// PreferredEnvironment targets PreferSpecificEnvironment
	PreferredEnvironment string `yaml:"preferred_environment"`
	// SmoothingAlpha is the EWMA weight for RuntimeLoadBalancing
	SmoothingAlpha float64 `yaml:"smoothing_alpha"`
}

// SamplingConfig configures the proposal kernels of a sampling run
type SamplingConfig struct {
	Proposals []ProposalConfig `yaml:"proposals"`
}

// ProposalConfig configures one proposal kernel, bound to a named model
// parameter
type ProposalConfig struct {
	// Parameter is the model parameter this proposal generates jumps for;
	// it also namespaces the generated kernel functions
	Parameter string `yaml:"parameter"`
	// Type is the proposal kind; currently gaussian
	Type string `yaml:"type"`
	// Std is the initial standard deviation for gaussian proposals
	Std float64 `yaml:"std"`
	// Adaptable controls runtime adaptation; defaults to true
	Adaptable *bool `yaml:"adaptable"`
}

// DefaultConfig returns a configuration with all defaults applied and no
// environments declared
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LoadBalance.Strategy == "" {
		cfg.LoadBalance.Strategy = "EvenDistribution"
	}
	for i := range cfg.Sampling.Proposals {
		p := &cfg.Sampling.Proposals[i]
		if p.Type == "" {
			p.Type = "gaussian"
		}
		if p.Std == 0 {
			p.Std = 1.0
		}
		if p.Adaptable == nil {
			adaptable := true
			p.Adaptable = &adaptable
		}
	}
}
