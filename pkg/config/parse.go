package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/optkit/compute-dispatch/pkg/devices"
)

// ParseConfigYAML parses a Config from YAML bytes, applies defaults and
// validates it. This is used for APIs where config is provided as payload
// (not via filesystem).
func ParseConfigYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}

	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// ParseConfigYAMLString parses a Config from a YAML string
func ParseConfigYAMLString(yamlText string) (*Config, error) {
	return ParseConfigYAML([]byte(yamlText))
}

// validateConfig performs validation on the configuration
func validateConfig(cfg *Config) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	environmentIDs := make(map[string]bool)
	for _, env := range cfg.Environments {
		if env.ID == "" {
			return fmt.Errorf("environment id cannot be empty")
		}
		if environmentIDs[env.ID] {
			return fmt.Errorf("duplicate environment id: %s", env.ID)
		}
		environmentIDs[env.ID] = true
		if _, err := devices.ParseClass(env.Class); err != nil {
			return fmt.Errorf("environment %s: %w", env.ID, err)
		}
		if env.ThroughputHint < 0 {
			return fmt.Errorf("environment %s: throughput_hint cannot be negative", env.ID)
		}
	}

	if cfg.LoadBalance.SmoothingAlpha < 0 || cfg.LoadBalance.SmoothingAlpha > 1 {
		return fmt.Errorf("load_balance.smoothing_alpha must be in [0, 1], got %v", cfg.LoadBalance.SmoothingAlpha)
	}
	if cfg.LoadBalance.Strategy == "PreferSpecificEnvironment" {
		if cfg.LoadBalance.PreferredEnvironment == "" {
			return fmt.Errorf("load_balance.preferred_environment is required for PreferSpecificEnvironment")
		}
		if len(cfg.Environments) > 0 && !environmentIDs[cfg.LoadBalance.PreferredEnvironment] {
			return fmt.Errorf("load_balance.preferred_environment %q is not a declared environment", cfg.LoadBalance.PreferredEnvironment)
		}
	}

	proposalParameters := make(map[string]bool)
	for _, p := range cfg.Sampling.Proposals {
		if p.Parameter == "" {
			return fmt.Errorf("proposal parameter name cannot be empty")
		}
		if proposalParameters[p.Parameter] {
			return fmt.Errorf("duplicate proposal for parameter: %s", p.Parameter)
		}
		proposalParameters[p.Parameter] = true
		if p.Type != "gaussian" {
			return fmt.Errorf("proposal %s: unknown type %q", p.Parameter, p.Type)
		}
		if p.Std <= 0 {
			return fmt.Errorf("proposal %s: std must be positive", p.Parameter)
		}
	}

	return nil
}

// DeclaredEnvironments converts the declared environment list to the device
// model consumed by the load-balance strategies
func (cfg *Config) DeclaredEnvironments() []devices.Environment {
	envs := make([]devices.Environment, 0, len(cfg.Environments))
	for _, e := range cfg.Environments {
		class, err := devices.ParseClass(e.Class)
		if err != nil {
			// validateConfig rejects unknown classes before this is reachable
			continue
		}
		envs = append(envs, devices.Environment{
			ID:             e.ID,
			Class:          class,
			ThroughputHint: e.ThroughputHint,
		})
	}
	return envs
}
