package balance

import (
	"fmt"

	"github.com/optkit/compute-dispatch/pkg/devices"
)

// PreferSpecificEnvironment assigns all work to a single named environment.
// Partition fails when that environment is absent from the supplied list, so
// a misconfigured target can never produce a partial assignment.
type PreferSpecificEnvironment struct {
	environmentID string
}

// NewPreferSpecificEnvironment creates a strategy targeting the environment
// with the given ID
func NewPreferSpecificEnvironment(environmentID string) (*PreferSpecificEnvironment, error) {
	if environmentID == "" {
		return nil, fmt.Errorf("preferred environment ID must not be empty")
	}
	return &PreferSpecificEnvironment{environmentID: environmentID}, nil
}

// Name returns the registry name of this strategy
func (*PreferSpecificEnvironment) Name() string {
	return "PreferSpecificEnvironment"
}

// EnvironmentID returns the targeted environment ID
func (s *PreferSpecificEnvironment) EnvironmentID() string {
	return s.environmentID
}

// Partition assigns all items to the targeted environment and zero to every
// other supplied environment
func (s *PreferSpecificEnvironment) Partition(totalItems int, envs []devices.Environment) (Partition, error) {
	if err := validateArgs(totalItems, envs); err != nil {
		return nil, err
	}
	if _, found := devices.FindByID(envs, s.environmentID); !found {
		return nil, fmt.Errorf("environment %q: %w", s.environmentID, ErrEnvironmentNotFound)
	}
	p := make(Partition, len(envs))
	for _, env := range envs {
		p[env.ID] = 0
	}
	p[s.environmentID] = totalItems
	return p, nil
}
