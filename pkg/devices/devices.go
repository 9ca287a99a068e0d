package devices

import (
	"fmt"
)

// Class identifies the broad capability class of a compute environment
type Class string

const (
	// ClassAccelerator marks dedicated accelerator devices (GPUs and similar)
	ClassAccelerator Class = "accelerator"
	// ClassGeneralPurpose marks general-purpose devices (host CPUs)
	ClassGeneralPurpose Class = "general-purpose"
)

// ParseClass parses a device class from its string form
func ParseClass(s string) (Class, error) {
	switch Class(s) {
	case ClassAccelerator, ClassGeneralPurpose:
		return Class(s), nil
	default:
		return "", fmt.Errorf("unknown device class %q (must be %s or %s)", s, ClassAccelerator, ClassGeneralPurpose)
	}
}

// Environment describes a single compute device/queue available for dispatch.
// Environments are enumerated by the backend binding at startup and are
// read-only to the dispatch core: strategies rank and select among them but
// never create or destroy them.
type Environment struct {
	// ID uniquely identifies the environment within one enumeration
	ID string
	// Class is the device capability class
	Class Class
	// ThroughputHint is a declared relative throughput in items per second,
	// 0 when unknown
	ThroughputHint float64
}

// FilterByClass returns the environments of the given class, preserving the
// input order
func FilterByClass(envs []Environment, class Class) []Environment {
	var filtered []Environment
	for _, env := range envs {
		if env.Class == class {
			filtered = append(filtered, env)
		}
	}
	return filtered
}

// FindByID returns the environment with the given ID, if present
func FindByID(envs []Environment, id string) (Environment, bool) {
	for _, env := range envs {
		if env.ID == id {
			return env, true
		}
	}
	return Environment{}, false
}

// IDs returns the environment IDs in input order
func IDs(envs []Environment) []string {
	ids := make([]string, len(envs))
	for i, env := range envs {
		ids[i] = env.ID
	}
	return ids
}
