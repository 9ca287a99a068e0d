package balance

import "errors"

var (
	// ErrNoEnvironments is returned when a partition is requested over an
	// empty environment list
	ErrNoEnvironments = errors.New("no compute environments available")

	// ErrNegativeItems is returned when a partition is requested for a
	// negative number of work items
	ErrNegativeItems = errors.New("total work items must be non-negative")

	// ErrEnvironmentNotFound is returned when a strategy targets an
	// environment absent from the supplied list
	ErrEnvironmentNotFound = errors.New("environment not found")
)
