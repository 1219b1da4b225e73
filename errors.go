package hypermedia

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrMissingRelationResolver indicates no relation resolver was injected.
	ErrMissingRelationResolver = errors.New("missing relation resolver")

	// ErrMissingMessageResolver indicates the link relation message resolver
	// could not be looked up.
	ErrMissingMessageResolver = errors.New("missing message resolver")

	// ErrMapperFrozen indicates a mutation was attempted on a frozen Mapper.
	ErrMapperFrozen = errors.New("mapper frozen")
)

// ConfigError reports a missing or unusable registration dependency. It is
// surfaced at startup and aborts the whole registration pass.
type ConfigError struct {
	Err      error  // Underlying sentinel error
	Resource string // Named resource that was missing, if any
	Cause    error  // Original lookup error, if any
}

func (e *ConfigError) Error() string {
	switch {
	case e.Resource != "" && e.Cause != nil:
		return fmt.Sprintf("%s %q: %v", e.Err.Error(), e.Resource, e.Cause)
	case e.Resource != "":
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Resource)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	default:
		return e.Err.Error()
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for missing dependency scenarios.
func newConfigError(sentinel error, resource string) error {
	return &ConfigError{
		Err:      sentinel,
		Resource: resource,
	}
}
