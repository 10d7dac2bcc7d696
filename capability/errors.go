package capability

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error patterns.
// These allow both errors.Is() checks and errors.As() for details.
var (
	// ErrUnknownCapability is returned when a strict caller names a
	// capability the registry was never seeded with.
	ErrUnknownCapability = errors.New("unknown capability")

	// ErrEmptyTable is returned when a bulk import carries no records.
	ErrEmptyTable = errors.New("empty capability table")
)

// UnknownCapabilityError carries the offending name.
type UnknownCapabilityError struct {
	Name string
}

func (e *UnknownCapabilityError) Error() string {
	return fmt.Sprintf("unknown capability %q", e.Name)
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, capability.ErrUnknownCapability)
func (e *UnknownCapabilityError) Is(target error) bool {
	return target == ErrUnknownCapability
}
