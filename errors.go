package cdkeygen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAlphabet means fewer than two usable characters remained
	// after normalization. A single-character alphabet cannot produce
	// meaningful randomness.
	ErrInvalidAlphabet = errors.New("cdkeygen: alphabet too small")

	// ErrInvalidConfig means a non-positive count or length, or a pattern
	// without a placeholder.
	ErrInvalidConfig = errors.New("cdkeygen: invalid config")
)

func errInvalidConfigf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

// CapacityError reports a unique-mode request for more keys than the
// estimated keyspace can hold. The estimate is approximate and clamped at
// CapacityCeiling; requests at or above the ceiling are never rejected.
type CapacityError struct {
	Requested int
	Capacity  uint64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("cdkeygen: requested %d unique keys, but keyspace holds only about %d",
		e.Requested, e.Capacity)
}
