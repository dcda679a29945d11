// Package seenstore tracks the keys already produced within one generation
// run, backing duplicate rejection in unique mode. A store lives for exactly
// one run and is discarded with it; nothing persists across calls.
package seenstore

// Store is a check-and-insert set of strings. Implementations do not need to
// be safe for concurrent use: a generation run has exactly one writer.
type Store interface {
	// Add records key and reports whether it was absent before the call.
	Add(key string) (added bool, err error)
	// Len returns the number of recorded keys.
	Len() int
	// Close releases resources (no-op ok).
	Close() error
}
