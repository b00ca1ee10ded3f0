// apps/go-server/internal/progress/store.go
//
// Key-value persistence contract for player progress.
// Implementations may be backed by memory (testing) or SQLite.
// Absent keys are not errors: a level that was never played simply has
// no record, and readers default to incomplete/zero.

package progress

import (
	"context"
	"fmt"
)

// Store defines the persistence interface for progress records.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes or overwrites a key.
	Set(ctx context.Context, key, value string) error

	// Delete removes the given keys. Missing keys are not errors.
	// On partial failure the store must remain enumerable so a caller
	// can retry the rest.
	Delete(ctx context.Context, keys ...string) error

	// Keys enumerates every stored key.
	Keys(ctx context.Context) ([]string, error)
}

// StoreError wraps an underlying persistence failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("progress store: %s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }
