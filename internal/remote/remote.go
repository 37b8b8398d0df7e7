// ABOUTME: Remote store contract for whole-collection replication.
// ABOUTME: The core never issues queries; it replaces and fetches collections.
package remote

import (
	"context"
	"errors"
)

// ErrNotLinked is returned when the device has no authenticated account link.
var ErrNotLinked = errors.New("remote: account not linked")

// ErrNotFound is returned when a collection has never been pushed.
var ErrNotFound = errors.New("remote: collection not found")

// Store is the remote document store boundary. Implementations operate on
// whole collections only; there is no per-record surface.
type Store interface {
	// ReplaceAll overwrites the remote collection with the given blob.
	ReplaceAll(ctx context.Context, collection string, blob []byte) error
	// FetchAll returns the remote collection blob, ErrNotFound if absent.
	FetchAll(ctx context.Context, collection string) ([]byte, error)
	// Linked reports whether the device is linked to an account. A true
	// return is the authentication signal that triggers an initial push.
	Linked(ctx context.Context) bool
	// ID returns the remote account identifier.
	ID(ctx context.Context) (string, error)
	// Close releases the underlying connection.
	Close() error
}
