// ABOUTME: Charm Cloud KV implementation of the remote store boundary.
// ABOUTME: Collections are single keys; Sync replicates to Charm Cloud.
package remote

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	badger "github.com/dgraph-io/badger/v3"
)

const dbName = "pulse"

// CharmStore replicates collections through Charm Cloud KV. Writes land in
// the local replica and Sync pushes them up; FetchAll syncs down first so a
// read reflects the remote side.
type CharmStore struct {
	kv *kv.KV
	mu sync.Mutex
}

// OpenCharm opens the Charm KV database for the pulse namespace.
func OpenCharm() (*CharmStore, error) {
	db, err := kv.OpenWithDefaults(dbName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}
	return &CharmStore{kv: db}, nil
}

// ReplaceAll overwrites the remote collection with the given blob.
func (c *CharmStore) ReplaceAll(ctx context.Context, collection string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.kv.Set([]byte(collection), blob); err != nil {
		return fmt.Errorf("set %s: %w", collection, err)
	}
	if err := c.kv.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", collection, err)
	}
	return nil
}

// FetchAll pulls the latest replica state and returns the collection blob.
func (c *CharmStore) FetchAll(ctx context.Context, collection string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.kv.Sync(); err != nil {
		return nil, fmt.Errorf("sync: %w", err)
	}
	blob, err := c.kv.Get([]byte(collection))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", collection, err)
	}
	return blob, nil
}

// Linked reports whether this device is linked to a Charm account.
func (c *CharmStore) Linked(ctx context.Context) bool {
	_, err := c.ID(ctx)
	return err == nil
}

// ID returns the Charm account ID for the linked device.
func (c *CharmStore) ID(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	id, err := cc.ID()
	if err != nil {
		return "", ErrNotLinked
	}
	return id, nil
}

// Close closes the KV database connection.
func (c *CharmStore) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}
