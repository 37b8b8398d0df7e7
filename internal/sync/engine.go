// ABOUTME: Sync engine reconciling local collections with the remote store.
// ABOUTME: Whole-collection last-write-wins; one in-flight sync per collection.
package sync

import (
	"context"
	"errors"
	"fmt"
	gosync "sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pulsekit/pulse/internal/remote"
	"github.com/pulsekit/pulse/internal/store"
)

// DefaultTimeout bounds a single push or pull network operation.
const DefaultTimeout = 30 * time.Second

// Local is the engine's view of local storage: raw collection blobs in and
// out. Import must validate before replacing, so a failed pull leaves local
// collections untouched.
type Local interface {
	ExportCollection(name string) ([]byte, error)
	ImportCollection(name string, blob []byte) error
}

// State describes a collection's sync lifecycle.
type State string

const (
	StateIdle    State = "idle"
	StateSyncing State = "syncing"
	StateSynced  State = "synced"
	StateFailed  State = "failed"
)

// Status is the user-visible sync status for one collection. Failures are
// transient and recorded here rather than propagated.
type Status struct {
	State     State
	LastSync  time.Time
	LastError string
}

type opKind int

const (
	opPush opKind = iota
	opPull
)

type op struct {
	kind opKind
	done func(error)
}

// Engine serializes push/pull operations per collection. Operations are
// fire-and-forget: callers get completion via the done callback. A request
// arriving while a sync is in flight is queued, never dropped or replaced.
type Engine struct {
	remote  remote.Store
	local   Local
	logger  *log.Logger
	timeout time.Duration

	mu       gosync.Mutex
	inflight map[string]bool
	pending  map[string][]op
	status   map[string]Status
}

// NewEngine creates a sync engine. A zero timeout uses DefaultTimeout.
func NewEngine(r remote.Store, l Local, timeout time.Duration, logger *log.Logger) *Engine {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		remote:   r,
		local:    l,
		logger:   logger,
		timeout:  timeout,
		inflight: make(map[string]bool),
		pending:  make(map[string][]op),
		status:   make(map[string]Status),
	}
}

// Push replicates one local collection to the remote store without blocking.
func (e *Engine) Push(collection string, done func(error)) {
	e.enqueue(collection, op{kind: opPush, done: done})
}

// Pull fetches one remote collection and replaces the local one without
// blocking. Local state is only replaced after a complete, valid fetch.
func (e *Engine) Pull(collection string, done func(error)) {
	e.enqueue(collection, op{kind: opPull, done: done})
}

// PushAll pushes every collection; done receives the joined errors once all
// pushes finish.
func (e *Engine) PushAll(done func(error)) {
	e.fanOut(opPush, done)
}

// PullAll pulls every collection; done receives the joined errors once all
// pulls finish.
func (e *Engine) PullAll(done func(error)) {
	e.fanOut(opPull, done)
}

// OnLinked is the authentication signal: when the remote reports a linked
// account, the entire local history is pushed up.
func (e *Engine) OnLinked(ctx context.Context, done func(error)) {
	if !e.remote.Linked(ctx) {
		if done != nil {
			done(remote.ErrNotLinked)
		}
		return
	}
	e.PushAll(done)
}

// Status returns the current sync status for a collection.
func (e *Engine) Status(collection string) Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.status[collection]
	if !ok {
		return Status{State: StateIdle}
	}
	return st
}

func (e *Engine) fanOut(kind opKind, done func(error)) {
	var (
		mu   gosync.Mutex
		errs []error
		left = len(store.Collections)
	)
	each := func(err error) {
		mu.Lock()
		if err != nil {
			errs = append(errs, err)
		}
		left--
		finished := left == 0
		mu.Unlock()
		if finished && done != nil {
			done(errors.Join(errs...))
		}
	}
	for _, c := range store.Collections {
		e.enqueue(c, op{kind: kind, done: each})
	}
}

func (e *Engine) enqueue(collection string, o op) {
	e.mu.Lock()
	e.pending[collection] = append(e.pending[collection], o)
	if e.inflight[collection] {
		e.mu.Unlock()
		return
	}
	e.inflight[collection] = true
	e.mu.Unlock()

	go e.drain(collection)
}

// drain runs queued operations for one collection to completion, in order.
// An in-flight sync is never cancelled; later requests wait their turn.
func (e *Engine) drain(collection string) {
	for {
		e.mu.Lock()
		queue := e.pending[collection]
		if len(queue) == 0 {
			e.inflight[collection] = false
			e.mu.Unlock()
			return
		}
		next := queue[0]
		e.pending[collection] = queue[1:]
		e.setStatusLocked(collection, Status{State: StateSyncing, LastSync: e.status[collection].LastSync})
		e.mu.Unlock()

		err := e.run(collection, next.kind)

		e.mu.Lock()
		if err != nil {
			e.setStatusLocked(collection, Status{
				State:     StateFailed,
				LastSync:  e.status[collection].LastSync,
				LastError: err.Error(),
			})
		} else {
			e.setStatusLocked(collection, Status{State: StateSynced, LastSync: time.Now()})
		}
		e.mu.Unlock()

		if err != nil {
			e.logger.Warn("sync failed", "collection", collection, "err", err)
		}
		if next.done != nil {
			next.done(err)
		}
	}
}

func (e *Engine) run(collection string, kind opKind) error {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	switch kind {
	case opPush:
		blob, err := e.local.ExportCollection(collection)
		if err != nil {
			return fmt.Errorf("export %s: %w", collection, err)
		}
		if err := e.remote.ReplaceAll(ctx, collection, blob); err != nil {
			return fmt.Errorf("push %s: %w", collection, err)
		}
		return nil

	case opPull:
		blob, err := e.remote.FetchAll(ctx, collection)
		if errors.Is(err, remote.ErrNotFound) {
			// Nothing pushed yet; local state stands.
			return nil
		}
		if err != nil {
			return fmt.Errorf("fetch %s: %w", collection, err)
		}
		if err := e.local.ImportCollection(collection, blob); err != nil {
			return fmt.Errorf("apply %s: %w", collection, err)
		}
		return nil
	}
	return nil
}

func (e *Engine) setStatusLocked(collection string, st Status) {
	e.status[collection] = st
}
