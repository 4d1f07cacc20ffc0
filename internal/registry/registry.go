package registry

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/vk/pvcircus/internal/circuserr"
	"github.com/vk/pvcircus/internal/ctxlog"
)

var (
	// ErrFinalized is returned by Register after the registry was finalized.
	ErrFinalized = errors.New("registry is finalized")
	// ErrEmptyKey is returned when a batch holds an entry without a key.
	ErrEmptyKey = errors.New("entry key must not be empty")
)

// State is the lifecycle stage of a Registry.
type State int

const (
	StateEmpty State = iota
	StateRegistering
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateRegistering:
		return "registering"
	case StateFinalized:
		return "finalized"
	}
	return "unknown"
}

// Registry holds the entries of a single data-loading session.
type Registry struct {
	mu        sync.RWMutex
	entries   map[string]Entry
	state     State
	finalized *Finalized
}

// New creates and initializes an empty Registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
	}
}

// Register admits a batch of entries atomically. It fails with a
// DuplicateKey error when any key repeats inside the batch or already exists,
// and with a MismatchedMetaKeys error when any meta key resolves neither
// against the store nor against the batch. On failure the store is unchanged.
func (r *Registry) Register(ctx context.Context, batch []Entry) error {
	logger := ctxlog.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateFinalized {
		return ErrFinalized
	}

	if err := r.validateBatch(batch); err != nil {
		logger.Debug("Registry rejected batch.", "batch_size", len(batch), "error", err)
		return err
	}

	for _, e := range batch {
		r.entries[e.Key] = e.clone()
	}
	r.state = StateRegistering
	logger.Debug("Registry admitted batch.", "batch_size", len(batch), "total", len(r.entries))
	return nil
}

// Get returns the entry for key, or a KeyNotFound error.
func (r *Registry) Get(key string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[key]
	if !ok {
		return Entry{}, circuserr.KeyNotFound(key)
	}
	return e.clone(), nil
}

// Keys returns every registered key in lexical order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.entries)
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// State reports the lifecycle stage.
func (r *Registry) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

func sortedKeys(entries map[string]Entry) []string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
