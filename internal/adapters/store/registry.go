// Package store keeps published results for retrieval by the test that produced them.
package store

import (
	"slices"
	"sync"

	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResultStore = (*Registry)(nil)

type entryKey struct {
	key  string
	kind domain.ResultKind
}

// Registry maps a test context key and a result kind to the published value.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[entryKey]any
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[entryKey]any)}
}

// Publish stores every kind of result under key, replacing a previous result for the same key.
func (r *Registry) Publish(key string, result *domain.PublishedResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entryKey{key, domain.KindExecution}] = result
	r.entries[entryKey{key, domain.KindLog}] = result.Log
	r.entries[entryKey{key, domain.KindCache}] = result.Cache
	r.entries[entryKey{key, domain.KindProject}] = result.Project
}

// Lookup returns the value of kind published under key.
func (r *Registry) Lookup(key string, kind domain.ResultKind) (any, error) {
	switch kind {
	case domain.KindExecution, domain.KindLog, domain.KindCache, domain.KindProject:
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownResultKind, "unsupported result kind"), "kind", kind.String())
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[entryKey{key, kind}]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrResultNotFound, "no result published"), "key", key)
	}
	return v, nil
}

// ExecutionResult returns the result published for key.
func (r *Registry) ExecutionResult(key string) (*domain.PublishedResult, error) {
	return lookup[*domain.PublishedResult](r, key, domain.KindExecution)
}

// Log returns the log files published for key.
func (r *Registry) Log(key string) (domain.LogFiles, error) {
	return lookup[domain.LogFiles](r, key, domain.KindLog)
}

// Cache returns the cache published for key.
func (r *Registry) Cache(key string) (domain.CacheResult, error) {
	return lookup[domain.CacheResult](r, key, domain.KindCache)
}

// Project returns the project published for key.
func (r *Registry) Project(key string) (domain.ProjectResult, error) {
	return lookup[domain.ProjectResult](r, key, domain.KindProject)
}

// Keys returns the keys of all published results, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries)/4)
	for k := range r.entries {
		if k.kind == domain.KindExecution {
			keys = append(keys, k.key)
		}
	}
	slices.Sort(keys)
	return keys
}

func lookup[T any](r *Registry, key string, kind domain.ResultKind) (T, error) {
	var zero T
	v, err := r.Lookup(key, kind)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, zerr.With(zerr.Wrap(domain.ErrUnknownResultKind, "result has unexpected type"), "kind", kind.String())
	}
	return typed, nil
}
