// Package memstore provides an in-memory Store implementation. It is the
// module's default store, suitable for tests, examples, and hosts that keep
// the published set ephemeral and serve documents from another system of
// record.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/didstack/didhub/did"
)

// Store is a mutex-guarded in-memory resource store keyed by DID.
// All methods return deep copies, so mutating a returned resource does not
// affect stored state. The zero value is not usable; use New.
type Store struct {
	mu        sync.RWMutex
	resources map[string]did.Resource
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{resources: make(map[string]did.Resource)}
}

// Save persists a new resource.
// Returns did.ErrConflict if a resource with the same DID already exists.
func (s *Store) Save(_ context.Context, resource did.Resource) error {
	if err := resource.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resources[resource.DID]; ok {
		return fmt.Errorf("save %q: %w", resource.DID, did.ErrConflict)
	}
	s.resources[resource.DID] = resource.Clone()
	return nil
}

// Update replaces an existing resource.
// Returns did.ErrNotFound if no resource with the DID exists.
func (s *Store) Update(_ context.Context, resource did.Resource) error {
	if err := resource.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resources[resource.DID]; !ok {
		return fmt.Errorf("update %q: %w", resource.DID, did.ErrNotFound)
	}
	s.resources[resource.DID] = resource.Clone()
	return nil
}

// FindByID returns the resource for the given DID.
// Returns did.ErrNotFound if the resource does not exist.
func (s *Store) FindByID(_ context.Context, didID string) (*did.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.resources[didID]
	if !ok {
		return nil, fmt.Errorf("find %q: %w", didID, did.ErrNotFound)
	}
	clone := r.Clone()
	return &clone, nil
}

// Query returns all resources matching the filter, ordered by DID for
// deterministic results.
func (s *Store) Query(_ context.Context, filter did.Filter) ([]did.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]did.Resource, 0, len(s.resources))
	for _, r := range s.resources {
		if filter.Matches(r) {
			out = append(out, r.Clone())
		}
	}
	slices.SortFunc(out, func(a, b did.Resource) int {
		return strings.Compare(a.DID, b.DID)
	})
	return out, nil
}

// Delete removes the resource for the given DID.
// Returns did.ErrNotFound if the resource does not exist.
func (s *Store) Delete(_ context.Context, didID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resources[didID]; !ok {
		return fmt.Errorf("delete %q: %w", didID, did.ErrNotFound)
	}
	delete(s.resources, didID)
	return nil
}

// Name identifies this component in health check results.
func (s *Store) Name() string {
	return "memstore"
}

// HealthCheck always reports healthy; the store has no external dependency.
func (s *Store) HealthCheck(_ context.Context) error {
	return nil
}
