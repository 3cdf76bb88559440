// Package store defines the resource store port the publisher depends on.
// Implementations live in sub-packages (store/memstore); store/guard wraps
// any implementation with resilience middleware for remote-backed stores.
package store

import (
	"context"

	"github.com/didstack/didhub/did"
)

// Store defines the persistence port for DID resources, keyed by DID.
// Implementations must be safe for concurrent use; callers above this port
// hold no locks.
type Store interface {
	// Save persists a new resource.
	// Returns did.ErrConflict if a resource with the same DID already exists,
	// or did.ErrValidation if the resource fails validation.
	Save(ctx context.Context, resource did.Resource) error

	// Update replaces an existing resource.
	// Returns did.ErrNotFound if no resource with the DID exists,
	// or did.ErrValidation if the resource fails validation.
	Update(ctx context.Context, resource did.Resource) error

	// FindByID returns the resource for the given DID.
	// Returns did.ErrNotFound if the resource does not exist.
	FindByID(ctx context.Context, didID string) (*did.Resource, error)

	// Query returns all resources matching the given filter criteria.
	// Pass a zero-value Filter to list all resources.
	Query(ctx context.Context, filter did.Filter) ([]did.Resource, error)

	// Delete removes the resource for the given DID.
	// Returns did.ErrNotFound if the resource does not exist.
	Delete(ctx context.Context, didID string) error
}
