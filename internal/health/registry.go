// Package health provides a thread-safe health check registry for tracking
// the health of the module's dependencies. Hosts surface the results through
// their own readiness probes.
package health

import (
	"context"
	"sync"
)

// maxConcurrentChecks bounds the number of health checks running at once.
const maxConcurrentChecks = 4

// Checker is implemented by any component that can report its health.
// Examples: resource stores, guarded remote stores.
type Checker interface {
	// Name returns a human-readable identifier for this component
	// (e.g., "memstore", "resource-store").
	Name() string

	// HealthCheck performs the health check and returns nil if healthy,
	// or an error describing the failure.
	// Implementations should respect context cancellation and deadlines.
	HealthCheck(ctx context.Context) error
}

// Registry is a thread-safe health check registry. Components that implement
// [Checker] are registered at wiring time and checked on demand.
type Registry struct {
	mu       sync.RWMutex
	checkers []Checker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks and returns results keyed by
// checker name. Nil values indicate healthy components. Checks run
// concurrently over a bounded worker pool; every checker is invoked even when
// ctx is already done, and each one is responsible for honoring cancellation.
// When two checkers share a name, the result of the later registration wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]Checker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	// Record per-index so registration order survives the merge below.
	errs := make([]error, len(checkers))
	sem := make(chan struct{}, maxConcurrentChecks)
	var wg sync.WaitGroup

	for i, c := range checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			errs[i] = c.HealthCheck(ctx)
		}()
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}
