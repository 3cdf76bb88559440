package publisher

import (
	"strings"
	"sync"
)

// Registry routes DIDs to the publisher registered for their method.
// Hosts register publishers at wiring time and may resolve concurrently
// afterwards.
type Registry struct {
	mu         sync.RWMutex
	publishers map[string]DocumentPublisher
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{publishers: make(map[string]DocumentPublisher)}
}

// AddPublisher registers pub for a DID method prefix such as "did:web".
// Methods match case-insensitively. Registering the same method again
// replaces the earlier publisher.
func (r *Registry) AddPublisher(method string, pub DocumentPublisher) {
	prefix := strings.ToLower(method)
	if !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.publishers[prefix] = pub
}

// PublisherFor returns the publisher whose registered method matches didID.
// When several registered methods match, the longest prefix wins. Returns
// false when no registered publisher matches.
func (r *Registry) PublisherFor(didID string) (DocumentPublisher, bool) {
	id := strings.ToLower(didID)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		best    DocumentPublisher
		bestLen = -1
	)
	for prefix, pub := range r.publishers {
		if strings.HasPrefix(id, prefix) && len(prefix) > bestLen {
			best = pub
			bestLen = len(prefix)
		}
	}

	if best == nil {
		return nil, false
	}
	return best, true
}
