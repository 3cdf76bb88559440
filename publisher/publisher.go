// Package publisher flips the publication state of DID documents in a
// backing resource store and exposes the set of currently published
// documents. Serving the documents to resolvers (for did:web, over HTTPS
// well-known paths) is the host's concern; publication here is the state
// flip the host observes.
package publisher

import (
	"context"

	"github.com/didstack/didhub/did"
)

// DocumentPublisher defines the publication port for one DID method.
// Implemented by Local for did:web; hosts route DIDs to the right
// publisher through a Registry or CanHandle.
type DocumentPublisher interface {
	// CanHandle reports whether this publisher manages documents
	// for the given DID.
	CanHandle(didID string) bool

	// Publish marks the DID's document as published in the store.
	// Returns an error wrapping did.ErrNotFound if the resource does not
	// exist. Re-publishing an already published document succeeds and
	// overwrites.
	Publish(ctx context.Context, didID string) error

	// Unpublish marks the DID's document as unpublished regardless of its
	// prior state. Returns an error wrapping did.ErrNotFound if the
	// resource does not exist.
	Unpublish(ctx context.Context, didID string) error

	// ListPublished returns every resource this publisher manages whose
	// document is currently published.
	ListPublished(ctx context.Context) ([]did.Resource, error)
}
