package publisher

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/didstack/didhub/did"
	"github.com/didstack/didhub/store"
)

// Compile-time check that Local implements DocumentPublisher.
var _ DocumentPublisher = (*Local)(nil)

// Local publishes did:web documents by flipping resource state in the
// backing store. It holds no locks and coordinates no goroutines; concurrent
// safety is the store's contract.
type Local struct {
	store  store.Store
	logger *slog.Logger
}

// NewLocal creates a did:web publisher over the given store. The logger is
// used for structured operation/error logging; a nil logger discards.
func NewLocal(st store.Store, logger *slog.Logger) *Local {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Local{
		store:  st,
		logger: logger,
	}
}

// CanHandle reports whether didID uses the did:web method.
func (l *Local) CanHandle(didID string) bool {
	return did.IsWebDID(didID)
}

// Publish marks the DID's document as published. The resource must already
// exist in the store; publishing an already published document is a warned
// overwrite, not an error.
func (l *Local) Publish(ctx context.Context, didID string) error {
	l.logger.InfoContext(ctx, "publishing did document", slog.String("did", didID))

	res, err := l.store.FindByID(ctx, didID)
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to load did resource",
			slog.String("operation", "Publish"),
			slog.String("did", didID),
			slog.Any("error", err),
		)
		return fmt.Errorf("loading resource: %w", err)
	}

	if res.Published() {
		l.logger.WarnContext(ctx, "did document already published, overwriting",
			slog.String("did", didID),
		)
	}

	res.TransitionTo(did.StatePublished)

	if err := l.store.Update(ctx, *res); err != nil {
		l.logger.ErrorContext(ctx, "failed to persist publication",
			slog.String("operation", "Publish"),
			slog.String("did", didID),
			slog.Any("error", err),
		)
		return fmt.Errorf("updating resource: %w", err)
	}

	return nil
}

// Unpublish marks the DID's document as unpublished. The resource must
// already exist in the store. Resources in any prior state end up
// unpublished; a resource that was never published logs an informational
// notice but the transition still happens.
func (l *Local) Unpublish(ctx context.Context, didID string) error {
	l.logger.InfoContext(ctx, "unpublishing did document", slog.String("did", didID))

	res, err := l.store.FindByID(ctx, didID)
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to load did resource",
			slog.String("operation", "Unpublish"),
			slog.String("did", didID),
			slog.Any("error", err),
		)
		return fmt.Errorf("loading resource: %w", err)
	}

	if !res.Published() {
		l.logger.InfoContext(ctx, "did document not currently published",
			slog.String("did", didID),
			slog.String("state", res.State.String()),
		)
	}

	res.TransitionTo(did.StateUnpublished)

	if err := l.store.Update(ctx, *res); err != nil {
		l.logger.ErrorContext(ctx, "failed to persist unpublication",
			slog.String("operation", "Unpublish"),
			slog.String("did", didID),
			slog.Any("error", err),
		)
		return fmt.Errorf("updating resource: %w", err)
	}

	return nil
}

// ListPublished returns every did:web resource whose document is currently
// published.
func (l *Local) ListPublished(ctx context.Context) ([]did.Resource, error) {
	resources, err := l.store.Query(ctx, did.Filter{
		State:     did.StatePublished,
		DIDPrefix: did.WebMethod,
	})
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to query published documents",
			slog.String("operation", "ListPublished"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return resources, nil
}
