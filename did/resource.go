package did

import (
	"fmt"
	"strings"
	"time"
)

// Resource tracks one DID document through its publication lifecycle.
// The DID string is the identity; the store keys resources by it.
type Resource struct {
	DID            string
	State          State
	Document       Document
	CreatedAt      time.Time
	StateChangedAt time.Time
}

// NewResource returns a Resource in the initial state with its timestamps set.
func NewResource(didID string) Resource {
	now := time.Now().UTC()
	return Resource{
		DID:            didID,
		State:          StateInitial,
		CreatedAt:      now,
		StateChangedAt: now,
	}
}

// Validate checks business rules for the Resource entity.
// Returns a *ValidationError (wrapping ErrValidation) with per-field details,
// or nil if all rules pass.
func (r *Resource) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.DID) == "" {
		fields["did"] = MsgRequired
	}
	if !r.State.IsValid() {
		fields["state"] = fmt.Sprintf("invalid: %q", r.State)
	}
	if r.Document.ID != "" && r.Document.ID != r.DID {
		fields["document.id"] = fmt.Sprintf("must match resource did, got %q", r.Document.ID)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// TransitionTo moves the resource into state s and refreshes StateChangedAt.
// Repeating a transition is permitted and idempotent apart from the timestamp.
func (r *Resource) TransitionTo(s State) {
	r.State = s
	r.StateChangedAt = time.Now().UTC()
}

// Published reports whether the resource is currently in the published state.
func (r *Resource) Published() bool {
	return r.State == StatePublished
}

// Clone returns a deep copy of the resource. Store implementations return
// clones so callers cannot mutate stored state through shared slices or maps.
func (r Resource) Clone() Resource {
	out := r
	out.Document = r.Document.Clone()
	return out
}
