package did

// State represents where a Resource sits in its publication lifecycle.
type State string

const (
	StateInitial     State = "initial"
	StateGenerated   State = "generated"
	StatePublished   State = "published"
	StateUnpublished State = "unpublished"
)

// IsValid returns true if the state is one of the defined constants.
func (s State) IsValid() bool {
	switch s {
	case StateInitial, StateGenerated, StatePublished, StateUnpublished:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s State) String() string {
	return string(s)
}
