package did

import "strings"

// Filter holds optional filter criteria for querying resources.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	State     State
	DIDPrefix string
}

// Matches reports whether the resource satisfies every set criterion.
func (f Filter) Matches(r Resource) bool {
	if f.State != "" && r.State != f.State {
		return false
	}
	if f.DIDPrefix != "" && !strings.HasPrefix(r.DID, f.DIDPrefix) {
		return false
	}
	return true
}
