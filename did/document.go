package did

import (
	"maps"
	"slices"
)

// Document is a DID document as served to resolvers. Field names follow the
// W3C DID Core vocabulary so the struct marshals directly to a resolvable
// document. Construction and key generation happen outside this module; the
// publisher only moves documents in and out of the published set.
type Document struct {
	Context            []string             `json:"@context,omitempty"`
	ID                 string               `json:"id"`
	AlsoKnownAs        []string             `json:"alsoKnownAs,omitempty"`
	VerificationMethod []VerificationMethod `json:"verificationMethod,omitempty"`
	Service            []Service            `json:"service,omitempty"`
}

// VerificationMethod describes one public key entry of a Document. Exactly
// one of PublicKeyMultibase or PublicKeyJwk is expected to be set.
type VerificationMethod struct {
	ID                 string         `json:"id"`
	Type               string         `json:"type"`
	Controller         string         `json:"controller"`
	PublicKeyMultibase string         `json:"publicKeyMultibase,omitempty"`
	PublicKeyJwk       map[string]any `json:"publicKeyJwk,omitempty"`
}

// Service describes a service endpoint entry of a Document.
type Service struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	ServiceEndpoint string `json:"serviceEndpoint"`
}

// Clone returns a deep copy sharing no slices or maps with the receiver.
func (d Document) Clone() Document {
	out := d
	out.Context = slices.Clone(d.Context)
	out.AlsoKnownAs = slices.Clone(d.AlsoKnownAs)
	if d.VerificationMethod != nil {
		out.VerificationMethod = make([]VerificationMethod, len(d.VerificationMethod))
		for i, vm := range d.VerificationMethod {
			out.VerificationMethod[i] = vm
			out.VerificationMethod[i].PublicKeyJwk = maps.Clone(vm.PublicKeyJwk)
		}
	}
	out.Service = slices.Clone(d.Service)
	return out
}
