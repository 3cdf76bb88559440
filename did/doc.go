// Package did contains the domain types for DID document publication:
// the Resource entity and its State lifecycle, the Document value served
// to resolvers, query filters, and the sentinel errors shared across the
// store and publisher packages.
package did
