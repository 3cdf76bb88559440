package did

import "regexp"

// WebMethod is the DID method prefix this module publishes for.
const WebMethod = "did:web"

// The method name is case-insensitive per the DID syntax rules; the
// method-specific identifier after the second colon is not inspected here.
var webMethodPattern = regexp.MustCompile(`(?i)^did:web:`)

// IsWebDID reports whether id is a did:web identifier.
func IsWebDID(id string) bool {
	return webMethodPattern.MatchString(id)
}
