package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// jwkPrivatePattern matches the "d" private-key parameter inside a serialized
// JWK. Published DID documents carry only public parameters; a private JWK in
// a log line means a host serialized the wrong half of a key pair.
var jwkPrivatePattern = regexp.MustCompile(`"d"\s*:\s*"[a-zA-Z0-9\-_]{16,}"`)

// jwtPattern matches raw JWT strings (header.payload.signature). Requires at
// least 10 characters per segment to avoid false positives on short
// dot-separated strings like version numbers.
var jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known key-material fields
// and by regex for values that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	return masq.New(
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("seed"),
		masq.WithFieldName("privateKeyJwk"),

		// Prefix-based redaction for variations like "secret_key",
		// "private_key_pem".
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("private_key"),

		// Regex matching catches values that escape field-name redaction.
		masq.WithRegex(jwkPrivatePattern),
		masq.WithRegex(jwtPattern),
	)
}
