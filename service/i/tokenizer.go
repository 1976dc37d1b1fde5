package i

import (
	"time"
)

// Tokenizer defines methods for generating and decoding bearer tokens.
// The API only decodes; tokens are issued by the identity service that
// shares the signing secret.
type Tokenizer interface {
	// Generate creates a token with the given claims and expiration duration.
	Generate(claims map[string]any, expTime time.Duration) (string, error)

	// Decode validates and parses a token, returning its claims.
	Decode(token string) (map[string]any, error)
}
