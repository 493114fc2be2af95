package token

import (
	"slices"
	"strings"
)

// SigningContext holds the key material used by a Codec.
// It is built once at startup and treated as immutable afterwards.
type SigningContext struct {
	// keys[0] signs; every key verifies.
	keys [][]byte
}

// NewSigningContext builds a signing context from the primary secret and any
// previous secrets that should still verify tokens during rotation.
// Blank previous secrets are ignored.
func NewSigningContext(secret string, previous ...string) (SigningContext, error) {
	if secret == "" {
		return SigningContext{}, ErrEmptySecret
	}

	keys := make([][]byte, 0, len(previous)+1)
	keys = append(keys, []byte(secret))
	for _, s := range previous {
		s = strings.TrimSpace(s)
		if s == "" || s == secret {
			continue
		}
		keys = append(keys, []byte(s))
	}

	return SigningContext{keys: keys}, nil
}

// ParseSecrets splits a comma-separated secret list, dropping blanks.
func ParseSecrets(raw string) []string {
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return slices.DeleteFunc(parts, func(s string) bool { return s == "" })
}

func (sc SigningContext) signingKey() []byte {
	if len(sc.keys) == 0 {
		return nil
	}
	return sc.keys[0]
}
