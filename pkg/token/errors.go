package token

import "errors"

var (
	// ErrEmptySecret is returned when a signing context is built without key material.
	ErrEmptySecret = errors.New("token: signing secret is empty")

	// ErrInvalidToken is matched by every decode failure.
	ErrInvalidToken = errors.New("token: invalid token")

	// ErrMalformedToken indicates a token that is not three base64url segments
	// carrying the expected header and payload shape.
	ErrMalformedToken = errors.New("token: malformed token")

	// ErrBadSignature indicates the recomputed signature does not match.
	ErrBadSignature = errors.New("token: signature verification failed")

	// ErrUnsupportedVersion indicates a payload schema version this build cannot read.
	ErrUnsupportedVersion = errors.New("token: unsupported payload version")

	// ErrCrypto indicates the HMAC provider failed while signing.
	ErrCrypto = errors.New("token: crypto provider failure")
)
