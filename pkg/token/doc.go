// Package token encodes session payloads into compact, URL-safe, integrity-protected
// strings and verifies them on the way back.
//
// # Token Format
//
// Tokens use the JWS compact serialization with HMAC-SHA256:
//
//	base64url(header) "." base64url(payload) "." base64url(signature)
//
// Where:
//   - Header: the fixed {"alg":"HS256","typ":"JWT"} object
//   - Payload: the JSON-encoded Payload ({"v":1,"user":{...},"expires":<unix ms>})
//   - Signature: HMAC-SHA256 over header "." payload, keyed by the SigningContext
//
// The payload is signed, not encrypted. Anyone holding the cookie can read it.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/cookiesession/pkg/token"
//
//	sc, err := token.NewSigningContext(os.Getenv("SESSION_SECRET"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	codec := token.NewCodec(sc)
//
//	// Encode
//	p := token.NewPayload(&token.User{Name: "Admin"}, time.Now().Add(10*time.Minute))
//	tok, err := codec.Encode(p)
//
//	// Decode (verifies the signature, does NOT check expiry)
//	p, err = codec.Decode(tok)
//	if errors.Is(err, token.ErrInvalidToken) {
//		// malformed, tampered with, or signed by an unknown key
//	}
//	if p.Expired(time.Now()) {
//		// authentic but no longer current
//	}
//
// # Key Rotation
//
// A SigningContext carries one primary key used for signing and any number of
// previous keys that are still accepted for verification:
//
//	sc, err := token.NewSigningContext(newSecret, oldSecret)
//
// # Error Handling
//
// Every decode failure matches ErrInvalidToken. A more specific sentinel is joined in:
//   - ErrMalformedToken: wrong segment count, bad base64url, unexpected JSON shape
//   - ErrBadSignature: signature mismatch or unexpected algorithm
//   - ErrUnsupportedVersion: payload schema version is not CurrentVersion
//
// Encode fails only when the HMAC provider is unavailable (ErrCrypto).
package token
