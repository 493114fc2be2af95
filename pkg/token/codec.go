package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Codec signs and verifies session tokens. Safe for concurrent use.
type Codec struct {
	sc     SigningContext
	parser *jwt.Parser
}

// NewCodec creates a codec bound to the given signing context.
func NewCodec(sc SigningContext) *Codec {
	return &Codec{
		sc: sc,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithStrictDecoding(),
			// Expiry is a lifecycle decision, not an authenticity one.
			jwt.WithoutClaimsValidation(),
		),
	}
}

// Encode serializes and signs p. The schema version is always stamped as
// CurrentVersion. The output is deterministic for a given payload and key.
func (c *Codec) Encode(p Payload) (string, error) {
	key := c.sc.signingKey()
	if len(key) == 0 {
		return "", errors.Join(ErrCrypto, ErrEmptySecret)
	}

	p.Version = CurrentVersion
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claimsFromPayload(p)).SignedString(key)
	if err != nil {
		return "", errors.Join(ErrCrypto, err)
	}
	return tok, nil
}

// Decode verifies the signature of tok and returns its payload.
// It does not check expiry. Every failure matches ErrInvalidToken.
func (c *Codec) Decode(tok string) (Payload, error) {
	if len(c.sc.keys) == 0 {
		return Payload{}, errors.Join(ErrInvalidToken, ErrEmptySecret)
	}

	var lastErr error
	for _, key := range c.sc.keys {
		var cl claims
		_, err := c.parser.ParseWithClaims(tok, &cl, func(*jwt.Token) (any, error) {
			return key, nil
		})
		if err == nil {
			return validate(cl)
		}

		lastErr = classify(err)
		// Only a signature mismatch is worth retrying with an older key.
		if !errors.Is(lastErr, ErrBadSignature) {
			break
		}
	}

	return Payload{}, lastErr
}

func validate(cl claims) (Payload, error) {
	if cl.Version != CurrentVersion {
		return Payload{}, errors.Join(ErrInvalidToken, ErrUnsupportedVersion)
	}
	if cl.Expires == 0 {
		return Payload{}, errors.Join(ErrInvalidToken, ErrMalformedToken)
	}
	return cl.payload(), nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return errors.Join(ErrInvalidToken, ErrBadSignature, err)
	default:
		return errors.Join(ErrInvalidToken, ErrMalformedToken, err)
	}
}

// jwt.Claims is implemented with empty registered claims: the payload keeps
// its own expiry field and validation is disabled on the parser.

func (claims) GetExpirationTime() (*jwt.NumericDate, error) { return nil, nil }
func (claims) GetIssuedAt() (*jwt.NumericDate, error)       { return nil, nil }
func (claims) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (claims) GetIssuer() (string, error)                   { return "", nil }
func (claims) GetSubject() (string, error)                  { return "", nil }
func (claims) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }
