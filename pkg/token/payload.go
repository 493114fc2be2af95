package token

import "time"

// CurrentVersion is the payload schema version written by Encode.
// Decode rejects every other version.
const CurrentVersion = 1

// User identifies the signed-in principal. The record is opaque to the codec.
type User struct {
	Name string `json:"name"`
}

// Payload is the session record carried inside a token.
// A payload without a User is never considered authenticated.
type Payload struct {
	Version int
	User    *User
	// Expires is an absolute point in time; the payload carries no issue time.
	Expires time.Time
}

// NewPayload builds a current-version payload. Expires is truncated to
// millisecond precision so it survives the wire format unchanged.
func NewPayload(user *User, expires time.Time) Payload {
	return Payload{
		Version: CurrentVersion,
		User:    user,
		Expires: time.UnixMilli(expires.UnixMilli()),
	}
}

// Authenticated reports whether the payload names a user.
func (p Payload) Authenticated() bool {
	return p.User != nil
}

// Remaining returns the time left until Expires. Negative once expired.
func (p Payload) Remaining(now time.Time) time.Duration {
	return p.Expires.Sub(now)
}

// Expired reports whether Expires is not in the future relative to now.
func (p Payload) Expired(now time.Time) bool {
	return !p.Expires.After(now)
}

// claims is the wire shape of a Payload.
type claims struct {
	Version int   `json:"v"`
	User    *User `json:"user"`
	Expires int64 `json:"expires"`
}

func claimsFromPayload(p Payload) claims {
	return claims{
		Version: p.Version,
		User:    p.User,
		Expires: p.Expires.UnixMilli(),
	}
}

func (c claims) payload() Payload {
	return Payload{
		Version: c.Version,
		User:    c.User,
		Expires: time.UnixMilli(c.Expires),
	}
}
