package session

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when the submitted credentials don't match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrIssueSession is returned when a session token can't be written to the response.
	ErrIssueSession = errors.New("failed to issue session")
	// ErrInvalidPasswordHash is returned when the configured bcrypt hash can't be used.
	ErrInvalidPasswordHash = errors.New("invalid password hash")
	// ErrMissingUsername is returned when the authenticator has no username configured.
	ErrMissingUsername = errors.New("username is required")
)
