package server

import "errors"

var (
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrMissingAddress       = errors.New("server address is required")
	ErrLoadTLS              = errors.New("failed to load TLS certificate")
	ErrListen               = errors.New("failed to listen")
)
