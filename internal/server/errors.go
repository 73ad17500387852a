package server

import "errors"

var (
	// errNoServersAreCreated means no transport had both an address and a handler.
	errNoServersAreCreated = errors.New("no servers are created")
	errNoServersToRun      = errors.New("no servers to run")
)
