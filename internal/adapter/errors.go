package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrInvalidAddress is returned for a server address without a host.
	ErrInvalidAddress = errors.New("invalid server address")

	// ErrInvalidAuthorizationHeader is returned when an auth response lacks
	// a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
