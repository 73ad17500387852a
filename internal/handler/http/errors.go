// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request has no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the "<scheme> <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the header has a scheme but no token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrMissingSignature is returned when request signing is enabled and
	// the HashSHA256 header is absent.
	ErrMissingSignature = errors.New("missing `HashSHA256` header")

	// ErrInvalidSignature is returned when HashSHA256 does not match the body.
	ErrInvalidSignature = errors.New("integrity check failed")

	// ErrInvalidQueryParam is returned for malformed query parameters.
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
