// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared response messages used by the diary server
// handlers and middleware.
//
// Msg* constants are written into HTTP response bodies for client errors.
// Server errors are answered with the plain status text instead.
package app

const (
	// MsgInvalidJSON is returned when a request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidGzip is returned when a gzip-encoded body cannot be inflated.
	MsgInvalidGzip = "Invalid gzip data"

	// MsgInvalidDataProvided is returned when registration or login
	// credentials are missing.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the login/password pair does
	// not match an existing user.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is returned when a registration attempt uses a
	// login that is already taken.
	MsgLoginAlreadyExists = "login already exists"
)
