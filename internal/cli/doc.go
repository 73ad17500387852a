// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the diary command-line client.
//
// Every command is a thin layer over [adapter.ServerAdapter]: it parses
// arguments, calls the server and renders the result with lipgloss styles.
// The bearer token issued by register/login is kept in a session file so
// that subsequent invocations stay authenticated.
package cli
