// Package server runs the diary transports.
//
// It starts the HTTP API, the gRPC health service and the background
// workers, and shuts all of them down on SIGINT, SIGTERM or SIGQUIT.
package server
