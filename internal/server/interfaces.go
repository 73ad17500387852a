package server

// Server runs the diary transports and the background workers together.
type Server interface {
	// RunServer blocks until SIGINT, SIGTERM or SIGQUIT, then shuts down.
	RunServer()

	// Shutdown stops the HTTP and gRPC transports.
	Shutdown()
}
