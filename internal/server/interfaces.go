package server

// Server runs the sync transports together with the background workers
// that share their lifetime.
type Server interface {
	// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives, or until a
	// background worker fails.
	RunServer()

	// Shutdown stops the transports. In-flight requests get a grace period.
	Shutdown()
}
