package server

// Server runs the configured transports of the list server.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts the
	// transports down.
	RunServer()

	// Shutdown stops the transports. Push streams are closed first.
	Shutdown()
}
