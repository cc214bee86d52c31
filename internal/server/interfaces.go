package server

// Server is the lifecycle of the stub backend listener.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then shuts down
	// gracefully.
	RunServer()

	// Shutdown stops accepting connections and waits for active requests.
	Shutdown()
}
