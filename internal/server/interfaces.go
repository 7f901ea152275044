package server

// Server is the lifecycle contract of the transport server.
//
// Implementations block in [RunServer] until shutdown is requested, either
// by signal or by [Shutdown], and release resources before returning.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
