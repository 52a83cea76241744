// Package server wires and runs the application's HTTP server: startup,
// signal handling and graceful shutdown.
package server
