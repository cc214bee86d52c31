// Package server runs the stub backend's HTTP listener, including startup,
// signal handling and graceful shutdown.
package server
