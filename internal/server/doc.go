// Package server runs the sync API over HTTP and the health service over
// gRPC. Background workers such as the change-event dispatcher are started
// and stopped with the transports.
package server
