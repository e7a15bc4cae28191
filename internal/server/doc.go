// Package server runs the list server transports: the HTTP server with the
// REST API and the websocket push streams, and the gRPC health server.
//
// Both stop on SIGTERM, SIGINT or SIGQUIT. Open push streams are cancelled
// before the HTTP server waits for in-flight requests.
package server
