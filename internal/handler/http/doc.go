// Package http implements the HTTP transport layer of the list server.
//
// It exposes route wiring, request handlers and middleware for the REST API
// and the websocket push subscriptions. Authentication, request tracing and
// access logging are handled here before requests reach the service layer.
package http
