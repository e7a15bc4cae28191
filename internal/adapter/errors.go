package adapter

import "errors"

// Transport errors, one per HTTP status class the server uses. The response
// body is appended after ": " so that callers can tell messages apart.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	ErrNoToken         = errors.New("no bearer token in response")
	ErrSubscriptionEnd = errors.New("subscription closed by server")
)
