// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/eat-that-list/internal/app"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/service"
	"github.com/MKhiriev/eat-that-list/internal/store"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header cannot be split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the header carries the scheme but no
	// token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidPathParam is returned when an id path parameter is not a
	// positive integer.
	ErrInvalidPathParam = errors.New("invalid path parameter")
)

type errorResponse struct {
	err    error
	status int
	msg    string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidPathParam, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrEmptyListName, http.StatusBadRequest, app.MsgEmptyListName},
	{service.ErrEmptyDescription, http.StatusBadRequest, app.MsgEmptyDescription},
	{service.ErrSelfInvite, http.StatusBadRequest, app.MsgSelfInvite},
	{service.ErrOwnerCannotLeave, http.StatusBadRequest, app.MsgOwnerCannotLeave},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrNotListOwner, http.StatusForbidden, app.MsgNotListOwner},
	{service.ErrListAccessDenied, http.StatusForbidden, app.MsgAccessDenied},

	{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrListNotFound, http.StatusNotFound, app.MsgListNotFound},
	{store.ErrListItemNotFound, http.StatusNotFound, app.MsgItemNotFound},
	{store.ErrInviteNotFound, http.StatusNotFound, app.MsgInviteNotFound},

	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{store.ErrAlreadyInvited, http.StatusConflict, app.MsgAlreadyInvited},
}

func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.err) {
			return resp.status, resp.msg
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the status and message it maps to.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, body := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if status == http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	http.Error(w, body, status)
}
