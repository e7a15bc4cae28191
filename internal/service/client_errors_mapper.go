// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/eat-that-list/internal/adapter"
	"github.com/MKhiriev/eat-that-list/internal/app"
	"github.com/MKhiriev/eat-that-list/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgEmptyListName:
			return ErrEmptyListName
		case app.MsgEmptyDescription:
			return ErrEmptyDescription
		case app.MsgSelfInvite:
			return ErrSelfInvite
		case app.MsgOwnerCannotLeave:
			return ErrOwnerCannotLeave
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		if msg == app.MsgNotListOwner {
			return ErrNotListOwner
		}
		return ErrListAccessDenied

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgUserNotFound:
			return store.ErrNoUserWasFound
		case app.MsgListNotFound:
			return store.ErrListNotFound
		case app.MsgItemNotFound:
			return store.ErrListItemNotFound
		case app.MsgInviteNotFound:
			return store.ErrInviteNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgEmailAlreadyExists:
			return store.ErrEmailAlreadyExists
		case app.MsgAlreadyInvited:
			return store.ErrAlreadyInvited
		}

	case errors.Is(err, adapter.ErrBadGateway):
		switch msg {
		case app.MsgRegistrationFailed:
			return ErrRegisterOnServer
		case app.MsgLoginFailed:
			return ErrLoginOnServer
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
