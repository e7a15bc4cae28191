// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the EatThatList server
// handlers and the client services that decode them.
//
// The server writes a Msg* constant into the response body; the client maps
// the (status, body) pair back onto a sentinel error.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or a path parameter is malformed.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the email/password pair does
	// not match any account.
	MsgInvalidLoginPassword = "invalid email/password"

	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or its signature cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgRegistrationFailed = "registration failed"
	MsgLoginFailed        = "login failed"

	// MsgEmailAlreadyExists is returned when registering an email that is
	// already taken, compared case-insensitively.
	MsgEmailAlreadyExists = "email already exists"

	MsgUserNotFound   = "user not found"
	MsgListNotFound   = "list not found"
	MsgItemNotFound   = "item not found"
	MsgInviteNotFound = "invite not found"

	// MsgAccessDenied is returned when the user is neither the owner nor an
	// accepted collaborator of the list.
	MsgAccessDenied = "access denied"

	// MsgNotListOwner is returned for owner-only operations: deleting a
	// list, inviting and removing collaborators.
	MsgNotListOwner = "only the list owner can do that"

	MsgOwnerCannotLeave = "the owner cannot leave their own list"
	MsgSelfInvite       = "cannot invite yourself"
	MsgAlreadyInvited   = "user is already invited to the list"
	MsgEmptyListName    = "list name is empty"
	MsgEmptyDescription = "item description is empty"
)
