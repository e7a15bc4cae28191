package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")

	ErrListAccessDenied = errors.New("access to the list is denied")
	ErrNotListOwner     = errors.New("only the list owner can do that")
	ErrOwnerCannotLeave = errors.New("the owner cannot leave their own list")
	ErrSelfInvite       = errors.New("cannot invite yourself")
	ErrEmptyListName    = errors.New("list name is empty")
	ErrEmptyDescription = errors.New("item description is empty")
)

// client-side errors
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrNotSignedIn      = errors.New("not signed in")
	ErrClaimsNotReady   = errors.New("token has no list claims yet")
	ErrViewNotLoaded    = errors.New("view is not loaded")
)

// ErrNotConfirmed is returned when removing an entry the server has not
// confirmed yet.
var ErrNotConfirmed = errors.New("entry is not confirmed by the server yet")
