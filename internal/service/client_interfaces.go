package service

import (
	"context"

	"github.com/MKhiriev/eat-that-list/internal/reconcile"
	"github.com/MKhiriev/eat-that-list/models"
)

// ClientAuthService signs the terminal user in and out and broadcasts every
// change of the signed-in state.
type ClientAuthService interface {
	// Register creates an account and signs it in.
	Register(ctx context.Context, email, password string) (models.Session, error)

	// SignIn authenticates against the server, waits until the issued token
	// carries the list claims and persists the session locally.
	// Returns ErrClaimsNotReady if the claims never show up.
	SignIn(ctx context.Context, email, password string) (models.Session, error)

	// SignOut forgets the local session.
	SignOut(ctx context.Context) error

	// Restore signs in with the locally persisted session, refreshing its
	// token. Returns store.ErrSessionNotFound when there is none.
	Restore(ctx context.Context) (models.Session, error)

	// Session returns the current session, if any.
	Session() (models.Session, bool)

	// States streams sign-in/sign-out events. The current state is delivered
	// first; a slow reader only sees the latest one.
	States() (<-chan models.AuthState, func())
}

// ClientListService keeps the signed-in user's lists in sync.
type ClientListService interface {
	View() *reconcile.View[models.List]

	// Load replaces the view with a fresh query result.
	Load(ctx context.Context) error

	// Run applies pushed snapshots to the view until ctx ends.
	Run(ctx context.Context) error

	// Create, Delete and Leave are optimistic: the view changes before the
	// server answers and is rolled back if it refuses.
	Create(ctx context.Context, name string) (models.List, error)
	Delete(ctx context.Context, listID int64) error
	Leave(ctx context.Context, listID int64) error
}

// ClientItemService opens per-list item sessions.
type ClientItemService interface {
	Open(listID int64) ItemSession
}

// ItemSession keeps the items of one list in sync.
type ItemSession interface {
	ListID() int64
	View() *reconcile.View[models.ListItem]
	Load(ctx context.Context) error
	Run(ctx context.Context) error
	Add(ctx context.Context, description string) (models.ListItem, error)
	Remove(ctx context.Context, itemID int64) error
}

// ClientInviteService handles the invites addressed to the user and the
// collaborators of lists.
type ClientInviteService interface {
	Pending() *reconcile.View[models.Invite]
	LoadPending(ctx context.Context) error
	RunPending(ctx context.Context) error
	Accept(ctx context.Context, inviteID int64) error
	Decline(ctx context.Context, inviteID int64) error

	Collaborators(listID int64) CollaboratorsSession
}

// CollaboratorsSession manages the invites of one list. Only its owner may
// change them.
type CollaboratorsSession interface {
	View() *reconcile.View[models.Invite]
	Load(ctx context.Context) error
	Invite(ctx context.Context, email string) (models.Invite, error)
	Remove(ctx context.Context, inviteID int64) error
}
