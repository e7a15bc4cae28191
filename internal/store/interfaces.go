package store

import (
	"context"

	"github.com/MKhiriev/eat-that-list/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ListRepository stores lists and the access granted to collaborators.
type ListRepository interface {
	UserLists(ctx context.Context, userID string) ([]models.List, error)
	CreateList(ctx context.Context, list models.List) (models.List, error)
	GetList(ctx context.Context, listID int64) (models.List, error)
	DeleteList(ctx context.Context, listID int64) error
	Members(ctx context.Context, listID int64) ([]string, error)
	HasAccess(ctx context.Context, listID int64, userID string) (bool, error)
	// LeaveList revokes the access of userID and drops the invite that
	// granted it.
	LeaveList(ctx context.Context, listID int64, userID string) error
}

// ListItemRepository stores list items.
type ListItemRepository interface {
	Items(ctx context.Context, listID int64) ([]models.ListItem, error)
	CreateItem(ctx context.Context, item models.ListItem) (models.ListItem, error)
	DeleteItem(ctx context.Context, listID, itemID int64) error
}

// InviteRepository stores invites. Answering and deleting an invite keep
// list access in step with it.
type InviteRepository interface {
	CreateInvite(ctx context.Context, invite models.Invite) (models.Invite, error)
	GetInvite(ctx context.Context, inviteID int64) (models.Invite, error)
	ListInvites(ctx context.Context, listID int64) ([]models.Invite, error)
	PendingInvites(ctx context.Context, userID string) ([]models.Invite, error)
	AnswerInvite(ctx context.Context, inviteID int64, invitee string, accept bool) (models.Invite, error)
	DeleteInvite(ctx context.Context, inviteID int64) (models.Invite, error)
}
