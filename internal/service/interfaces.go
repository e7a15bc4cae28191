package service

import (
	"context"

	"github.com/MKhiriev/eat-that-list/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ListService manages lists and membership. Every method takes the acting
// user and enforces access itself.
type ListService interface {
	UserLists(ctx context.Context, userID string) ([]models.List, error)
	CreateList(ctx context.Context, userID, name string) (models.List, error)
	DeleteList(ctx context.Context, userID string, listID int64) error
	LeaveList(ctx context.Context, userID string, listID int64) error
	// CanAccess returns nil when userID owns or collaborates on the list.
	CanAccess(ctx context.Context, userID string, listID int64) error
}

type ListItemService interface {
	Items(ctx context.Context, userID string, listID int64) ([]models.ListItem, error)
	AddItem(ctx context.Context, userID string, listID int64, description string) (models.ListItem, error)
	DeleteItem(ctx context.Context, userID string, listID, itemID int64) error
}

type InviteService interface {
	FindInvitee(ctx context.Context, email string) (models.User, error)
	Invite(ctx context.Context, userID string, listID int64, email string) (models.Invite, error)
	PendingInvites(ctx context.Context, userID string) ([]models.Invite, error)
	Collaborators(ctx context.Context, userID string, listID int64) ([]models.Invite, error)
	Accept(ctx context.Context, userID string, inviteID int64) (models.Invite, error)
	Decline(ctx context.Context, userID string, inviteID int64) (models.Invite, error)
	RemoveCollaborator(ctx context.Context, userID string, inviteID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Broker fans change notifications out to subscription handlers. A
// notification carries no data: subscribers re-query and push a full
// snapshot.
type Broker interface {
	Subscribe(topic string) (<-chan struct{}, func())
	Publish(topics ...string)
}
