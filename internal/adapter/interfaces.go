// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the list server on behalf of the terminal client.
//
// [ServerAdapter] covers the REST API (resty); [Subscriber] covers the push
// subscriptions (gorilla/websocket). HTTP statuses are mapped to the sentinel
// errors in errors.go so that callers can use [errors.Is].
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/eat-that-list/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the REST client of the list server. Authenticated calls
// carry the token set with SetToken.
type ServerAdapter interface {
	SetToken(token string)
	Token() string

	// Register and Login store the returned token and hand it back.
	Register(ctx context.Context, user models.User) (models.Token, error)
	Login(ctx context.Context, user models.User) (models.Token, error)
	// RefreshToken exchanges the current token for a fresh one.
	RefreshToken(ctx context.Context) (models.Token, error)

	Lists(ctx context.Context) ([]models.List, error)
	CreateList(ctx context.Context, name string) (models.List, error)
	DeleteList(ctx context.Context, listID int64) error
	LeaveList(ctx context.Context, listID int64) error

	Items(ctx context.Context, listID int64) ([]models.ListItem, error)
	AddItem(ctx context.Context, listID int64, description string) (models.ListItem, error)
	DeleteItem(ctx context.Context, listID, itemID int64) error

	Collaborators(ctx context.Context, listID int64) ([]models.Invite, error)
	Invite(ctx context.Context, listID int64, email string) (models.Invite, error)
	PendingInvites(ctx context.Context) ([]models.Invite, error)
	AcceptInvite(ctx context.Context, inviteID int64) (models.Invite, error)
	DeclineInvite(ctx context.Context, inviteID int64) (models.Invite, error)
	RemoveCollaborator(ctx context.Context, inviteID int64) error
	FindUser(ctx context.Context, email string) (models.User, error)

	Version(ctx context.Context) (string, error)
}

// Subscriber opens push subscriptions. The returned channel yields raw
// frames and is closed once ctx ends; dropped connections are re-dialled in
// between.
type Subscriber interface {
	Subscribe(ctx context.Context, path string) <-chan json.RawMessage
}
