package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/eat-that-list/internal/adapter"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/reconcile"
	"github.com/MKhiriev/eat-that-list/models"
)

type clientInviteService struct {
	actor      string
	strategy   reconcile.Strategy
	adapter    adapter.ServerAdapter
	subscriber adapter.Subscriber
	pending    *reconcile.View[models.Invite]

	logger *logger.Logger
}

func NewClientInviteService(actor string, strategy reconcile.Strategy, serverAdapter adapter.ServerAdapter,
	subscriber adapter.Subscriber, logger *logger.Logger) ClientInviteService {
	return &clientInviteService{
		actor:      actor,
		strategy:   strategy,
		adapter:    serverAdapter,
		subscriber: subscriber,
		pending:    reconcile.NewView[models.Invite](actor, strategy),
		logger:     logger,
	}
}

// Pending holds the invites addressed to the user that are not answered
// yet.
func (s *clientInviteService) Pending() *reconcile.View[models.Invite] {
	return s.pending
}

func (s *clientInviteService) LoadPending(ctx context.Context) error {
	invites, err := s.adapter.PendingInvites(ctx)
	if err != nil {
		return fmt.Errorf("load pending invites: %w", mapAdapterError(err))
	}
	s.pending.Replace(invites)
	return nil
}

func (s *clientInviteService) RunPending(ctx context.Context) error {
	if !s.pending.Defined() {
		if err := s.LoadPending(ctx); err != nil {
			return err
		}
	}
	return runSubscription(ctx, s.subscriber, invitesSubscriptionPath, s.pending, s.logger)
}

// Accept and Decline drop the invite from the pending view right away.
func (s *clientInviteService) Accept(ctx context.Context, inviteID int64) error {
	return s.answer(ctx, "accept invite", inviteID, s.adapter.AcceptInvite)
}

func (s *clientInviteService) Decline(ctx context.Context, inviteID int64) error {
	return s.answer(ctx, "decline invite", inviteID, s.adapter.DeclineInvite)
}

func (s *clientInviteService) answer(ctx context.Context, op string, inviteID int64,
	call func(context.Context, int64) (models.Invite, error)) error {
	if err := checkRemovable(s.pending, inviteID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := s.pending.Remove(ctx, inviteID, func(ctx context.Context) error {
		_, err := call(ctx, inviteID)
		return mapAdapterError(err)
	})
	if err != nil {
		s.logger.Err(err).Int64("invite_id", inviteID).Msgf("%s rolled back", op)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *clientInviteService) Collaborators(listID int64) CollaboratorsSession {
	return &collaboratorsSession{
		listID:  listID,
		service: s,
		view:    reconcile.NewView[models.Invite](s.actor, s.strategy),
	}
}

type collaboratorsSession struct {
	listID  int64
	service *clientInviteService
	view    *reconcile.View[models.Invite]
}

func (c *collaboratorsSession) View() *reconcile.View[models.Invite] {
	return c.view
}

func (c *collaboratorsSession) Load(ctx context.Context) error {
	invites, err := c.service.adapter.Collaborators(ctx, c.listID)
	if err != nil {
		return fmt.Errorf("load collaborators: %w", mapAdapterError(err))
	}
	c.view.Replace(invites)
	return nil
}

// Invite shows the invitee as pending until the server confirms it.
func (c *collaboratorsSession) Invite(ctx context.Context, email string) (models.Invite, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.Invite{}, ErrInvalidDataProvided
	}
	if !c.view.Defined() {
		return models.Invite{}, ErrViewNotLoaded
	}

	tentative := models.Invite{
		ID:           tempID(c.view),
		ListID:       c.listID,
		Inviter:      c.service.actor,
		InviteeEmail: email,
	}
	invite, err := c.view.Insert(ctx, tentative, func(ctx context.Context) (models.Invite, error) {
		invite, err := c.service.adapter.Invite(ctx, c.listID, email)
		return invite, mapAdapterError(err)
	})
	if err != nil {
		c.service.logger.Err(err).Int64("list_id", c.listID).Msg("invite rolled back")
		return models.Invite{}, fmt.Errorf("invite: %w", err)
	}
	return invite, nil
}

func (c *collaboratorsSession) Remove(ctx context.Context, inviteID int64) error {
	if err := checkRemovable(c.view, inviteID); err != nil {
		return fmt.Errorf("remove collaborator: %w", err)
	}

	err := c.view.Remove(ctx, inviteID, func(ctx context.Context) error {
		return mapAdapterError(c.service.adapter.RemoveCollaborator(ctx, inviteID))
	})
	if err != nil {
		c.service.logger.Err(err).Int64("invite_id", inviteID).Msg("collaborator removal rolled back")
		return fmt.Errorf("remove collaborator: %w", err)
	}
	return nil
}
