package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/store"
	"github.com/MKhiriev/eat-that-list/models"
)

type inviteService struct {
	users   store.UserRepository
	lists   store.ListRepository
	invites store.InviteRepository
	access  ListService
	broker  Broker

	logger *logger.Logger
}

// NewInviteService constructs an [InviteService].
func NewInviteService(users store.UserRepository, lists store.ListRepository, invites store.InviteRepository,
	access ListService, broker Broker, logger *logger.Logger) InviteService {
	return &inviteService{
		users:   users,
		lists:   lists,
		invites: invites,
		access:  access,
		broker:  broker,
		logger:  logger,
	}
}

// FindInvitee looks a user up by email, ignoring case and surrounding
// spaces.
func (s *inviteService) FindInvitee(ctx context.Context, email string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("error finding invitee: %w", err)
	}
	user.PasswordHash = ""
	return user, nil
}

// Invite lets the owner of listID invite the user registered under email.
func (s *inviteService) Invite(ctx context.Context, userID string, listID int64, email string) (models.Invite, error) {
	list, err := s.lists.GetList(ctx, listID)
	if err != nil {
		return models.Invite{}, fmt.Errorf("error getting list: %w", err)
	}
	if list.Owner != userID {
		return models.Invite{}, ErrNotListOwner
	}

	invitee, err := s.FindInvitee(ctx, email)
	if err != nil {
		return models.Invite{}, err
	}
	if invitee.UserID == userID {
		return models.Invite{}, ErrSelfInvite
	}

	invite, err := s.invites.CreateInvite(ctx, models.Invite{
		ListID:       listID,
		Inviter:      userID,
		Invitee:      invitee.UserID,
		InviteeEmail: invitee.Email,
	})
	if err != nil {
		return models.Invite{}, fmt.Errorf("error creating invite: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("list_id", listID).Str("invitee", invitee.UserID).Msg("invite sent")
	s.broker.Publish(InvitesTopic(invitee.UserID))
	return invite, nil
}

func (s *inviteService) PendingInvites(ctx context.Context, userID string) ([]models.Invite, error) {
	invites, err := s.invites.PendingInvites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting pending invites: %w", err)
	}
	return invites, nil
}

// Collaborators lists every invite of the list with its status; any member
// may see it.
func (s *inviteService) Collaborators(ctx context.Context, userID string, listID int64) ([]models.Invite, error) {
	if err := s.access.CanAccess(ctx, userID, listID); err != nil {
		return nil, err
	}

	invites, err := s.invites.ListInvites(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("error getting collaborators: %w", err)
	}
	return invites, nil
}

func (s *inviteService) Accept(ctx context.Context, userID string, inviteID int64) (models.Invite, error) {
	invite, err := s.invites.AnswerInvite(ctx, inviteID, userID, true)
	if err != nil {
		return models.Invite{}, fmt.Errorf("error accepting invite: %w", err)
	}

	s.broker.Publish(append(membersTopics(ctx, s.lists, invite.ListID), InvitesTopic(userID))...)
	return invite, nil
}

func (s *inviteService) Decline(ctx context.Context, userID string, inviteID int64) (models.Invite, error) {
	invite, err := s.invites.AnswerInvite(ctx, inviteID, userID, false)
	if err != nil {
		return models.Invite{}, fmt.Errorf("error declining invite: %w", err)
	}

	s.broker.Publish(InvitesTopic(userID))
	return invite, nil
}

// RemoveCollaborator deletes an invite of a list the user owns, revoking the
// access it granted.
func (s *inviteService) RemoveCollaborator(ctx context.Context, userID string, inviteID int64) error {
	invite, err := s.invites.GetInvite(ctx, inviteID)
	if err != nil {
		return fmt.Errorf("error getting invite: %w", err)
	}

	list, err := s.lists.GetList(ctx, invite.ListID)
	if err != nil {
		return fmt.Errorf("error getting list: %w", err)
	}
	if list.Owner != userID {
		return ErrNotListOwner
	}

	if _, err = s.invites.DeleteInvite(ctx, inviteID); err != nil {
		return fmt.Errorf("error removing collaborator: %w", err)
	}

	// the items stream of the removed user re-checks access and closes
	s.broker.Publish(ListsTopic(invite.Invitee), InvitesTopic(invite.Invitee), ItemsTopic(invite.ListID))
	return nil
}

// compile-time check
var _ InviteService = (*inviteService)(nil)
