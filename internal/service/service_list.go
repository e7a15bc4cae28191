// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/store"
	"github.com/MKhiriev/eat-that-list/models"
)

type listService struct {
	lists   store.ListRepository
	invites store.InviteRepository
	broker  Broker

	logger *logger.Logger
}

// NewListService constructs a [ListService] publishing every change to
// broker.
func NewListService(lists store.ListRepository, invites store.InviteRepository, broker Broker, logger *logger.Logger) ListService {
	return &listService{
		lists:   lists,
		invites: invites,
		broker:  broker,
		logger:  logger,
	}
}

func (s *listService) UserLists(ctx context.Context, userID string) ([]models.List, error) {
	lists, err := s.lists.UserLists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting user lists: %w", err)
	}
	return lists, nil
}

func (s *listService) CreateList(ctx context.Context, userID, name string) (models.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.List{}, ErrEmptyListName
	}

	list, err := s.lists.CreateList(ctx, models.List{Name: name, Owner: userID})
	if err != nil {
		return models.List{}, fmt.Errorf("error creating list: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("list_id", list.ID).Str("owner", userID).Msg("list created")
	s.broker.Publish(ListsTopic(userID))
	return list, nil
}

// DeleteList removes a list the user owns. Collaborators and invitees are
// notified as their lists and invites change.
func (s *listService) DeleteList(ctx context.Context, userID string, listID int64) error {
	list, err := s.lists.GetList(ctx, listID)
	if err != nil {
		return fmt.Errorf("error getting list: %w", err)
	}
	if list.Owner != userID {
		return ErrNotListOwner
	}

	members, err := s.lists.Members(ctx, listID)
	if err != nil {
		return fmt.Errorf("error getting list members: %w", err)
	}
	invites, err := s.invites.ListInvites(ctx, listID)
	if err != nil {
		return fmt.Errorf("error getting list invites: %w", err)
	}

	if err = s.lists.DeleteList(ctx, listID); err != nil {
		return fmt.Errorf("error deleting list: %w", err)
	}

	topics := []string{ItemsTopic(listID)}
	for _, member := range members {
		topics = append(topics, ListsTopic(member))
	}
	for _, invite := range invites {
		topics = append(topics, InvitesTopic(invite.Invitee))
	}
	s.broker.Publish(topics...)

	logger.FromContext(ctx).Info().Int64("list_id", listID).Msg("list deleted")
	return nil
}

func (s *listService) LeaveList(ctx context.Context, userID string, listID int64) error {
	list, err := s.lists.GetList(ctx, listID)
	if err != nil {
		return fmt.Errorf("error getting list: %w", err)
	}
	if list.Owner == userID {
		return ErrOwnerCannotLeave
	}

	if err = s.lists.LeaveList(ctx, listID, userID); err != nil {
		return fmt.Errorf("error leaving list: %w", err)
	}

	s.broker.Publish(ListsTopic(userID), ItemsTopic(listID))
	return nil
}

func (s *listService) CanAccess(ctx context.Context, userID string, listID int64) error {
	if _, err := s.lists.GetList(ctx, listID); err != nil {
		return fmt.Errorf("error getting list: %w", err)
	}

	ok, err := s.lists.HasAccess(ctx, listID, userID)
	if err != nil {
		return fmt.Errorf("error checking list access: %w", err)
	}
	if !ok {
		return ErrListAccessDenied
	}
	return nil
}

// membersTopics returns the lists topics of everyone who sees listID.
func membersTopics(ctx context.Context, lists store.ListRepository, listID int64) []string {
	members, err := lists.Members(ctx, listID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("list_id", listID).Msg("error getting list members for notification")
		return nil
	}

	topics := make([]string, 0, len(members))
	for _, member := range members {
		topics = append(topics, ListsTopic(member))
	}
	return topics
}
