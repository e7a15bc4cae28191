package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/store"
	"github.com/MKhiriev/eat-that-list/models"
)

type listItemService struct {
	items  store.ListItemRepository
	lists  store.ListRepository
	access ListService
	broker Broker

	logger *logger.Logger
}

// NewListItemService constructs a [ListItemService]. Only members of a list
// may read or change its items.
func NewListItemService(items store.ListItemRepository, lists store.ListRepository, access ListService, broker Broker, logger *logger.Logger) ListItemService {
	return &listItemService{
		items:  items,
		lists:  lists,
		access: access,
		broker: broker,
		logger: logger,
	}
}

func (s *listItemService) Items(ctx context.Context, userID string, listID int64) ([]models.ListItem, error) {
	if err := s.access.CanAccess(ctx, userID, listID); err != nil {
		return nil, err
	}

	items, err := s.items.Items(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("error getting list items: %w", err)
	}
	return items, nil
}

func (s *listItemService) AddItem(ctx context.Context, userID string, listID int64, description string) (models.ListItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return models.ListItem{}, ErrEmptyDescription
	}
	if err := s.access.CanAccess(ctx, userID, listID); err != nil {
		return models.ListItem{}, err
	}

	item, err := s.items.CreateItem(ctx, models.ListItem{ListID: listID, Description: description, Creator: userID})
	if err != nil {
		return models.ListItem{}, fmt.Errorf("error creating list item: %w", err)
	}

	s.publish(ctx, listID)
	return item, nil
}

func (s *listItemService) DeleteItem(ctx context.Context, userID string, listID, itemID int64) error {
	if err := s.access.CanAccess(ctx, userID, listID); err != nil {
		return err
	}

	if err := s.items.DeleteItem(ctx, listID, itemID); err != nil {
		return fmt.Errorf("error deleting list item: %w", err)
	}

	s.publish(ctx, listID)
	return nil
}

// publish notifies item subscribers and, since item counts change, the
// lists subscribers of every member.
func (s *listItemService) publish(ctx context.Context, listID int64) {
	s.broker.Publish(append(membersTopics(ctx, s.lists, listID), ItemsTopic(listID))...)
}
