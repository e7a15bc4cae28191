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

type clientItemService struct {
	actor      string
	strategy   reconcile.Strategy
	adapter    adapter.ServerAdapter
	subscriber adapter.Subscriber

	logger *logger.Logger
}

func NewClientItemService(actor string, strategy reconcile.Strategy, serverAdapter adapter.ServerAdapter,
	subscriber adapter.Subscriber, logger *logger.Logger) ClientItemService {
	return &clientItemService{
		actor:      actor,
		strategy:   strategy,
		adapter:    serverAdapter,
		subscriber: subscriber,
		logger:     logger,
	}
}

// Open returns a fresh, unloaded session for listID.
func (s *clientItemService) Open(listID int64) ItemSession {
	return &itemSession{
		listID:  listID,
		service: s,
		view:    reconcile.NewView[models.ListItem](s.actor, s.strategy),
		logger:  &logger.Logger{Logger: s.logger.With().Int64("list_id", listID).Logger()},
	}
}

type itemSession struct {
	listID  int64
	service *clientItemService
	view    *reconcile.View[models.ListItem]

	logger *logger.Logger
}

func (s *itemSession) ListID() int64 {
	return s.listID
}

func (s *itemSession) View() *reconcile.View[models.ListItem] {
	return s.view
}

func (s *itemSession) Load(ctx context.Context) error {
	items, err := s.service.adapter.Items(ctx, s.listID)
	if err != nil {
		return fmt.Errorf("load items: %w", mapAdapterError(err))
	}
	s.view.Replace(items)
	return nil
}

func (s *itemSession) Run(ctx context.Context) error {
	if !s.view.Defined() {
		if err := s.Load(ctx); err != nil {
			return err
		}
	}
	return runSubscription(ctx, s.service.subscriber, itemsSubscriptionPath(s.listID), s.view, s.logger)
}

func (s *itemSession) Add(ctx context.Context, description string) (models.ListItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return models.ListItem{}, ErrEmptyDescription
	}
	if !s.view.Defined() {
		return models.ListItem{}, ErrViewNotLoaded
	}

	tentative := models.ListItem{
		ID:          tempID(s.view),
		ListID:      s.listID,
		Description: description,
		Creator:     s.service.actor,
	}
	item, err := s.view.Insert(ctx, tentative, func(ctx context.Context) (models.ListItem, error) {
		item, err := s.service.adapter.AddItem(ctx, s.listID, description)
		return item, mapAdapterError(err)
	})
	if err != nil {
		s.logger.Err(err).Msg("item creation rolled back")
		return models.ListItem{}, fmt.Errorf("add item: %w", err)
	}
	return item, nil
}

func (s *itemSession) Remove(ctx context.Context, itemID int64) error {
	if err := checkRemovable(s.view, itemID); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}

	err := s.view.Remove(ctx, itemID, func(ctx context.Context) error {
		return mapAdapterError(s.service.adapter.DeleteItem(ctx, s.listID, itemID))
	})
	if err != nil {
		s.logger.Err(err).Int64("item_id", itemID).Msg("item removal rolled back")
		return fmt.Errorf("remove item: %w", err)
	}
	return nil
}
