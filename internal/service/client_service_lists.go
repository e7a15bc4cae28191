// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

type clientListService struct {
	actor      string
	adapter    adapter.ServerAdapter
	subscriber adapter.Subscriber
	view       *reconcile.View[models.List]

	logger *logger.Logger
}

// NewClientListService returns the lists of actor, reconciled with
// strategy.
func NewClientListService(actor string, strategy reconcile.Strategy, serverAdapter adapter.ServerAdapter,
	subscriber adapter.Subscriber, logger *logger.Logger) ClientListService {
	return &clientListService{
		actor:      actor,
		adapter:    serverAdapter,
		subscriber: subscriber,
		view:       reconcile.NewView[models.List](actor, strategy),
		logger:     logger,
	}
}

func (s *clientListService) View() *reconcile.View[models.List] {
	return s.view
}

func (s *clientListService) Load(ctx context.Context) error {
	lists, err := s.adapter.Lists(ctx)
	if err != nil {
		return fmt.Errorf("load lists: %w", mapAdapterError(err))
	}
	s.view.Replace(lists)
	return nil
}

func (s *clientListService) Run(ctx context.Context) error {
	if !s.view.Defined() {
		if err := s.Load(ctx); err != nil {
			return err
		}
	}
	return runSubscription(ctx, s.subscriber, listsSubscriptionPath, s.view, s.logger)
}

func (s *clientListService) Create(ctx context.Context, name string) (models.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.List{}, ErrEmptyListName
	}
	if !s.view.Defined() {
		return models.List{}, ErrViewNotLoaded
	}

	tentative := models.List{ID: tempID(s.view), Name: name, Owner: s.actor}
	list, err := s.view.Insert(ctx, tentative, func(ctx context.Context) (models.List, error) {
		list, err := s.adapter.CreateList(ctx, name)
		return list, mapAdapterError(err)
	})
	if err != nil {
		s.logger.Err(err).Str("name", name).Msg("list creation rolled back")
		return models.List{}, fmt.Errorf("create list: %w", err)
	}
	return list, nil
}

func (s *clientListService) Delete(ctx context.Context, listID int64) error {
	return s.remove(ctx, "delete list", listID, s.adapter.DeleteList)
}

func (s *clientListService) Leave(ctx context.Context, listID int64) error {
	return s.remove(ctx, "leave list", listID, s.adapter.LeaveList)
}

func (s *clientListService) remove(ctx context.Context, op string, listID int64, call func(context.Context, int64) error) error {
	if err := checkRemovable(s.view, listID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := s.view.Remove(ctx, listID, func(ctx context.Context) error {
		return mapAdapterError(call(ctx, listID))
	})
	if err != nil {
		s.logger.Err(err).Int64("list_id", listID).Msgf("%s rolled back", op)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// checkRemovable rejects removals the server could not apply.
func checkRemovable[E reconcile.Entity](view *reconcile.View[E], id int64) error {
	switch {
	case !view.Defined():
		return ErrViewNotLoaded
	case reconcile.IsTemp(id):
		return ErrNotConfirmed
	}
	return nil
}
