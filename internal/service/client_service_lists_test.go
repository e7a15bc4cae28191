// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/eat-that-list/internal/adapter"
	"github.com/MKhiriev/eat-that-list/internal/app"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/mock"
	"github.com/MKhiriev/eat-that-list/internal/reconcile"
	"github.com/MKhiriev/eat-that-list/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestListService(t *testing.T) (*clientListService, *mock.MockServerAdapter, *mock.MockSubscriber) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSub := mock.NewMockSubscriber(ctrl)
	svc := NewClientListService("u1", reconcile.StrategySetDiff, mockAdapter, mockSub, logger.Nop()).(*clientListService)
	return svc, mockAdapter, mockSub
}

func listIDs(lists []models.List) []int64 {
	ids := make([]int64, 0, len(lists))
	for _, l := range lists {
		ids = append(ids, l.ID)
	}
	return ids
}

// frames превращает сообщения в поток, закрываемый после отправки
func frames(msgs ...string) <-chan json.RawMessage {
	ch := make(chan json.RawMessage, len(msgs))
	for _, m := range msgs {
		ch <- json.RawMessage(m)
	}
	close(ch)
	return ch
}

func TestClientLists_Load(t *testing.T) {
	svc, mockAdapter, _ := newTestListService(t)

	mockAdapter.EXPECT().Lists(gomock.Any()).Return([]models.List{{ID: 1, Owner: "u1"}, {ID: 2, Owner: "u2"}}, nil)

	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, []int64{1, 2}, listIDs(svc.View().Entries()))
}

func TestClientLists_Create_Optimistic(t *testing.T) {
	svc, mockAdapter, _ := newTestListService(t)
	svc.View().Replace([]models.List{{ID: 1, Owner: "u1"}})

	mockAdapter.EXPECT().
		CreateList(gomock.Any(), "groceries").
		DoAndReturn(func(context.Context, string) (models.List, error) {
			// пока сервер отвечает, временная запись уже видна
			entries := svc.View().Entries()
			require.Len(t, entries, 2)
			assert.True(t, reconcile.IsTemp(entries[1].ID))
			assert.Equal(t, "groceries", entries[1].Name)
			return models.List{ID: 5, Name: "groceries", Owner: "u1"}, nil
		})

	list, err := svc.Create(context.Background(), "groceries")

	require.NoError(t, err)
	assert.Equal(t, int64(5), list.ID)
	assert.Equal(t, []int64{1, 5}, listIDs(svc.View().Entries()))
}

func TestClientLists_Create_RollbackOnFailure(t *testing.T) {
	svc, mockAdapter, _ := newTestListService(t)
	svc.View().Replace([]models.List{{ID: 1, Owner: "u1"}})

	mockAdapter.EXPECT().
		CreateList(gomock.Any(), "groceries").
		Return(models.List{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgEmptyListName))

	_, err := svc.Create(context.Background(), "groceries")

	assert.ErrorIs(t, err, ErrEmptyListName)
	assert.Equal(t, []int64{1}, listIDs(svc.View().Entries()))
}

func TestClientLists_Create_NotLoaded(t *testing.T) {
	svc, _, _ := newTestListService(t)

	_, err := svc.Create(context.Background(), "groceries")
	assert.ErrorIs(t, err, ErrViewNotLoaded)
}

func TestClientLists_Delete_RollbackRestoresPosition(t *testing.T) {
	svc, mockAdapter, _ := newTestListService(t)
	svc.View().Replace([]models.List{{ID: 1, Owner: "u1"}, {ID: 2, Owner: "u1"}, {ID: 3, Owner: "u1"}})

	mockAdapter.EXPECT().
		DeleteList(gomock.Any(), int64(2)).
		Return(fmt.Errorf("%w: %s", adapter.ErrForbidden, app.MsgNotListOwner))

	err := svc.Delete(context.Background(), 2)

	assert.ErrorIs(t, err, ErrNotListOwner)
	assert.Equal(t, []int64{1, 2, 3}, listIDs(svc.View().Entries()))
}

func TestClientLists_Leave(t *testing.T) {
	svc, mockAdapter, _ := newTestListService(t)
	svc.View().Replace([]models.List{{ID: 1, Owner: "u2"}})

	mockAdapter.EXPECT().LeaveList(gomock.Any(), int64(1)).Return(nil)

	require.NoError(t, svc.Leave(context.Background(), 1))
	assert.Empty(t, svc.View().Entries())
}

func TestClientLists_Delete_Unconfirmed(t *testing.T) {
	svc, _, _ := newTestListService(t)
	svc.View().Replace([]models.List{{ID: -7, Owner: "u1"}})

	assert.ErrorIs(t, svc.Delete(context.Background(), -7), ErrNotConfirmed)
}

func TestClientLists_Run_AppliesPushes(t *testing.T) {
	svc, mockAdapter, mockSub := newTestListService(t)

	gomock.InOrder(
		mockAdapter.EXPECT().Lists(gomock.Any()).Return([]models.List{{ID: 1, Owner: "u1"}}, nil),
		mockSub.EXPECT().Subscribe(gomock.Any(), "/api/subscribe/lists").Return(frames(
			`{"type":"data","data":[{"id":1,"owner":"u1"}]}`,
			`{"type":"ka"}`,
			`not json`,
			`{"type":"data","data":[{"id":1,"owner":"u1"},{"id":2,"owner":"u2"}]}`,
			`{"type":"data"}`,
		)),
	)

	err := svc.Run(context.Background())

	assert.ErrorIs(t, err, adapter.ErrSubscriptionEnd)
	assert.Equal(t, []int64{1, 2}, listIDs(svc.View().Entries()))
}

func TestClientLists_Run_StopsWithContext(t *testing.T) {
	svc, _, mockSub := newTestListService(t)
	svc.View().Replace(nil)

	ctx, cancel := context.WithCancel(context.Background())
	stream := make(chan json.RawMessage)
	mockSub.EXPECT().Subscribe(gomock.Any(), "/api/subscribe/lists").Return((<-chan json.RawMessage)(stream))

	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	cancel()
	close(stream)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
}
