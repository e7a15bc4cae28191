package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/mock"
	"github.com/MKhiriev/eat-that-list/internal/reconcile"
	"github.com/MKhiriev/eat-that-list/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestItemSession(t *testing.T, listID int64) (ItemSession, *mock.MockServerAdapter, *mock.MockSubscriber) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSub := mock.NewMockSubscriber(ctrl)
	svc := NewClientItemService("u1", reconcile.StrategySetDiff, mockAdapter, mockSub, logger.Nop())
	return svc.Open(listID), mockAdapter, mockSub
}

func itemIDs(items []models.ListItem) []int64 {
	ids := make([]int64, 0, len(items))
	for _, i := range items {
		ids = append(ids, i.ID)
	}
	return ids
}

func TestItemSession_AddAndRemove(t *testing.T) {
	session, mockAdapter, _ := newTestItemSession(t, 3)
	ctx := context.Background()

	mockAdapter.EXPECT().Items(gomock.Any(), int64(3)).Return([]models.ListItem{{ID: 1, ListID: 3, Creator: "u2"}}, nil)
	require.NoError(t, session.Load(ctx))

	mockAdapter.EXPECT().
		AddItem(gomock.Any(), int64(3), "milk").
		Return(models.ListItem{ID: 9, ListID: 3, Description: "milk", Creator: "u1"}, nil)
	item, err := session.Add(ctx, " milk ")
	require.NoError(t, err)
	assert.Equal(t, int64(9), item.ID)
	assert.Equal(t, []int64{1, 9}, itemIDs(session.View().Entries()))

	mockAdapter.EXPECT().DeleteItem(gomock.Any(), int64(3), int64(1)).Return(nil)
	require.NoError(t, session.Remove(ctx, 1))
	assert.Equal(t, []int64{9}, itemIDs(session.View().Entries()))
}

func TestItemSession_AddFailureRollsBack(t *testing.T) {
	session, mockAdapter, _ := newTestItemSession(t, 3)
	session.View().Replace([]models.ListItem{{ID: 1, ListID: 3}})
	boom := errors.New("connection reset")

	mockAdapter.EXPECT().AddItem(gomock.Any(), int64(3), "milk").Return(models.ListItem{}, boom)

	_, err := session.Add(context.Background(), "milk")

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int64{1}, itemIDs(session.View().Entries()))
}

func TestItemSession_EmptyDescription(t *testing.T) {
	session, _, _ := newTestItemSession(t, 3)
	session.View().Replace(nil)

	_, err := session.Add(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyDescription)
}

func TestItemSession_RunSubscribesToList(t *testing.T) {
	session, _, mockSub := newTestItemSession(t, 3)
	session.View().Replace([]models.ListItem{{ID: 1, ListID: 3, Creator: "u1"}})

	mockSub.EXPECT().Subscribe(gomock.Any(), "/api/subscribe/lists/3/items").Return(frames(
		`{"type":"data","data":[{"id":1,"list_id":3,"creator":"u1"},{"id":4,"list_id":3,"creator":"u2"}]}`,
		`{"type":"data","data":[{"id":4,"list_id":3,"creator":"u2"}]}`,
	))

	_ = session.Run(context.Background())

	assert.Equal(t, []int64{4}, itemIDs(session.View().Entries()))
	assert.Equal(t, int64(3), session.ListID())
}
