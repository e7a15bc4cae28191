package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/eat-that-list/internal/config"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/mock"
	"github.com/MKhiriev/eat-that-list/internal/reconcile"
	"github.com/MKhiriev/eat-that-list/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientServices(t *testing.T) (*ClientServices, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	services := NewClientServices(mock.NewMockSessionRepository(ctrl), mockAdapter, mock.NewMockSubscriber(ctrl),
		config.ClientLists{Strategy: reconcile.StrategySetDiff, RemoveDelay: 3 * time.Second}, logger.Nop())
	return services, mockAdapter
}

func TestClientServices_ForSession(t *testing.T) {
	services, _ := newTestClientServices(t)

	s := services.ForSession(models.Session{UserID: "alice", Email: "alice@example.com"})

	require.NotNil(t, s)
	assert.Equal(t, "alice", s.Session.UserID)
	assert.Equal(t, "alice", s.Lists.View().Actor())
	assert.Equal(t, "alice", s.Invites.Pending().Actor())
	assert.Equal(t, "alice", s.Items.Open(7).View().Actor())
	assert.Equal(t, int64(7), s.Items.Open(7).ListID())

	// представления новой сессии не определены до первой загрузки
	assert.False(t, s.Lists.View().Defined())
	assert.False(t, s.Invites.Pending().Defined())
}

func TestClientServices_ServerVersion(t *testing.T) {
	t.Run("версия сервера", func(t *testing.T) {
		services, mockAdapter := newTestClientServices(t)
		mockAdapter.EXPECT().Version(gomock.Any()).Return("v1.2.0", nil)

		version, err := services.ServerVersion(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "v1.2.0", version)
	})

	t.Run("сервер недоступен", func(t *testing.T) {
		services, mockAdapter := newTestClientServices(t)
		errDown := errors.New("dial tcp: connection refused")
		mockAdapter.EXPECT().Version(gomock.Any()).Return("", errDown)

		_, err := services.ServerVersion(context.Background())

		assert.ErrorIs(t, err, errDown)
	})
}
