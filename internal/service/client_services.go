package service

import (
	"context"

	"github.com/MKhiriev/eat-that-list/internal/adapter"
	"github.com/MKhiriev/eat-that-list/internal/config"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/reconcile"
	"github.com/MKhiriev/eat-that-list/internal/store"
	"github.com/MKhiriev/eat-that-list/models"
)

// ClientServices groups the client services. Everything but AuthService
// depends on the signed-in actor and is built per session with ForSession.
type ClientServices struct {
	AuthService ClientAuthService

	adapter    adapter.ServerAdapter
	subscriber adapter.Subscriber
	strategy   reconcile.Strategy

	logger *logger.Logger
}

func NewClientServices(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, subscriber adapter.Subscriber,
	listsCfg config.ClientLists, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(sessions, serverAdapter, logger),
		adapter:     serverAdapter,
		subscriber:  subscriber,
		strategy:    listsCfg.Strategy,
		logger:      logger,
	}
}

// SessionServices are the services of one signed-in user.
type SessionServices struct {
	Session models.Session

	Lists   ClientListService
	Items   ClientItemService
	Invites ClientInviteService
}

func (c *ClientServices) ForSession(session models.Session) *SessionServices {
	log := &logger.Logger{Logger: c.logger.With().Str("user_id", session.UserID).Logger()}

	return &SessionServices{
		Session: session,
		Lists:   NewClientListService(session.UserID, c.strategy, c.adapter, c.subscriber, log),
		Items:   NewClientItemService(session.UserID, c.strategy, c.adapter, c.subscriber, log),
		Invites: NewClientInviteService(session.UserID, c.strategy, c.adapter, c.subscriber, log),
	}
}

// ServerVersion asks the server which version it runs.
func (c *ClientServices) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}
