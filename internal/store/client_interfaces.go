package store

import (
	"context"

	"github.com/MKhiriev/eat-that-list/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the signed-in session of the terminal client
// so that a restart does not require signing in again.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	LoadSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}
