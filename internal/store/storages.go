package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/eat-that-list/internal/config"
	"github.com/MKhiriev/eat-that-list/internal/logger"
)

// Storages groups the server repositories.
type Storages struct {
	UserRepository     UserRepository
	ListRepository     ListRepository
	ListItemRepository ListItemRepository
	InviteRepository   InviteRepository

	// DB is exposed for health checks.
	DB *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds every
// repository.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		ListRepository:     NewListRepository(db, logger),
		ListItemRepository: NewListItemRepository(db, logger),
		InviteRepository:   NewInviteRepository(db, logger),
		DB:                 db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
