package service

import (
	"fmt"

	"github.com/MKhiriev/eat-that-list/internal/config"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/store"
)

// Services groups the server business services.
type Services struct {
	AuthService     AuthService
	ListService     ListService
	ListItemService ListItemService
	InviteService   InviteService
	AppInfoService  AppInfoService
	Broker          Broker
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	broker := NewBroker(logger)
	lists := NewListService(storages.ListRepository, storages.InviteRepository, broker, logger)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		ListService:     lists,
		ListItemService: NewListItemService(storages.ListItemRepository, storages.ListRepository, lists, broker, logger),
		InviteService:   NewInviteService(storages.UserRepository, storages.ListRepository, storages.InviteRepository, lists, broker, logger),
		AppInfoService:  appInfo,
		Broker:          broker,
	}, nil
}
