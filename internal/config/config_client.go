package config

import (
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/eat-that-list/internal/countdown"
	"github.com/MKhiriev/eat-that-list/internal/reconcile"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used to persist the session.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ReconnectInterval is the pause before a dropped subscription is
	// re-established.
	ReconnectInterval time.Duration
}

// ClientLists contains list-view behaviour.
type ClientLists struct {
	Strategy    reconcile.Strategy
	RemoveDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Lists   ClientLists
}

// Client defaults applied when a value is left unset.
const (
	DefaultReconnectInterval = 2 * time.Second
	DefaultClientDSN         = "eat-that-list.db"
)

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	strategy, err := reconcile.ParseStrategy(cfg.Client.ReconcileStrategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidListConfigs, err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{ReconnectInterval: cfg.Workers.ReconnectInterval},
		Lists: ClientLists{
			Strategy:    strategy,
			RemoveDelay: cfg.Client.RemoveDelay,
		},
	}

	clientCfg.applyDefaults()
	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultClientDSN
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.ReconnectInterval == 0 {
		cfg.Workers.ReconnectInterval = DefaultReconnectInterval
	}
	if cfg.Lists.RemoveDelay == 0 {
		cfg.Lists.RemoveDelay = countdown.DefaultDuration
	}
}
