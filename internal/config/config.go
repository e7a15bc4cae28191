// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// list server and the terminal client. It is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds database settings: PostgreSQL on the server,
	// an SQLite file on the client.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the server as seen by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of client background loops.
	Workers Workers `envPrefix:"WORKERS_"`

	// Client holds list-view behaviour of the terminal client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server ("host:port").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single REST request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// KeepAlive is the period of keep-alive frames on subscriptions.
	// Env: SERVER_KEEPALIVE
	KeepAlive time.Duration `env:"KEEPALIVE"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN is the PostgreSQL connection string on the server and the SQLite
	// file path on the client.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client's view of the server.
type Adapter struct {
	// HTTPAddress is the base address of the server REST API; subscriptions
	// use the same host.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for client background loops.
type Workers struct {
	// ReconnectInterval is the pause before a dropped subscription is
	// re-established.
	// Env: WORKERS_RECONNECT_INTERVAL
	ReconnectInterval time.Duration `env:"RECONNECT_INTERVAL"`
}

// Client holds list-view behaviour of the terminal client.
type Client struct {
	// ReconcileStrategy is "setdiff" (default) or "length".
	// Env: CLIENT_RECONCILE_STRATEGY
	ReconcileStrategy string `env:"RECONCILE_STRATEGY"`

	// RemoveDelay is the swipe-to-delete countdown.
	// Env: CLIENT_REMOVE_DELAY
	RemoveDelay time.Duration `env:"REMOVE_DELAY"`
}

// Server defaults applied when a value is left unset.
const (
	DefaultTokenDuration  = 24 * time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultKeepAlive      = 15 * time.Second
	DefaultTokenIssuer    = "eat-that-list"
	DefaultVersion        = "dev"
)

// GetStructuredConfig loads, merges, and validates the server
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyServerDefaults()
	return cfg, cfg.validate()
}

func (cfg *StructuredConfig) applyServerDefaults() {
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.KeepAlive == 0 {
		cfg.Server.KeepAlive = DefaultKeepAlive
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
}
