package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/eat-that-list/internal/config"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/gorilla/websocket"
	"github.com/sethvargo/go-retry"
)

const handshakeTimeout = 10 * time.Second

type wsSubscriber struct {
	baseURL   string
	token     func() string
	reconnect time.Duration
	dialer    *websocket.Dialer

	logger *logger.Logger
}

// NewWSSubscriber returns a [Subscriber] dialling the same host as the REST
// API. token is asked for the bearer token on every (re)connect.
func NewWSSubscriber(adapterCfg config.ClientAdapter, workersCfg config.ClientWorkers, token func() string, logger *logger.Logger) (Subscriber, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	wsURL, err := toWebsocketURL(baseURL)
	if err != nil {
		return nil, err
	}

	return &wsSubscriber{
		baseURL:   wsURL,
		token:     token,
		reconnect: workersCfg.ReconnectInterval,
		dialer:    &websocket.Dialer{HandshakeTimeout: handshakeTimeout, Proxy: http.ProxyFromEnvironment},
		logger:    logger,
	}, nil
}

func toWebsocketURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// Subscribe streams frames of path until ctx ends. Authorization failures
// end the stream early since redialling cannot fix them.
func (s *wsSubscriber) Subscribe(ctx context.Context, path string) <-chan json.RawMessage {
	out := make(chan json.RawMessage)

	go func() {
		defer close(out)

		backoff := retry.WithJitterPercent(10, retry.NewConstant(s.reconnect))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			err := s.stream(ctx, path, out)
			switch {
			case ctx.Err() != nil:
				return ctx.Err()
			case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrForbidden), errors.Is(err, ErrNotFound):
				return err
			}
			s.logger.Warn().Err(err).Str("path", path).Dur("retry_in", s.reconnect).Msg("subscription dropped")
			return retry.RetryableError(err)
		})
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			s.logger.Err(err).Str("path", path).Msg("subscription ended")
		}
	}()

	return out
}

// stream runs one connection. It always returns a non-nil error.
func (s *wsSubscriber) stream(ctx context.Context, path string, out chan<- json.RawMessage) error {
	header := http.Header{}
	if token := s.token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := s.dialer.DialContext(ctx, s.baseURL+path, header)
	if err != nil {
		if resp != nil {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
			resp.Body.Close()
			return mapStatus(resp.StatusCode, string(body))
		}
		return fmt.Errorf("dial %s: %w", path, err)
	}
	defer conn.Close()

	// unblock ReadMessage when ctx ends
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	s.logger.Debug().Str("path", path).Msg("subscription connected")
	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return ErrSubscriptionEnd
			}
			return fmt.Errorf("read %s: %w", path, err)
		}

		select {
		case out <- json.RawMessage(frame):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
