package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/eat-that-list/internal/config"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/service"
	"github.com/MKhiriev/eat-that-list/internal/validators"
	"github.com/gorilla/websocket"
)

type Handler struct {
	services *service.Services

	// keepAlive is the period of keep-alive frames on subscriptions.
	keepAlive      time.Duration
	requestTimeout time.Duration
	upgrader       websocket.Upgrader
	validator      validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	keepAlive := cfg.KeepAlive
	if keepAlive <= 0 {
		keepAlive = config.DefaultKeepAlive
	}

	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = config.DefaultRequestTimeout
	}

	logger.Info().Dur("keep_alive", keepAlive).Dur("request_timeout", requestTimeout).Msg("http handler created")
	return &Handler{
		services:       services,
		keepAlive:      keepAlive,
		requestTimeout: requestTimeout,
		validator:      validators.NewRequestValidator(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the terminal client sends no Origin header
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}
