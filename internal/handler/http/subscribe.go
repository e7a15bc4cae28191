// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/service"
	"github.com/MKhiriev/eat-that-list/models"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

func (h *Handler) subscribeLists(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	serveSubscription(h, w, r, service.ListsTopic(user), func(ctx context.Context) ([]models.List, error) {
		return h.services.ListService.UserLists(ctx, user)
	})
}

func (h *Handler) subscribeInvites(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	serveSubscription(h, w, r, service.InvitesTopic(user), func(ctx context.Context) ([]models.Invite, error) {
		return h.services.InviteService.PendingInvites(ctx, user)
	})
}

func (h *Handler) subscribeItems(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listID")
	if err != nil {
		writeError(w, r, err, "bad list id")
		return
	}

	user := userID(r)
	// refuse before the upgrade so the client sees a plain HTTP status
	if err = h.services.ListService.CanAccess(r.Context(), user, listID); err != nil {
		writeError(w, r, err, "list subscription refused")
		return
	}

	serveSubscription(h, w, r, service.ItemsTopic(listID), func(ctx context.Context) ([]models.ListItem, error) {
		return h.services.ListItemService.Items(ctx, user, listID)
	})
}

// serveSubscription upgrades the request and pushes the full result of query
// once on connect and again after every change published on topic. Idle
// connections get a keep-alive frame every h.keepAlive.
func serveSubscription[E any](h *Handler, w http.ResponseWriter, r *http.Request, topic string, query func(ctx context.Context) ([]E, error)) {
	log := logger.FromRequest(r)

	// subscribe first: a change between the snapshot and the subscription
	// must not be lost
	changes, unsubscribe := h.services.Broker.Subscribe(topic)
	defer unsubscribe()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client
		log.Err(err).Str("topic", topic).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// the client never sends anything; reading only detects the close
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	log.Debug().Str("topic", topic).Msg("subscription started")
	defer log.Debug().Str("topic", topic).Msg("subscription finished")

	push := func() bool {
		entries, err := query(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return false
			}
			status, msg := responseFromError(err)
			log.Err(err).Str("topic", topic).Int("status", status).Msg("subscription query failed")

			writeFrame(conn, models.PushMessage[E]{Type: models.PushTypeError, Error: msg})
			closeCode := websocket.ClosePolicyViolation
			if status == http.StatusInternalServerError {
				closeCode = websocket.CloseInternalServerErr
			}
			writeClose(conn, closeCode, msg)
			return false
		}
		return writeFrame(conn, models.NewDataMessage(entries)) == nil
	}

	if !push() {
		return
	}

	keepAlive := time.NewTicker(h.keepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			writeClose(conn, websocket.CloseNormalClosure, "")
			return
		case _, ok := <-changes:
			if !ok {
				writeClose(conn, websocket.CloseGoingAway, "")
				return
			}
			if !push() {
				return
			}
			keepAlive.Reset(h.keepAlive)
		case <-keepAlive.C:
			if err = writeFrame(conn, models.PushMessage[E]{Type: models.PushTypeKeepAlive}); err != nil {
				log.Debug().Err(err).Str("topic", topic).Msg("keep-alive failed")
				return
			}
		}
	}
}

func writeFrame[E any](conn *websocket.Conn, msg models.PushMessage[E]) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}

func writeClose(conn *websocket.Conn, code int, text string) {
	conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), time.Now().Add(writeWait))
}
