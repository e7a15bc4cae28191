package service

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/MKhiriev/eat-that-list/internal/adapter"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/reconcile"
	"github.com/MKhiriev/eat-that-list/models"
)

// Subscription paths.
const (
	listsSubscriptionPath   = "/api/subscribe/lists"
	invitesSubscriptionPath = "/api/subscribe/invites"
)

func itemsSubscriptionPath(listID int64) string {
	return listsSubscriptionPath + "/" + strconv.FormatInt(listID, 10) + "/items"
}

// runSubscription applies every data frame of path to view, in arrival
// order, until the stream ends. Frames without a snapshot are skipped.
func runSubscription[E reconcile.Entity](ctx context.Context, sub adapter.Subscriber, path string, view *reconcile.View[E], log *logger.Logger) error {
	for frame := range sub.Subscribe(ctx, path) {
		var msg models.PushMessage[E]
		if err := json.Unmarshal(frame, &msg); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("malformed push message")
			continue
		}

		switch msg.Type {
		case models.PushTypeData:
			if msg.Data == nil {
				continue
			}
			view.ApplyPush(reconcile.NewSnapshot(*msg.Data))
		case models.PushTypeError:
			log.Warn().Str("path", path).Str("error", msg.Error).Msg("subscription error")
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return adapter.ErrSubscriptionEnd
}

// tempID picks a temporary id not yet used in view.
func tempID[E reconcile.Entity](view *reconcile.View[E]) int64 {
	return reconcile.NewTempID(func(id int64) bool {
		_, ok := view.Get(id)
		return ok
	})
}
