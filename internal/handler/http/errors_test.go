package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/eat-that-list/internal/app"
	"github.com/MKhiriev/eat-that-list/internal/service"
	"github.com/MKhiriev/eat-that-list/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{fmt.Errorf("wrapped: %w", service.ErrInvalidDataProvided), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{ErrInvalidPathParam, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
		{service.ErrListAccessDenied, http.StatusForbidden, app.MsgAccessDenied},
		{store.ErrListNotFound, http.StatusNotFound, app.MsgListNotFound},
		{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
		{store.ErrBeginningTransaction, http.StatusInternalServerError, app.MsgInternalServerError},
		// первая строка таблицы побеждает
		{fmt.Errorf("%w: %w", service.ErrWrongPassword, store.ErrNoUserWasFound), http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, msg := responseFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
