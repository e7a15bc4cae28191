package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/eat-that-list/internal/service"
	"github.com/MKhiriev/eat-that-list/internal/utils"
	"github.com/go-chi/chi/v5"
)

// pathID parses the positive integer path parameter name.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathParam, name, chi.URLParam(r, name))
	}
	return id, nil
}

// userID returns the authenticated user; the auth middleware guarantees it.
func userID(r *http.Request) string {
	id, _ := utils.GetUserIDFromContext(r.Context())
	return id
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return nil
}

// decodeRequest decodes the JSON body into v and validates it.
func (h *Handler) decodeRequest(r *http.Request, v any, fields ...string) error {
	if err := decodeJSON(r, v); err != nil {
		return err
	}
	if err := h.validator.Validate(r.Context(), v, fields...); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return nil
}
