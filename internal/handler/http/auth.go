package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/service"
	"github.com/MKhiriev/eat-that-list/internal/store"
	"github.com/MKhiriev/eat-that-list/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if err := h.decodeRequest(r, &user); err != nil {
		writeError(w, r, err, "invalid registration request")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	h.writeToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err, "invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		// an unknown email must look exactly like a wrong password
		if errors.Is(err, store.ErrNoUserWasFound) {
			err = fmt.Errorf("%w: %w", service.ErrWrongPassword, err)
		}
		writeError(w, r, err, "user login failed")
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")
	h.writeToken(w, r, foundUser)
}

// refreshToken issues a fresh token for the already authenticated user.
func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	h.writeToken(w, r, models.User{UserID: userID(r)})
}

func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
