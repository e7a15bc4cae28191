package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/eat-that-list/internal/service"
	"github.com/MKhiriev/eat-that-list/internal/utils"
	"github.com/MKhiriev/eat-that-list/models"
)

func (h *Handler) pendingInvites(w http.ResponseWriter, r *http.Request) {
	invites, err := h.services.InviteService.PendingInvites(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err, "error fetching pending invites")
		return
	}

	writeInvites(w, invites)
}

func (h *Handler) collaborators(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listID")
	if err != nil {
		writeError(w, r, err, "bad list id")
		return
	}

	invites, err := h.services.InviteService.Collaborators(r.Context(), userID(r), listID)
	if err != nil {
		writeError(w, r, err, "error fetching collaborators")
		return
	}

	writeInvites(w, invites)
}

func (h *Handler) invite(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listID")
	if err != nil {
		writeError(w, r, err, "bad list id")
		return
	}

	var req models.InviteRequest
	if err = h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err, "invalid invite request")
		return
	}

	invite, err := h.services.InviteService.Invite(r.Context(), userID(r), listID, req.Email)
	if err != nil {
		writeError(w, r, err, "error inviting user")
		return
	}

	utils.WriteJSON(w, invite, http.StatusCreated)
}

func (h *Handler) acceptInvite(w http.ResponseWriter, r *http.Request) {
	h.answerInvite(w, r, h.services.InviteService.Accept)
}

func (h *Handler) declineInvite(w http.ResponseWriter, r *http.Request) {
	h.answerInvite(w, r, h.services.InviteService.Decline)
}

func (h *Handler) answerInvite(w http.ResponseWriter, r *http.Request,
	answer func(ctx context.Context, userID string, inviteID int64) (models.Invite, error)) {
	inviteID, err := pathID(r, "inviteID")
	if err != nil {
		writeError(w, r, err, "bad invite id")
		return
	}

	invite, err := answer(r.Context(), userID(r), inviteID)
	if err != nil {
		writeError(w, r, err, "error answering invite")
		return
	}

	utils.WriteJSON(w, invite, http.StatusOK)
}

func (h *Handler) removeCollaborator(w http.ResponseWriter, r *http.Request) {
	inviteID, err := pathID(r, "inviteID")
	if err != nil {
		writeError(w, r, err, "bad invite id")
		return
	}

	if err = h.services.InviteService.RemoveCollaborator(r.Context(), userID(r), inviteID); err != nil {
		writeError(w, r, err, "error removing collaborator")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// findUser resolves an invitee by email.
func (h *Handler) findUser(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, r, service.ErrInvalidDataProvided, "email query parameter is empty")
		return
	}

	user, err := h.services.InviteService.FindInvitee(r.Context(), email)
	if err != nil {
		writeError(w, r, err, "error finding user")
		return
	}

	utils.WriteJSON(w, models.User{UserID: user.UserID, Email: user.Email}, http.StatusOK)
}

func writeInvites(w http.ResponseWriter, invites []models.Invite) {
	if invites == nil {
		invites = []models.Invite{}
	}
	utils.WriteJSON(w, invites, http.StatusOK)
}
