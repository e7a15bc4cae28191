package http

import (
	"net/http"

	"github.com/MKhiriev/eat-that-list/internal/utils"
	"github.com/MKhiriev/eat-that-list/models"
)

func (h *Handler) userLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.services.ListService.UserLists(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err, "error fetching user lists")
		return
	}

	if lists == nil {
		lists = []models.List{}
	}
	utils.WriteJSON(w, lists, http.StatusOK)
}

func (h *Handler) createList(w http.ResponseWriter, r *http.Request) {
	var req models.CreateListRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err, "invalid list request")
		return
	}

	list, err := h.services.ListService.CreateList(r.Context(), userID(r), req.Name)
	if err != nil {
		writeError(w, r, err, "error creating list")
		return
	}

	utils.WriteJSON(w, list, http.StatusCreated)
}

func (h *Handler) deleteList(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listID")
	if err != nil {
		writeError(w, r, err, "bad list id")
		return
	}

	if err = h.services.ListService.DeleteList(r.Context(), userID(r), listID); err != nil {
		writeError(w, r, err, "error deleting list")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) leaveList(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listID")
	if err != nil {
		writeError(w, r, err, "bad list id")
		return
	}

	if err = h.services.ListService.LeaveList(r.Context(), userID(r), listID); err != nil {
		writeError(w, r, err, "error leaving list")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
