package http

import (
	"net/http"

	"github.com/MKhiriev/eat-that-list/internal/utils"
	"github.com/MKhiriev/eat-that-list/models"
)

func (h *Handler) items(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listID")
	if err != nil {
		writeError(w, r, err, "bad list id")
		return
	}

	items, err := h.services.ListItemService.Items(r.Context(), userID(r), listID)
	if err != nil {
		writeError(w, r, err, "error fetching list items")
		return
	}

	if items == nil {
		items = []models.ListItem{}
	}
	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listID")
	if err != nil {
		writeError(w, r, err, "bad list id")
		return
	}

	var req models.CreateItemRequest
	if err = h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err, "invalid item request")
		return
	}

	item, err := h.services.ListItemService.AddItem(r.Context(), userID(r), listID, req.Description)
	if err != nil {
		writeError(w, r, err, "error adding list item")
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listID")
	if err != nil {
		writeError(w, r, err, "bad list id")
		return
	}
	itemID, err := pathID(r, "itemID")
	if err != nil {
		writeError(w, r, err, "bad item id")
		return
	}

	if err = h.services.ListItemService.DeleteItem(r.Context(), userID(r), listID, itemID); err != nil {
		writeError(w, r, err, "error deleting list item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
