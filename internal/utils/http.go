package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes data as a JSON response with statusCode and returns the
// number of body bytes written.
//
// Responses carry collection snapshots that change on every mutation, so they
// are marked as not cacheable. If data cannot be marshaled the client gets
// 500 Internal Server Error and the marshal error is returned.
//
// Example usage:
//
//	WriteJSON(w, []models.List{}, http.StatusOK)
//	WriteJSON(w, createdItem, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
