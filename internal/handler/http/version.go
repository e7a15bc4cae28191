package http

import (
	"net/http"

	"github.com/MKhiriev/eat-that-list/internal/logger"
)

// getServerVersion answers GET /api/version with the plain version string.
// The client shows it on the build info screen.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(version)); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("write version")
	}
}
