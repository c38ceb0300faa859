package handler

import (
	"net/http"

	"github.com/onamkulam/interiors/internal/service"
)

type healthResponse struct {
	Status        string                     `json:"status"`
	Message       string                     `json:"message"`
	Notifications *service.NotificationStats `json:"notifications,omitempty"`
}

// Health handles GET /api/health. It reports unhealthy only when the
// enquiry store is unreachable; email delivery problems show up in the
// notification counters.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	var stats *service.NotificationStats
	if h.notifications != nil {
		s := h.notifications.Stats()
		stats = &s
	}

	if err := h.db.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:        "unhealthy",
			Message:       err.Error(),
			Notifications: stats,
		})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Message:       "OnamKulam Interiors API",
		Notifications: stats,
	})
}
