package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/onamkulam/interiors/internal/repository"
	"github.com/onamkulam/interiors/internal/service"
)

// NotificationReporter exposes email delivery counters for the health check.
type NotificationReporter interface {
	Stats() service.NotificationStats
}

type Handler struct {
	db            repository.DB
	notifications NotificationReporter
	frontendURL   string
}

// New creates the shared handler. notifications may be nil.
func New(db repository.DB, notifications NotificationReporter, frontendURL string) *Handler {
	return &Handler{db: db, notifications: notifications, frontendURL: frontendURL}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON writes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
