package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/onamkulam/interiors/internal/model"
	"github.com/onamkulam/interiors/internal/repository"
	"github.com/onamkulam/interiors/internal/service"
)

const (
	maxEnquiryBodyBytes = 16 << 10
	defaultListLimit    = 20
	maxListLimit        = 100
)

const (
	msgInvalidJSON  = "invalid request body"
	msgSaveFailed   = "failed to save enquiry"
	msgListFailed   = "failed to list enquiries"
	msgNotFound     = "enquiry not found"
	msgLookupFailed = "failed to load enquiry"
)

// EnquiryHandler handles enquiry submission and admin listing.
type EnquiryHandler struct {
	enquiries service.EnquiryService
}

// NewEnquiryHandler creates an EnquiryHandler with the given service.
func NewEnquiryHandler(enquiries service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiries: enquiries}
}

// submitRequest is the expected JSON body for POST /api/enquiry.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Details string `json:"details"`
}

type submitResponse struct {
	Success bool           `json:"success"`
	Data    *model.Enquiry `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Submit handles POST /api/enquiry.
// The response does not wait for the notification emails.
func (h *EnquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxEnquiryBodyBytes)

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, submitResponse{Error: msgInvalidJSON})
		return
	}

	e := &model.Enquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Details: req.Details,
	}
	if err := h.enquiries.Submit(r.Context(), e); err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusBadRequest, submitResponse{Error: ve.Message})
			return
		}
		slog.Error("enquiry submit failed", "error", err)
		writeJSON(w, http.StatusBadRequest, submitResponse{Error: msgSaveFailed})
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{Success: true, Data: e})
}

// adminListResponse is the JSON response for GET /api/admin/enquiries.
type adminListResponse struct {
	Enquiries []*model.Enquiry `json:"enquiries"`
}

// AdminList handles GET /api/admin/enquiries (admin token required).
// Supports query params: limit (1-100, default 20) and offset.
func (h *EnquiryHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	opts := model.EnquiryListOptions{Limit: defaultListLimit}

	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= maxListLimit {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	enquiries, err := h.enquiries.List(r.Context(), opts)
	if err != nil {
		slog.Error("enquiry list failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	// Return [] not null for empty lists
	if enquiries == nil {
		enquiries = []*model.Enquiry{}
	}
	writeJSON(w, http.StatusOK, adminListResponse{Enquiries: enquiries})
}

// AdminGet handles GET /api/admin/enquiries/{id}.
func (h *EnquiryHandler) AdminGet(w http.ResponseWriter, r *http.Request) {
	e, err := h.enquiries.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		slog.Error("enquiry get failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgLookupFailed)
		return
	}
	writeJSON(w, http.StatusOK, e)
}
