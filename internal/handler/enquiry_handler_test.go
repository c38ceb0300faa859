package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/onamkulam/interiors/internal/model"
	"github.com/onamkulam/interiors/internal/repository"
	"github.com/onamkulam/interiors/internal/service"
)

// ---------------------------------------------------------------------------
// Mock EnquiryService
// ---------------------------------------------------------------------------

type mockEnquiryService struct {
	submitFunc func(ctx context.Context, e *model.Enquiry) error
	getFunc    func(ctx context.Context, id string) (*model.Enquiry, error)
	listFunc   func(ctx context.Context, opts model.EnquiryListOptions) ([]*model.Enquiry, error)
}

func (m *mockEnquiryService) Submit(ctx context.Context, e *model.Enquiry) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, e)
	}
	e.ID = "enq-1"
	e.CreatedAt = time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)
	return nil
}

func (m *mockEnquiryService) Get(ctx context.Context, id string) (*model.Enquiry, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockEnquiryService) List(ctx context.Context, opts model.EnquiryListOptions) ([]*model.Enquiry, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

type envelopeResponse struct {
	Success bool           `json:"success"`
	Data    *model.Enquiry `json:"data"`
	Error   string         `json:"error"`
}

func submitEnquiry(t *testing.T, h *EnquiryHandler, body string) (*httptest.ResponseRecorder, envelopeResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/enquiry", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	var resp envelopeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rec, resp
}

// ---------------------------------------------------------------------------
// POST /api/enquiry
// ---------------------------------------------------------------------------

func TestEnquiryHandler_Submit_Success(t *testing.T) {
	var captured *model.Enquiry
	mock := &mockEnquiryService{
		submitFunc: func(ctx context.Context, e *model.Enquiry) error {
			captured = e
			e.ID = "enq-42"
			return nil
		},
	}
	h := NewEnquiryHandler(mock)

	rec, resp := submitEnquiry(t, h, `{"name":"Anu","email":"anu@example.com","phone":"98765 43210","details":"3BHK"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !resp.Success || resp.Data == nil || resp.Data.ID != "enq-42" {
		t.Errorf("expected success envelope with data, got %+v", resp)
	}
	if resp.Error != "" {
		t.Errorf("expected no error field, got %q", resp.Error)
	}
	if captured == nil {
		t.Fatal("expected Submit to be called")
	}
	if captured.Phone != "98765 43210" || captured.Details != "3BHK" {
		t.Errorf("optional fields not passed through: %+v", captured)
	}
}

func TestEnquiryHandler_Submit_ValidationError(t *testing.T) {
	mock := &mockEnquiryService{
		submitFunc: func(ctx context.Context, e *model.Enquiry) error {
			return &service.ValidationError{Field: "email", Message: "Please provide a valid email address"}
		},
	}
	h := NewEnquiryHandler(mock)

	rec, resp := submitEnquiry(t, h, `{"name":"Anu","email":"nope"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	if resp.Error != "Please provide a valid email address" {
		t.Errorf("expected validation message, got %q", resp.Error)
	}
}

func TestEnquiryHandler_Submit_PersistenceErrorIsGeneric(t *testing.T) {
	mock := &mockEnquiryService{
		submitFunc: func(ctx context.Context, e *model.Enquiry) error {
			return &service.PersistenceError{Err: errors.New("dial tcp 10.0.0.5:5432: connection refused")}
		},
	}
	h := NewEnquiryHandler(mock)

	rec, resp := submitEnquiry(t, h, `{"name":"Anu","email":"anu@example.com"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if resp.Error != "failed to save enquiry" {
		t.Errorf("expected generic message, got %q", resp.Error)
	}
}

func TestEnquiryHandler_Submit_InvalidJSON(t *testing.T) {
	called := false
	mock := &mockEnquiryService{
		submitFunc: func(ctx context.Context, e *model.Enquiry) error {
			called = true
			return nil
		},
	}
	h := NewEnquiryHandler(mock)

	rec, resp := submitEnquiry(t, h, `{"name":`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if resp.Success || resp.Error == "" {
		t.Errorf("expected failure envelope, got %+v", resp)
	}
	if called {
		t.Error("service must not be called for invalid JSON")
	}
}

func TestEnquiryHandler_Submit_BodyTooLarge(t *testing.T) {
	h := NewEnquiryHandler(&mockEnquiryService{})

	body := `{"name":"Anu","email":"anu@example.com","details":"` + strings.Repeat("x", maxEnquiryBodyBytes) + `"}`
	rec, _ := submitEnquiry(t, h, body)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for oversized body, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// GET /api/admin/enquiries
// ---------------------------------------------------------------------------

func TestEnquiryHandler_AdminList_Pagination(t *testing.T) {
	tests := []struct {
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"", 20, 0},
		{"?limit=5&offset=10", 5, 10},
		{"?limit=500", 20, 0},
		{"?limit=0&offset=-3", 20, 0},
		{"?limit=abc", 20, 0},
	}
	for _, tt := range tests {
		var got model.EnquiryListOptions
		mock := &mockEnquiryService{
			listFunc: func(ctx context.Context, opts model.EnquiryListOptions) ([]*model.Enquiry, error) {
				got = opts
				return nil, nil
			},
		}
		h := NewEnquiryHandler(mock)

		rec := httptest.NewRecorder()
		h.AdminList(rec, httptest.NewRequest("GET", "/api/admin/enquiries"+tt.query, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("%q: expected 200, got %d", tt.query, rec.Code)
		}
		if got.Limit != tt.wantLimit || got.Offset != tt.wantOffset {
			t.Errorf("%q: expected limit=%d offset=%d, got %+v", tt.query, tt.wantLimit, tt.wantOffset, got)
		}
	}
}

func TestEnquiryHandler_AdminList_EmptyIsArray(t *testing.T) {
	h := NewEnquiryHandler(&mockEnquiryService{})

	rec := httptest.NewRecorder()
	h.AdminList(rec, httptest.NewRequest("GET", "/api/admin/enquiries", nil))

	if body := strings.TrimSpace(rec.Body.String()); body != `{"enquiries":[]}` {
		t.Errorf("expected empty array, got %s", body)
	}
}

func TestEnquiryHandler_AdminList_Error(t *testing.T) {
	mock := &mockEnquiryService{
		listFunc: func(ctx context.Context, opts model.EnquiryListOptions) ([]*model.Enquiry, error) {
			return nil, errors.New("db down")
		},
	}
	h := NewEnquiryHandler(mock)

	rec := httptest.NewRecorder()
	h.AdminList(rec, httptest.NewRequest("GET", "/api/admin/enquiries", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestEnquiryHandler_AdminGet(t *testing.T) {
	mock := &mockEnquiryService{
		getFunc: func(ctx context.Context, id string) (*model.Enquiry, error) {
			if id == "enq-1" {
				return &model.Enquiry{ID: id, Name: "Anu"}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	h := NewEnquiryHandler(mock)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/admin/enquiries/{id}", h.AdminGet)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/admin/enquiries/enq-1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var e model.Enquiry
	if err := json.NewDecoder(rec.Body).Decode(&e); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if e.Name != "Anu" {
		t.Errorf("expected Anu, got %q", e.Name)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/admin/enquiries/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
