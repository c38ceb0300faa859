package enquiryform

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Submit(t *testing.T) {
	var got Data
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/enquiry", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"id":"abc","name":"Anu","email":"anu@example.com","createdAt":"2026-02-08T10:00:00Z"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", srv.Client())
	rec, err := c.Submit(context.Background(), Data{Name: "Anu", Email: "anu@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "abc", rec.ID)
	assert.Equal(t, 2026, rec.CreatedAt.Year())
	assert.Equal(t, "Anu", got.Name)
}

func TestClient_SubmitRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"Please provide a name"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).Submit(context.Background(), Data{})
	var se *SubmitError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.Equal(t, "Please provide a name", se.Message)
}

func TestClient_SubmitRateLimitedWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).Submit(context.Background(), Data{Name: "a"})
	var se *SubmitError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusTooManyRequests, se.StatusCode)
}

func TestClient_SubmitMalformedSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).Submit(context.Background(), Data{Name: "a"})
	require.Error(t, err)
	var se *SubmitError
	assert.False(t, errors.As(err, &se))
}

func TestClient_DrivesForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"id":"1","name":"Anu","email":"anu@example.com","createdAt":"2026-02-08T10:00:00Z"}}`))
	}))
	defer srv.Close()

	f := New(NewClient(srv.URL, nil))
	f.SetName("Anu")
	require.NoError(t, f.Next())
	f.SetEmail("anu@example.com")
	require.NoError(t, f.Next())
	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, StatusSucceeded, f.Status())
}
