package enquiryform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/onamkulam/interiors/internal/model"
)

const (
	enquiryPath       = "/api/enquiry"
	defaultHTTPTimeout = 15 * time.Second
	maxResponseBytes  = 64 << 10
)

// Client posts enquiries to the studio API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API at baseURL. A nil httpClient uses
// a client with a 15 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// SubmitError is a non-success response from the API.
type SubmitError struct {
	StatusCode int
	Message    string
}

func (e *SubmitError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("enquiry rejected: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("enquiry rejected: HTTP %d: %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success bool           `json:"success"`
	Data    *model.Enquiry `json:"data"`
	Error   string         `json:"error"`
}

// Submit posts d and returns the stored record.
func (c *Client) Submit(ctx context.Context, d Data) (*model.Enquiry, error) {
	body, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode enquiry: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+enquiryPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post enquiry: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &SubmitError{StatusCode: resp.StatusCode, Message: env.Error}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	if !env.Success || env.Data == nil {
		return nil, &SubmitError{StatusCode: resp.StatusCode, Message: env.Error}
	}
	return env.Data, nil
}
