// Package vapi is a small JSON client for the Vapi voice AI API, covering outbound calls and
// assistant management.
package vapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotConfigured is returned when the client has no API key
var ErrNotConfigured = errors.New("vapi api key not configured")

// APIError is a non-2xx answer from the Vapi API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vapi api error %d: %s", e.StatusCode, e.Message)
}

// Params configure the client
type Params struct {
	BaseURL       string
	APIKey        string
	PhoneNumberID string
	AssistantID   string
	Timeout       time.Duration
}

// Client talks to the Vapi REST API
type Client struct {
	baseURL       string
	apiKey        string
	phoneNumberID string
	assistantID   string
	client        *http.Client
	now           func() time.Time
	newID         func() string
}

// New creates a Vapi client
func New(p Params) *Client {
	if p.BaseURL == "" {
		p.BaseURL = "https://api.vapi.ai"
	}
	if p.Timeout == 0 {
		p.Timeout = 30 * time.Second
	}
	return &Client{
		baseURL:       strings.TrimSuffix(p.BaseURL, "/"),
		apiKey:        p.APIKey,
		phoneNumberID: p.PhoneNumberID,
		assistantID:   p.AssistantID,
		client:        &http.Client{Timeout: p.Timeout},
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// Configured reports whether the client has credentials
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Customer is the called party
type Customer struct {
	Number string `json:"number"`
	Name   string `json:"name,omitempty"`
}

// CallRequest is the body of a call creation request
type CallRequest struct {
	PhoneNumberID string         `json:"phoneNumberId,omitempty"`
	Customer      Customer       `json:"customer"`
	AssistantID   string         `json:"assistantId,omitempty"`
	CustomerID    string         `json:"customerId,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// Call is a Vapi call as returned by the API
type Call struct {
	ID            string    `json:"id"`
	Type          string    `json:"type,omitempty"`
	Status        string    `json:"status"`
	EndedReason   string    `json:"endedReason,omitempty"`
	PhoneNumberID string    `json:"phoneNumberId,omitempty"`
	AssistantID   string    `json:"assistantId,omitempty"`
	Customer      *Customer `json:"customer,omitempty"`
	CreatedAt     string    `json:"createdAt,omitempty"`
	StartedAt     string    `json:"startedAt,omitempty"`
	EndedAt       string    `json:"endedAt,omitempty"`
	Cost          float64   `json:"cost,omitempty"`
	Transcript    string    `json:"transcript,omitempty"`
	Summary       string    `json:"summary,omitempty"`
	RecordingURL  string    `json:"recordingUrl,omitempty"`
}

// CallSpec describes an outbound call
type CallSpec struct {
	Number         string
	CandidateName  string
	AssistantID    string // empty means the configured default
	FallbackReason string // set when the call replaces a failed Twilio attempt
}

// CreateCall places an outbound call
func (c *Client) CreateCall(ctx context.Context, spec CallSpec) (*Call, error) {
	assistantID := spec.AssistantID
	if assistantID == "" {
		assistantID = c.assistantID
	}
	name := spec.CandidateName
	if name == "" {
		name = "Candidate"
	}
	metadata := map[string]any{
		"candidateName": spec.CandidateName,
		"callType":      "interview",
		"timestamp":     c.now().UTC().Format(time.RFC3339),
	}
	if spec.FallbackReason != "" {
		metadata["fallbackReason"] = spec.FallbackReason
	}
	req := CallRequest{
		PhoneNumberID: c.phoneNumberID,
		Customer:      Customer{Number: spec.Number, Name: name},
		AssistantID:   assistantID,
		CustomerID:    "candidate_" + c.newID(),
		Metadata:      metadata,
	}

	var res Call
	if err := c.do(ctx, http.MethodPost, "/call", req, &res); err != nil {
		return nil, fmt.Errorf("create call: %w", err)
	}
	return &res, nil
}

// GetCall returns the call by id
func (c *Client) GetCall(ctx context.Context, id string) (*Call, error) {
	var res Call
	if err := c.do(ctx, http.MethodGet, "/call/"+url.PathEscape(id), nil, &res); err != nil {
		return nil, fmt.Errorf("get call %s: %w", id, err)
	}
	return &res, nil
}

// ConnectURL is where a Twilio call is redirected to bridge into the Vapi call
func (c *Client) ConnectURL(callID string) string {
	return c.baseURL + "/call/" + url.PathEscape(callID) + "/connect"
}

// do sends a JSON request and decodes a JSON answer into out, out may be nil
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	var body io.Reader = http.NoBody
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(respBody, resp.Status)}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the message of a Vapi error body, message can be a string or a list
func errorMessage(body []byte, fallback string) string {
	var e struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return fallback
	}

	var msg string
	if err := json.Unmarshal(e.Message, &msg); err == nil && msg != "" {
		return msg
	}
	var msgs []string
	if err := json.Unmarshal(e.Message, &msgs); err == nil && len(msgs) > 0 {
		return strings.Join(msgs, "; ")
	}
	if e.Error != "" {
		return e.Error
	}
	return fallback
}
