// Package llm checks that the configured OpenAI-compatible endpoint serves the configured model, diagnostics reports the result
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/callscope/pkg/config"
)

// ErrNotConfigured is returned by Check when no model is configured
var ErrNotConfigured = errors.New("llm not configured")

// ModelInfo describes an available model
type ModelInfo struct {
	ID      string `json:"id"`
	OwnedBy string `json:"ownedBy,omitempty"`
}

// ModelChecker verifies the configured model is served by the endpoint
type ModelChecker struct {
	client *openai.Client
	model  string
}

// NewModelChecker creates a checker for the given config
func NewModelChecker(cfg config.LLMConfig) *ModelChecker {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}

	return &ModelChecker{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}
}

// Configured reports whether a model is set
func (m *ModelChecker) Configured() bool {
	return m.model != ""
}

// Model returns the configured model name
func (m *ModelChecker) Model() string { return m.model }

// Check asks the endpoint for the configured model
func (m *ModelChecker) Check(ctx context.Context) (*ModelInfo, error) {
	if !m.Configured() {
		return nil, ErrNotConfigured
	}
	model, err := m.client.GetModel(ctx, m.model)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("model %s not found: %w", m.model, err)
		}
		return nil, fmt.Errorf("llm request failed: %w", err)
	}
	return &ModelInfo{ID: model.ID, OwnedBy: model.OwnedBy}, nil
}
