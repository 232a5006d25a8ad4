package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/umputun/callscope/pkg/assistant"
	"github.com/umputun/callscope/pkg/domain"
	"github.com/umputun/callscope/pkg/scriptcache"
)

// getConfigHandler returns the cached call configuration and how it was obtained
func (s *Server) getConfigHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.Cache.Get(r.Context()))
}

// saveConfigHandler replaces the call configuration and refreshes the cache.
// Saved assistant overrides are kept when the request has none.
func (s *Server) saveConfigHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var cfg domain.CallConfig
	if err := decodeJSON(r, &cfg); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := cfg.Validate(); err != nil {
		renderError(w, r, fmt.Errorf("invalid config: %w", err), http.StatusBadRequest)
		return
	}
	if cfg.Assistant == nil {
		cfg.Assistant = s.Cache.Get(ctx).Config.Assistant
	}

	if _, err := s.Configs.SaveConfig(ctx, cfg); err != nil {
		log.Printf("[ERROR] failed to save call config: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	res := s.Cache.Refresh(ctx)
	log.Printf("[INFO] call config saved, method %s", cfg.Method)
	renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "config": res.Config, "outcome": res.Outcome,
		"message": "Configuration saved successfully"})
}

// refreshConfigHandler drops the cached configuration and reads the store again
func (s *Server) refreshConfigHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.Cache.Refresh(r.Context()))
}

func (s *Server) defaultConfigHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, scriptcache.Default())
}

// getAssistantHandler returns the assistant settings for the current configuration
func (s *Server) getAssistantHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "assistant": s.Assistant.Current(r.Context())})
}

// updateAssistantHandler stores assistant overrides with the current configuration
func (s *Server) updateAssistantHandler(w http.ResponseWriter, r *http.Request) {
	var upd assistant.Settings
	if err := decodeJSON(r, &upd); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	res, err := s.Assistant.Update(r.Context(), upd)
	if errors.Is(err, assistant.ErrInvalid) {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to update assistant: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "assistant": res,
		"message": "Assistant configuration updated successfully"})
}
