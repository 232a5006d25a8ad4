package server

import (
	"errors"
	"fmt"
	"html"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/callscope/pkg/domain"
	"github.com/umputun/callscope/pkg/repository"
)

// strictPolicy strips all markup from user supplied text, it is safe for concurrent use
var strictPolicy = bluemonday.StrictPolicy()

// readableEntities restores entities escaped by the policy, angle brackets stay escaped
var readableEntities = strings.NewReplacer("&amp;", "&", "&#39;", "'", "&#34;", `"`, "&quot;", `"`)

// sanitizeText removes markup, entity-encoded markup included, and keeps the text readable
func sanitizeText(s string) string {
	return strings.TrimSpace(readableEntities.Replace(strictPolicy.Sanitize(html.UnescapeString(s))))
}

func (s *Server) listScriptsHandler(w http.ResponseWriter, r *http.Request) {
	scripts, err := s.Scripts.GetScripts(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get scripts: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"scripts": scripts})
}

func (s *Server) getScriptHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	script, err := s.Scripts.GetScript(r.Context(), id)
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"script": script})
}

type scriptRequest struct {
	Name      *string `json:"name"`
	Content   *string `json:"content"`
	IsDefault *bool   `json:"isDefault"`
}

// sanitized returns the request with markup removed from name and content
func (req scriptRequest) sanitized() scriptRequest {
	if req.Name != nil {
		name := sanitizeText(*req.Name)
		req.Name = &name
	}
	if req.Content != nil {
		content := sanitizeText(*req.Content)
		req.Content = &content
	}
	return req
}

func (s *Server) createScriptHandler(w http.ResponseWriter, r *http.Request) {
	var req scriptRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	req = req.sanitized()
	if req.Name == nil || *req.Name == "" || req.Content == nil || *req.Content == "" {
		renderError(w, r, errors.New("name and content are required"), http.StatusBadRequest)
		return
	}

	script := &domain.Script{Name: *req.Name, Content: *req.Content, IsDefault: req.IsDefault != nil && *req.IsDefault}
	if err := s.Scripts.CreateScript(r.Context(), script); err != nil {
		log.Printf("[ERROR] failed to create script: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, map[string]any{"success": true, "script": script,
		"message": "Script created successfully"})
}

func (s *Server) updateScriptHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	var req scriptRequest
	if err = decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	req = req.sanitized()

	script, err := s.Scripts.UpdateScript(r.Context(), id,
		repository.ScriptUpdate{Name: req.Name, Content: req.Content, IsDefault: req.IsDefault})
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "script": script,
		"message": "Script updated successfully"})
}

func (s *Server) deleteScriptHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	err = s.Scripts.DeleteScript(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrDefaultScript):
		renderError(w, r, err, http.StatusBadRequest)
		return
	case err != nil:
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "message": "Script deleted successfully"})
}

// pathID parses the numeric {id} path value
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}
