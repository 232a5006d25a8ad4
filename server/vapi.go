package server

import (
	"log"
	"net/http"

	"github.com/umputun/callscope/pkg/provider/vapi"
)

func (s *Server) listVapiAssistantsHandler(w http.ResponseWriter, r *http.Request) {
	if !s.requireVapi(w, r) {
		return
	}
	assistants, err := s.Vapi.ListAssistants(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to list vapi assistants: %v", err)
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "assistants": assistants, "count": len(assistants)})
}

// createVapiAssistantHandler creates an assistant, missing fields get interview defaults
func (s *Server) createVapiAssistantHandler(w http.ResponseWriter, r *http.Request) {
	if !s.requireVapi(w, r) {
		return
	}
	var spec vapi.AssistantSpec
	if err := decodeJSON(r, &spec); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	created, err := s.Vapi.CreateAssistant(r.Context(), spec)
	if err != nil {
		log.Printf("[ERROR] failed to create vapi assistant: %v", err)
		renderError(w, r, err, errorStatus(err))
		return
	}
	log.Printf("[INFO] vapi assistant %s created", created.ID)
	renderJSON(w, r, http.StatusCreated, map[string]any{"success": true, "assistant": created,
		"message": "Assistant created successfully"})
}

func (s *Server) getVapiAssistantHandler(w http.ResponseWriter, r *http.Request) {
	if !s.requireVapi(w, r) {
		return
	}
	a, err := s.Vapi.GetAssistant(r.Context(), r.PathValue("id"))
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "assistant": a})
}

// updateVapiAssistantHandler passes the posted fields to Vapi as a partial update
func (s *Server) updateVapiAssistantHandler(w http.ResponseWriter, r *http.Request) {
	if !s.requireVapi(w, r) {
		return
	}
	var fields map[string]any
	if err := decodeJSON(r, &fields); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	a, err := s.Vapi.UpdateAssistant(r.Context(), r.PathValue("id"), fields)
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "assistant": a,
		"message": "Assistant updated successfully"})
}

func (s *Server) deleteVapiAssistantHandler(w http.ResponseWriter, r *http.Request) {
	if !s.requireVapi(w, r) {
		return
	}
	if err := s.Vapi.DeleteAssistant(r.Context(), r.PathValue("id")); err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "message": "Assistant deleted successfully"})
}

// requireVapi renders an error and returns false if Vapi has no credentials
func (s *Server) requireVapi(w http.ResponseWriter, r *http.Request) bool {
	if s.Vapi.Configured() {
		return true
	}
	renderError(w, r, vapi.ErrNotConfigured, http.StatusInternalServerError)
	return false
}
