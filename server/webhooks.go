package server

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/umputun/callscope/pkg/domain"
	"github.com/umputun/callscope/pkg/provider/twilio"
	"github.com/umputun/callscope/pkg/repository"
)

// vapiEvent is a server message posted by Vapi. Events come either wrapped in "message"
// or flat, the call id either as "callId" or inside "call".
type vapiEvent struct {
	Type        string `json:"type"`
	Status      string `json:"status"`
	CallID      string `json:"callId"`
	EndedReason string `json:"endedReason"`
	Summary     string `json:"summary"`
	Transcript  string `json:"transcript"`
	Call        *struct {
		ID string `json:"id"`
	} `json:"call"`
	Analysis *struct {
		Summary string `json:"summary"`
	} `json:"analysis"`
}

func (e vapiEvent) callID() string {
	if e.CallID != "" {
		return e.CallID
	}
	if e.Call != nil {
		return e.Call.ID
	}
	return ""
}

func (e vapiEvent) summary() string {
	if e.Summary != "" {
		return e.Summary
	}
	if e.Analysis != nil && e.Analysis.Summary != "" {
		return e.Analysis.Summary
	}
	return e.Transcript
}

// vapiWebhookHandler receives Vapi call events and writes at most one candidate update per event.
// Events are not ordered or deduplicated.
func (s *Server) vapiWebhookHandler(w http.ResponseWriter, r *http.Request) {
	if s.WebhookSecret != "" {
		token := strings.TrimSpace(r.Header.Get("Authorization"))
		if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
			token = strings.TrimSpace(token[7:])
		}
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.WebhookSecret)) != 1 {
			renderJSON(w, r, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}
	}

	var body struct {
		vapiEvent
		Message *vapiEvent `json:"message"`
	}
	if err := decodeJSON(r, &body); err != nil {
		renderError(w, r, errors.New("invalid JSON"), http.StatusBadRequest)
		return
	}
	event := body.vapiEvent
	if body.Message != nil {
		event = *body.Message
	}
	log.Printf("[DEBUG] vapi webhook event %q, call %q", event.Type, event.callID())

	if err := s.handleVapiEvent(r, event); err != nil {
		log.Printf("[ERROR] failed to handle vapi event %q: %v", event.Type, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
}

// handleVapiEvent dispatches an event by type, events for unknown calls are ignored
func (s *Server) handleVapiEvent(r *http.Request, event vapiEvent) error {
	var status domain.CandidateStatus
	upd := domain.CallUpdate{CallID: event.callID(), CallProvider: domain.ProviderVapi}

	switch event.Type {
	case "status-update":
		switch event.Status {
		case "queued", "ringing", "in-progress":
			status = domain.StatusCalling
		case "ended":
			status = domain.StatusCompleted
			upd.CallResult = event.EndedReason
		default:
			log.Printf("[DEBUG] vapi status %q ignored", event.Status)
			return nil
		}
	case "end-of-call-report":
		status = domain.StatusCompleted
		upd.CallResult = event.EndedReason
		upd.CallNotes = event.summary()
	case "hang":
		status = domain.StatusFailed
		upd.CallResult = "hang"
	default:
		log.Printf("[DEBUG] vapi event %q ignored", event.Type)
		return nil
	}

	if upd.CallID == "" {
		log.Printf("[WARN] vapi event %q without call id", event.Type)
		return nil
	}
	return s.updateCandidateByCall(r, 0, status, upd)
}

// vapiWebhookAliveHandler answers GET probes of the webhook URL
func (s *Server) vapiWebhookAliveHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "vapi-webhook-ok"})
}

// twilioStatusHandler receives Twilio call status callbacks. The candidate is taken from the
// candidateId query parameter set when the call was placed, or looked up by call SID.
func (s *Server) twilioStatusHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("invalid form data: %w", err), http.StatusBadRequest)
		return
	}
	sid, callStatus := r.PostForm.Get("CallSid"), r.PostForm.Get("CallStatus")
	if sid == "" || callStatus == "" {
		renderError(w, r, errors.New("CallSid and CallStatus are required"), http.StatusBadRequest)
		return
	}

	provider := r.URL.Query().Get("callType")
	if provider == "" {
		provider = domain.ProviderTwilio
	}
	upd := domain.CallUpdate{CallID: sid, CallProvider: provider}
	if vapiID := r.URL.Query().Get("vapiCallId"); vapiID != "" {
		upd.CallID = vapiID
	}

	var status domain.CandidateStatus
	switch callStatus {
	case "queued", "initiated", "ringing", "in-progress":
		status = domain.StatusCalling
	case "completed":
		status = domain.StatusCompleted
		upd.CallResult = "completed"
		if d := r.PostForm.Get("CallDuration"); d != "" {
			upd.CallResult = fmt.Sprintf("completed, %ss", d)
		}
	case "busy", "no-answer", "failed", "canceled":
		status = domain.StatusFailed
		upd.CallResult = callStatus
	default:
		log.Printf("[DEBUG] twilio status %q for %s ignored", callStatus, sid)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	candidateID, _ := strconv.ParseInt(r.URL.Query().Get("candidateId"), 10, 64)
	if err := s.updateCandidateByCall(r, candidateID, status, upd); err != nil {
		log.Printf("[ERROR] failed to handle twilio status %q for %s: %v", callStatus, sid, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// updateCandidateByCall sets the status of the candidate with the given id, or of the candidate
// the call was placed for when id is zero. Unknown candidates are logged and skipped.
func (s *Server) updateCandidateByCall(r *http.Request, id int64, status domain.CandidateStatus, upd domain.CallUpdate) error {
	ctx := r.Context()
	if id <= 0 {
		c, err := s.Candidates.GetCandidateByCallID(ctx, upd.CallID)
		if errors.Is(err, repository.ErrNotFound) {
			log.Printf("[WARN] no candidate for call %s", upd.CallID)
			return nil
		}
		if err != nil {
			return err
		}
		id = c.ID
	}

	err := s.Candidates.UpdateStatus(ctx, id, status, upd)
	if errors.Is(err, repository.ErrNotFound) {
		log.Printf("[WARN] candidate %d for call %s not found", id, upd.CallID)
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("[INFO] candidate %d is %s, call %s", id, status, upd.CallID)
	return nil
}

// twilioGatherHandler answers the candidate keypress with TwiML, questions come from the cached script
func (s *Server) twilioGatherHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/xml")

	if err := r.ParseForm(); err != nil {
		log.Printf("[WARN] invalid gather form: %v", err)
		_, _ = w.Write([]byte(twilio.ErrorTwiML))
		return
	}

	questions := twilio.ScriptQuestions(s.Cache.Get(r.Context()).Config.Script)
	twiml, err := twilio.GatherReplyTwiML(r.PostForm.Get("Digits"), questions)
	if err != nil {
		log.Printf("[ERROR] can't render gather reply: %v", err)
		twiml = twilio.ErrorTwiML
	}
	_, _ = w.Write([]byte(twiml))
}
