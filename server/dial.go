package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	twclient "github.com/twilio/twilio-go/client"

	"github.com/umputun/callscope/pkg/dialer"
	"github.com/umputun/callscope/pkg/domain"
	"github.com/umputun/callscope/pkg/phone"
	"github.com/umputun/callscope/pkg/provider/twilio"
)

// verificationURL is where unverified numbers can be added on a Twilio trial account
const verificationURL = "https://console.twilio.com/us1/develop/phone-numbers/manage/verified"

type dialFunc func(d Dialer, ctx context.Context, req domain.CallRequest) (*domain.CallResult, error)

type dialResponse struct {
	Success bool `json:"success"`
	*domain.CallResult
}

// dialHandler places a call with the given dialer method. A call placed for a known candidate
// moves the candidate to calling with the provider call id, hybrid calls are tracked by the vapi call id.
func (s *Server) dialHandler(dial dialFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req domain.CallRequest
		if err := decodeJSON(r, &req); err != nil {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}

		res, err := dial(s.Dialer, ctx, req)
		if err != nil {
			s.renderDialError(w, r, err)
			return
		}

		if req.CandidateID > 0 {
			upd := domain.CallUpdate{CallID: res.CallID, CallProvider: res.Provider}
			if res.VapiCallID != "" {
				upd.CallID = res.VapiCallID
			}
			if err := s.Candidates.UpdateStatus(ctx, req.CandidateID, domain.StatusCalling, upd); err != nil {
				log.Printf("[WARN] call %s placed, but candidate %d not updated: %v", upd.CallID, req.CandidateID, err)
			}
		}
		renderJSON(w, r, http.StatusOK, dialResponse{Success: true, CallResult: res})
	}
}

func (s *Server) renderDialError(w http.ResponseWriter, r *http.Request, err error) {
	var phoneErr *dialer.PhoneError
	if errors.As(err, &phoneErr) {
		renderJSON(w, r, http.StatusBadRequest, map[string]string{
			"error":     fmt.Sprintf("Invalid phone number: %v", phoneErr.Err),
			"formatted": phoneErr.Formatted,
			"original":  phoneErr.Original,
		})
		return
	}
	log.Printf("[ERROR] failed to place call: %v", err)
	if twilio.IsTrialLimitation(err) {
		renderJSON(w, r, http.StatusBadRequest, map[string]any{
			"error":           err.Error(),
			"code":            twilio.ErrorCode(err),
			"verificationUrl": verificationURL,
		})
		return
	}
	renderError(w, r, err, errorStatus(err))
}

// vapiCallHandler returns the state of a Vapi call
func (s *Server) vapiCallHandler(w http.ResponseWriter, r *http.Request) {
	if !s.requireVapi(w, r) {
		return
	}
	call, err := s.Vapi.GetCall(r.Context(), r.PathValue("id"))
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "call": call})
}

// twilioCallHandler returns the state of a Twilio call
func (s *Server) twilioCallHandler(w http.ResponseWriter, r *http.Request) {
	if !s.Twilio.CanLookup() {
		renderError(w, r, twilio.ErrNotConfigured, http.StatusInternalServerError)
		return
	}
	call, err := s.Twilio.FetchCall(r.Context(), r.PathValue("sid"))
	if err != nil {
		var restErr *twclient.TwilioRestError
		if errors.As(err, &restErr) && restErr.Status == http.StatusNotFound {
			renderError(w, r, err, http.StatusNotFound)
			return
		}
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "call": call})
}

// verifyPhoneHandler checks whether a number is a verified Twilio caller id.
// A failed lookup is reported in the body with success=false, not as an HTTP error.
func (s *Server) verifyPhoneHandler(w http.ResponseWriter, r *http.Request) {
	if !s.Twilio.CanLookup() {
		renderError(w, r, errors.New("twilio credentials not configured"), http.StatusInternalServerError)
		return
	}

	var req struct {
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if req.PhoneNumber == "" {
		renderError(w, r, errors.New("phone number is required"), http.StatusBadRequest)
		return
	}

	v := phone.Validate(req.PhoneNumber, s.countryCode())
	if !v.Valid {
		renderJSON(w, r, http.StatusBadRequest, map[string]string{
			"error":     fmt.Sprintf("Invalid phone number: %v", v.Err),
			"formatted": v.Formatted,
			"original":  req.PhoneNumber,
		})
		return
	}

	verified, err := s.Twilio.IsVerified(r.Context(), v.Formatted)
	if err != nil {
		log.Printf("[WARN] can't check verification of %s: %v", v.Formatted, err)
		renderJSON(w, r, http.StatusOK, map[string]any{
			"success":     false,
			"phoneNumber": v.Formatted,
			"isVerified":  false,
			"message":     "Could not verify phone number status",
			"error":       err.Error(),
			"suggestion":  "Please verify the phone number manually in your Twilio console",
		})
		return
	}

	msg := "Phone number is not verified. Please verify it in your Twilio console."
	if verified {
		msg = "Phone number is verified and can receive calls"
	}
	renderJSON(w, r, http.StatusOK, map[string]any{
		"success":         true,
		"phoneNumber":     v.Formatted,
		"display":         phone.FormatForDisplay(v.Formatted),
		"isVerified":      verified,
		"message":         msg,
		"verificationUrl": verificationURL,
	})
}

// verifiedPhonesHandler lists verified Twilio caller ids
func (s *Server) verifiedPhonesHandler(w http.ResponseWriter, r *http.Request) {
	if !s.Twilio.CanLookup() {
		renderError(w, r, errors.New("twilio credentials not configured"), http.StatusInternalServerError)
		return
	}
	ids, err := s.Twilio.VerifiedCallerIDs(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get verified numbers: %v", err)
		renderError(w, r, fmt.Errorf("failed to get verified numbers: %w", err), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "verifiedNumbers": ids, "count": len(ids)})
}

func (s *Server) countryCode() string {
	if s.DefaultCountryCode == "" {
		return phone.DefaultCountryCode
	}
	return s.DefaultCountryCode
}
