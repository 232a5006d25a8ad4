// Package dialer places interview calls through Vapi, Twilio or both, following the configured call method.
package dialer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/callscope/pkg/domain"
	"github.com/umputun/callscope/pkg/phone"
	"github.com/umputun/callscope/pkg/provider/twilio"
	"github.com/umputun/callscope/pkg/provider/vapi"
	"github.com/umputun/callscope/pkg/scriptcache"
)

//go:generate moq -out mocks/vapi.go -pkg mocks -skip-ensure -fmt goimports . VapiCaller
//go:generate moq -out mocks/twilio.go -pkg mocks -skip-ensure -fmt goimports . TwilioCaller
//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigSource

// callback paths served by the server package
const (
	GatherPath         = "/twilio/gather"
	StatusCallbackPath = "/webhook/twilio/status"
)

const trialLimitationReason = "Twilio trial account limitation"

// ErrNotConfigured is returned when a required provider has no credentials
var ErrNotConfigured = errors.New("provider not configured")

// PhoneError is returned for numbers that can't be turned into valid E.164
type PhoneError struct {
	Original  string
	Formatted string
	Err       error
}

func (e *PhoneError) Error() string {
	return fmt.Sprintf("invalid phone number %q: %v", e.Original, e.Err)
}

func (e *PhoneError) Unwrap() error { return e.Err }

// VapiCaller places calls through Vapi
type VapiCaller interface {
	Configured() bool
	CreateCall(ctx context.Context, spec vapi.CallSpec) (*vapi.Call, error)
	ConnectURL(callID string) string
}

// TwilioCaller places calls through Twilio
type TwilioCaller interface {
	Configured() bool
	CreateCall(ctx context.Context, p twilio.CallParams) (*twilio.Call, error)
}

// ConfigSource provides the current call configuration, satisfied by *scriptcache.Cache
type ConfigSource interface {
	Get(ctx context.Context) scriptcache.Result
}

// Params configure Dialer
type Params struct {
	Vapi               VapiCaller
	Twilio             TwilioCaller
	Config             ConfigSource
	BaseURL            string // public URL of this service, used for Twilio callbacks
	DefaultCountryCode string
}

// Dialer places interview calls
type Dialer struct {
	Params
}

// New makes a Dialer
func New(p Params) *Dialer {
	if p.DefaultCountryCode == "" {
		p.DefaultCountryCode = phone.DefaultCountryCode
	}
	return &Dialer{Params: p}
}

// Dial places a call with the method of the current call configuration
func (d *Dialer) Dial(ctx context.Context, req domain.CallRequest) (*domain.CallResult, error) {
	method := d.Config.Get(ctx).Config.Method
	switch method {
	case domain.MethodVapi:
		return d.VapiOnly(ctx, req)
	case domain.MethodTwilio:
		return d.TwilioOnly(ctx, req)
	case domain.MethodHybrid:
		return d.Hybrid(ctx, req)
	default:
		lgr.Printf("[WARN] unknown call method %q, using smart call", method)
		return d.Smart(ctx, req)
	}
}

// Smart calls through Twilio and falls back to Vapi on any Twilio failure.
// Vapi is used directly when preferred by the request or when Twilio is not configured.
func (d *Dialer) Smart(ctx context.Context, req domain.CallRequest) (*domain.CallResult, error) {
	number, err := d.validate(req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	if req.PreferVapi || !d.Twilio.Configured() {
		return d.vapiCall(ctx, number, req, "")
	}

	res, twErr := d.twilioCall(ctx, number, req)
	if twErr == nil {
		return res, nil
	}

	reason := twErr.Error()
	if twilio.IsTrialLimitation(twErr) {
		reason = trialLimitationReason
	}
	lgr.Printf("[WARN] twilio call to %s failed, trying vapi: %v", number, twErr)

	res, err = d.vapiCall(ctx, number, req, reason)
	if err != nil {
		return nil, fmt.Errorf("both providers failed, twilio: %v, vapi: %w", twErr, err)
	}
	return res, nil
}

// Hybrid creates a Vapi call and dials the candidate through Twilio, the Twilio call is redirected
// into the Vapi conversation
func (d *Dialer) Hybrid(ctx context.Context, req domain.CallRequest) (*domain.CallResult, error) {
	if !d.Twilio.Configured() {
		return nil, fmt.Errorf("twilio: %w", ErrNotConfigured)
	}
	if !d.Vapi.Configured() {
		return nil, fmt.Errorf("vapi: %w", ErrNotConfigured)
	}
	number, err := d.validate(req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	vc, err := d.Vapi.CreateCall(ctx, vapi.CallSpec{Number: number, CandidateName: req.CandidateName,
		AssistantID: req.AssistantID})
	if err != nil {
		return nil, fmt.Errorf("vapi call failed: %w", err)
	}

	twiml, err := twilio.ConnectTwiML(req.CandidateName, d.Vapi.ConnectURL(vc.ID))
	if err != nil {
		return nil, err
	}
	tc, err := d.Twilio.CreateCall(ctx, twilio.CallParams{
		To:             number,
		TwiML:          twiml,
		StatusCallback: d.statusCallback(domain.ProviderHybrid, req.CandidateID, vc.ID),
		TimeLimit:      d.timeLimit(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("twilio call failed: %w", err)
	}

	lgr.Printf("[INFO] hybrid call to %s, twilio %s, vapi %s", number, tc.SID, vc.ID)
	return &domain.CallResult{
		Provider:      domain.ProviderHybrid,
		CallID:        tc.SID,
		TwilioCallSID: tc.SID,
		VapiCallID:    vc.ID,
		Status:        tc.Status,
		Message:       "Hybrid call initiated successfully (Twilio + Vapi)",
	}, nil
}

// TwilioOnly calls through Twilio with the keypress interview flow
func (d *Dialer) TwilioOnly(ctx context.Context, req domain.CallRequest) (*domain.CallResult, error) {
	if !d.Twilio.Configured() {
		return nil, fmt.Errorf("twilio: %w", ErrNotConfigured)
	}
	number, err := d.validate(req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	return d.twilioCall(ctx, number, req)
}

// VapiOnly calls through Vapi
func (d *Dialer) VapiOnly(ctx context.Context, req domain.CallRequest) (*domain.CallResult, error) {
	number, err := d.validate(req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	return d.vapiCall(ctx, number, req, "")
}

func (d *Dialer) twilioCall(ctx context.Context, number string, req domain.CallRequest) (*domain.CallResult, error) {
	twiml, err := twilio.InterviewTwiML(req.CandidateName, d.BaseURL+GatherPath)
	if err != nil {
		return nil, err
	}
	call, err := d.Twilio.CreateCall(ctx, twilio.CallParams{
		To:             number,
		TwiML:          twiml,
		StatusCallback: d.statusCallback(domain.ProviderTwilio, req.CandidateID, ""),
		TimeLimit:      d.timeLimit(ctx),
	})
	if err != nil {
		return nil, err
	}
	lgr.Printf("[INFO] twilio call to %s, sid %s", number, call.SID)
	return &domain.CallResult{
		Provider:      domain.ProviderTwilio,
		CallID:        call.SID,
		TwilioCallSID: call.SID,
		Status:        call.Status,
		Message:       "Call initiated successfully with Twilio",
	}, nil
}

func (d *Dialer) vapiCall(ctx context.Context, number string, req domain.CallRequest, fallbackReason string) (*domain.CallResult, error) {
	if !d.Vapi.Configured() {
		return nil, fmt.Errorf("vapi: %w", ErrNotConfigured)
	}
	call, err := d.Vapi.CreateCall(ctx, vapi.CallSpec{Number: number, CandidateName: req.CandidateName,
		AssistantID: req.AssistantID, FallbackReason: fallbackReason})
	if err != nil {
		return nil, err
	}

	msg := "Call initiated successfully with Vapi"
	if fallbackReason != "" {
		msg = fmt.Sprintf("Call initiated with Vapi (fallback from Twilio: %s)", fallbackReason)
	}
	lgr.Printf("[INFO] vapi call to %s, id %s", number, call.ID)
	return &domain.CallResult{
		Provider:       domain.ProviderVapi,
		CallID:         call.ID,
		VapiCallID:     call.ID,
		Status:         call.Status,
		Message:        msg,
		FallbackReason: fallbackReason,
	}, nil
}

func (d *Dialer) validate(number string) (string, error) {
	if number == "" {
		return "", &PhoneError{Err: errors.New("phone number is required")}
	}
	v := phone.Validate(number, d.DefaultCountryCode)
	if !v.Valid {
		return "", &PhoneError{Original: number, Formatted: v.Formatted, Err: v.Err}
	}
	return v.Formatted, nil
}

// statusCallback builds the Twilio status callback URL, the candidate id lets the webhook update
// the candidate before the call SID is stored
func (d *Dialer) statusCallback(callType string, candidateID int64, vapiCallID string) string {
	q := url.Values{}
	q.Set("callType", callType)
	if candidateID > 0 {
		q.Set("candidateId", strconv.FormatInt(candidateID, 10))
	}
	if vapiCallID != "" {
		q.Set("vapiCallId", vapiCallID)
	}
	return d.BaseURL + StatusCallbackPath + "?" + q.Encode()
}

func (d *Dialer) timeLimit(ctx context.Context) time.Duration {
	return time.Duration(d.Config.Get(ctx).Config.Call.MaxDurationMinutes) * time.Minute
}
