// Package twilio wraps the Twilio REST API for outbound interview calls and renders the TwiML
// those calls run.
package twilio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jellydator/ttlcache/v3"
	twiliogo "github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

//go:generate moq -out mocks/api.go -pkg mocks -skip-ensure -fmt goimports . API

// trial accounts can only call verified numbers
const (
	codeUnverifiedNumber = 21219
	codeInvalidNumber    = 21211
)

// StatusCallbackEvents are the call progress events reported to the status callback
var StatusCallbackEvents = []string{"initiated", "ringing", "answered", "completed"}

// ErrNotConfigured is returned when credentials or the caller number are missing
var ErrNotConfigured = errors.New("twilio credentials not configured")

// API is the part of the Twilio REST API used here, satisfied by *openapi.ApiService
type API interface {
	CreateCall(params *openapi.CreateCallParams) (*openapi.ApiV2010Call, error)
	FetchCall(sid string, params *openapi.FetchCallParams) (*openapi.ApiV2010Call, error)
	ListOutgoingCallerId(params *openapi.ListOutgoingCallerIdParams) ([]openapi.ApiV2010OutgoingCallerId, error)
}

// Params configure the client
type Params struct {
	AccountSID  string
	AuthToken   string
	PhoneNumber string
	CallerIDTTL time.Duration
	Timeout     time.Duration
}

// Client places and inspects Twilio calls
type Client struct {
	api        API
	from       string
	configured bool
	callerIDs  *ttlcache.Cache[string, []CallerID]
}

// CallParams describe an outbound call
type CallParams struct {
	To             string
	TwiML          string
	StatusCallback string
	TimeLimit      time.Duration
}

// Call is the state of a Twilio call
type Call struct {
	SID       string `json:"sid"`
	Status    string `json:"status"`
	Direction string `json:"direction,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

// CallerID is a verified outgoing caller id
type CallerID struct {
	PhoneNumber  string `json:"phoneNumber"`
	FriendlyName string `json:"friendlyName,omitempty"`
	DateCreated  string `json:"dateCreated,omitempty"`
	DateUpdated  string `json:"dateUpdated,omitempty"`
}

const callerIDsKey = "all"

// New creates a client with the official Twilio REST client, requests are bounded by Params.Timeout
func New(p Params) *Client {
	if p.Timeout == 0 {
		p.Timeout = 30 * time.Second
	}
	httpClient := &twclient.Client{
		Credentials: twclient.NewCredentials(p.AccountSID, p.AuthToken),
		HTTPClient:  &http.Client{Timeout: p.Timeout},
	}
	httpClient.SetAccountSid(p.AccountSID)
	rest := twiliogo.NewRestClientWithParams(twiliogo.ClientParams{Username: p.AccountSID, Password: p.AuthToken,
		Client: httpClient})
	return newClient(rest.Api, p)
}

func newClient(api API, p Params) *Client {
	if p.CallerIDTTL == 0 {
		p.CallerIDTTL = 5 * time.Minute
	}
	return &Client{
		api:        api,
		from:       p.PhoneNumber,
		configured: p.AccountSID != "" && p.AuthToken != "",
		callerIDs: ttlcache.New[string, []CallerID](
			ttlcache.WithTTL[string, []CallerID](p.CallerIDTTL),
			ttlcache.WithDisableTouchOnHit[string, []CallerID](),
		),
	}
}

// Configured reports whether calls can be placed
func (c *Client) Configured() bool {
	return c.configured && c.from != ""
}

// CanLookup reports whether read-only calls (caller ids, call status) can be made
func (c *Client) CanLookup() bool {
	return c.configured
}

// CreateCall places an outbound call from the configured number
func (c *Client) CreateCall(ctx context.Context, p CallParams) (*Call, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := &openapi.CreateCallParams{}
	params.SetTo(p.To)
	params.SetFrom(c.from)
	params.SetTwiml(p.TwiML)
	if p.StatusCallback != "" {
		params.SetStatusCallback(p.StatusCallback)
		params.SetStatusCallbackEvent(StatusCallbackEvents)
		params.SetStatusCallbackMethod("POST")
	}
	if p.TimeLimit > 0 {
		params.SetTimeLimit(int(p.TimeLimit.Seconds()))
	}

	call, err := c.api.CreateCall(params)
	if err != nil {
		return nil, fmt.Errorf("create twilio call: %w", err)
	}
	return toCall(call), nil
}

// FetchCall returns the current state of a call
func (c *Client) FetchCall(ctx context.Context, sid string) (*Call, error) {
	if !c.CanLookup() {
		return nil, ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	call, err := c.api.FetchCall(sid, &openapi.FetchCallParams{})
	if err != nil {
		return nil, fmt.Errorf("fetch twilio call %s: %w", sid, err)
	}
	return toCall(call), nil
}

// VerifiedCallerIDs lists the verified outgoing caller ids, cached for the configured ttl
func (c *Client) VerifiedCallerIDs(ctx context.Context) ([]CallerID, error) {
	if !c.CanLookup() {
		return nil, ErrNotConfigured
	}
	if item := c.callerIDs.Get(callerIDsKey); item != nil {
		return item.Value(), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ids, err := c.api.ListOutgoingCallerId(&openapi.ListOutgoingCallerIdParams{})
	if err != nil {
		return nil, fmt.Errorf("list outgoing caller ids: %w", err)
	}
	res := make([]CallerID, 0, len(ids))
	for _, id := range ids {
		res = append(res, CallerID{
			PhoneNumber:  deref(id.PhoneNumber),
			FriendlyName: deref(id.FriendlyName),
			DateCreated:  deref(id.DateCreated),
			DateUpdated:  deref(id.DateUpdated),
		})
	}
	c.callerIDs.Set(callerIDsKey, res, ttlcache.DefaultTTL)
	return res, nil
}

// IsVerified checks whether phone is one of the verified caller ids
func (c *Client) IsVerified(ctx context.Context, phone string) (bool, error) {
	ids, err := c.VerifiedCallerIDs(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

// ErrorCode returns the Twilio error code carried by err, 0 if none
func ErrorCode(err error) int {
	var restErr *twclient.TwilioRestError
	if errors.As(err, &restErr) {
		return restErr.Code
	}
	return 0
}

// IsTrialLimitation reports errors caused by trial account restrictions
func IsTrialLimitation(err error) bool {
	code := ErrorCode(err)
	return code == codeUnverifiedNumber || code == codeInvalidNumber
}

func toCall(c *openapi.ApiV2010Call) *Call {
	if c == nil {
		return &Call{}
	}
	return &Call{
		SID:       deref(c.Sid),
		Status:    deref(c.Status),
		Direction: deref(c.Direction),
		From:      deref(c.From),
		To:        deref(c.To),
		StartTime: deref(c.StartTime),
		EndTime:   deref(c.EndTime),
		Duration:  deref(c.Duration),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
