package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twclient "github.com/twilio/twilio-go/client"

	"github.com/umputun/callscope/pkg/dialer"
	"github.com/umputun/callscope/pkg/domain"
	"github.com/umputun/callscope/pkg/provider/twilio"
	"github.com/umputun/callscope/pkg/provider/vapi"
)

func TestServer_dialRoutes(t *testing.T) {
	result := func(provider string) func(ctx context.Context, req domain.CallRequest) (*domain.CallResult, error) {
		return func(ctx context.Context, req domain.CallRequest) (*domain.CallResult, error) {
			return &domain.CallResult{Provider: provider, CallID: provider + "-1", Status: "queued"}, nil
		}
	}
	d := newTestDeps()
	d.dialer.DialFunc = result("dial")
	d.dialer.SmartFunc = result("smart")
	d.dialer.HybridFunc = result("hybrid")
	d.dialer.TwilioOnlyFunc = result("twilio")
	d.dialer.VapiOnlyFunc = result("vapi")
	srv := testServer(t, d)

	tests := []struct {
		path, provider string
	}{
		{path: "/api/v1/call", provider: "dial"},
		{path: "/api/v1/call/smart", provider: "smart"},
		{path: "/api/v1/call/hybrid", provider: "hybrid"},
		{path: "/api/v1/call/twilio", provider: "twilio"},
		{path: "/api/v1/call/vapi", provider: "vapi"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(t, srv, http.MethodPost, tt.path, `{"phoneNumber":"9876543210","candidateName":"Asha"}`)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			resp := decode(t, w)
			assert.Equal(t, true, resp["success"])
			assert.Equal(t, tt.provider, resp["provider"])
			assert.Equal(t, tt.provider+"-1", resp["callId"])
		})
	}
	assert.Empty(t, d.candidates.UpdateStatusCalls(), "no candidate id, no status update")
}

func TestServer_dialHandler_updatesCandidate(t *testing.T) {
	d := newTestDeps()
	d.dialer.HybridFunc = func(ctx context.Context, req domain.CallRequest) (*domain.CallResult, error) {
		return &domain.CallResult{Provider: domain.ProviderHybrid, CallID: "CA123", TwilioCallSID: "CA123",
			VapiCallID: "vapi-9", Status: "queued"}, nil
	}
	d.dialer.TwilioOnlyFunc = func(ctx context.Context, req domain.CallRequest) (*domain.CallResult, error) {
		return &domain.CallResult{Provider: domain.ProviderTwilio, CallID: "CA456", Status: "queued"}, nil
	}
	d.candidates.UpdateStatusFunc = func(ctx context.Context, id int64, status domain.CandidateStatus, upd domain.CallUpdate) error {
		if id == 13 {
			return errors.New("db locked")
		}
		return nil
	}
	srv := testServer(t, d)

	w := do(t, srv, http.MethodPost, "/api/v1/call/hybrid", `{"phoneNumber":"9876543210","candidateId":7}`)
	require.Equal(t, http.StatusOK, w.Code)
	calls := d.candidates.UpdateStatusCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, int64(7), calls[0].ID)
	assert.Equal(t, domain.StatusCalling, calls[0].Status)
	assert.Equal(t, "vapi-9", calls[0].Upd.CallID, "hybrid calls tracked by vapi call id")
	assert.Equal(t, domain.ProviderHybrid, calls[0].Upd.CallProvider)

	w = do(t, srv, http.MethodPost, "/api/v1/call/twilio", `{"phoneNumber":"9876543210","candidateId":8}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CA456", d.candidates.UpdateStatusCalls()[1].Upd.CallID)

	w = do(t, srv, http.MethodPost, "/api/v1/call/twilio", `{"phoneNumber":"9876543210","candidateId":13}`)
	assert.Equal(t, http.StatusOK, w.Code, "placed call is reported even if candidate update fails")
}

func TestServer_dialHandler_errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		contains string
		check    func(t *testing.T, resp map[string]any)
	}{
		{
			name: "invalid phone",
			err:  &dialer.PhoneError{Original: "12", Formatted: "+9112", Err: errors.New("too short")},
			code: http.StatusBadRequest, contains: "Invalid phone number: too short",
			check: func(t *testing.T, resp map[string]any) {
				assert.Equal(t, "+9112", resp["formatted"])
				assert.Equal(t, "12", resp["original"])
			},
		},
		{
			name: "trial limitation",
			err:  fmt.Errorf("twilio call: %w", &twclient.TwilioRestError{Code: 21219, Status: 400, Message: "unverified"}),
			code: http.StatusBadRequest, contains: "unverified",
			check: func(t *testing.T, resp map[string]any) {
				assert.InDelta(t, 21219, resp["code"], 0)
				assert.Equal(t, verificationURL, resp["verificationUrl"])
			},
		},
		{
			name: "vapi status passthrough",
			err:  fmt.Errorf("vapi call: %w", &vapi.APIError{StatusCode: http.StatusPaymentRequired, Message: "no credits"}),
			code: http.StatusPaymentRequired, contains: "no credits",
		},
		{
			name: "provider not configured",
			err:  twilio.ErrNotConfigured,
			code: http.StatusInternalServerError, contains: twilio.ErrNotConfigured.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps()
			d.dialer.DialFunc = func(ctx context.Context, req domain.CallRequest) (*domain.CallResult, error) {
				return nil, tt.err
			}
			srv := testServer(t, d)
			w := do(t, srv, http.MethodPost, "/api/v1/call", `{"phoneNumber":"12","candidateId":3}`)
			assert.Equal(t, tt.code, w.Code)
			resp := decode(t, w)
			assert.Contains(t, resp["error"], tt.contains)
			if tt.check != nil {
				tt.check(t, resp)
			}
			assert.Empty(t, d.candidates.UpdateStatusCalls())
		})
	}
}

func TestServer_vapiCallHandler(t *testing.T) {
	d := newTestDeps()
	d.vapi.GetCallFunc = func(ctx context.Context, id string) (*vapi.Call, error) {
		if id == "missing" {
			return nil, &vapi.APIError{StatusCode: http.StatusNotFound, Message: "call not found"}
		}
		return &vapi.Call{ID: id, Status: "ended", EndedReason: "customer-ended-call"}, nil
	}
	srv := testServer(t, d)

	w := do(t, srv, http.MethodGet, "/api/v1/call/vapi/c1", "")
	require.Equal(t, http.StatusOK, w.Code)
	call := decode(t, w)["call"].(map[string]any)
	assert.Equal(t, "c1", call["id"])
	assert.Equal(t, "ended", call["status"])

	w = do(t, srv, http.MethodGet, "/api/v1/call/vapi/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	d.vapi.ConfiguredFunc = func() bool { return false }
	w = do(t, srv, http.MethodGet, "/api/v1/call/vapi/c1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, vapi.ErrNotConfigured.Error(), decode(t, w)["error"])
}

func TestServer_twilioCallHandler(t *testing.T) {
	d := newTestDeps()
	d.twilio.FetchCallFunc = func(ctx context.Context, sid string) (*twilio.Call, error) {
		switch sid {
		case "CA404":
			return nil, &twclient.TwilioRestError{Status: 404, Code: 20404, Message: "not found"}
		case "CA500":
			return nil, errors.New("network down")
		}
		return &twilio.Call{SID: sid, Status: "completed", Duration: "42"}, nil
	}
	srv := testServer(t, d)

	w := do(t, srv, http.MethodGet, "/api/v1/call/twilio/CA1", "")
	require.Equal(t, http.StatusOK, w.Code)
	call := decode(t, w)["call"].(map[string]any)
	assert.Equal(t, "CA1", call["sid"])
	assert.Equal(t, "42", call["duration"])

	w = do(t, srv, http.MethodGet, "/api/v1/call/twilio/CA404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, srv, http.MethodGet, "/api/v1/call/twilio/CA500", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	d.twilio.CanLookupFunc = func() bool { return false }
	w = do(t, srv, http.MethodGet, "/api/v1/call/twilio/CA1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_verifyPhoneHandler(t *testing.T) {
	d := newTestDeps()
	d.twilio.IsVerifiedFunc = func(ctx context.Context, phone string) (bool, error) {
		switch phone {
		case "+919876543210":
			return true, nil
		case "+14155550100":
			return false, errors.New("twilio unavailable")
		}
		return false, nil
	}
	srv := testServer(t, d)

	t.Run("verified", func(t *testing.T) {
		w := do(t, srv, http.MethodPost, "/api/v1/phone/verify", `{"phoneNumber":"9876543210"}`)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, true, resp["isVerified"])
		assert.Equal(t, "+919876543210", resp["phoneNumber"])
		assert.Equal(t, "+91 98765 43210", resp["display"])
	})

	t.Run("lookup failure reported in body", func(t *testing.T) {
		w := do(t, srv, http.MethodPost, "/api/v1/phone/verify", `{"phoneNumber":"+14155550100"}`)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "twilio unavailable", resp["error"])
	})

	t.Run("invalid number", func(t *testing.T) {
		w := do(t, srv, http.MethodPost, "/api/v1/phone/verify", `{"phoneNumber":"abc"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w)["error"], "Invalid phone number")
	})

	t.Run("missing number", func(t *testing.T) {
		w := do(t, srv, http.MethodPost, "/api/v1/phone/verify", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_verifiedPhonesHandler(t *testing.T) {
	d := newTestDeps()
	d.twilio.VerifiedCallerIDsFunc = func(ctx context.Context) ([]twilio.CallerID, error) {
		return []twilio.CallerID{{PhoneNumber: "+919876543210", FriendlyName: "office"}}, nil
	}
	srv := testServer(t, d)

	w := do(t, srv, http.MethodGet, "/api/v1/phone/verified", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.InDelta(t, 1, resp["count"], 0)

	d.twilio.VerifiedCallerIDsFunc = func(ctx context.Context) ([]twilio.CallerID, error) { return nil, errors.New("auth") }
	w = do(t, srv, http.MethodGet, "/api/v1/phone/verified", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decode(t, w)["error"], "failed to get verified numbers")
}
