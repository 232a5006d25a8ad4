package dialer

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twclient "github.com/twilio/twilio-go/client"

	"github.com/umputun/callscope/pkg/dialer/mocks"
	"github.com/umputun/callscope/pkg/domain"
	"github.com/umputun/callscope/pkg/phone"
	"github.com/umputun/callscope/pkg/provider/twilio"
	"github.com/umputun/callscope/pkg/provider/vapi"
	"github.com/umputun/callscope/pkg/scriptcache"
)

type fixture struct {
	vapi   *mocks.VapiCallerMock
	twilio *mocks.TwilioCallerMock
	config *mocks.ConfigSourceMock
	dialer *Dialer
}

func newFixture(method domain.CallMethod, vapiOn, twilioOn bool) *fixture {
	f := &fixture{
		vapi: &mocks.VapiCallerMock{
			ConfiguredFunc: func() bool { return vapiOn },
			CreateCallFunc: func(ctx context.Context, spec vapi.CallSpec) (*vapi.Call, error) {
				return &vapi.Call{ID: "vapi-1", Status: "queued"}, nil
			},
			ConnectURLFunc: func(callID string) string { return "https://api.vapi.ai/call/" + callID + "/connect" },
		},
		twilio: &mocks.TwilioCallerMock{
			ConfiguredFunc: func() bool { return twilioOn },
			CreateCallFunc: func(ctx context.Context, p twilio.CallParams) (*twilio.Call, error) {
				return &twilio.Call{SID: "CA1", Status: "queued"}, nil
			},
		},
		config: &mocks.ConfigSourceMock{
			GetFunc: func(ctx context.Context) scriptcache.Result {
				cfg := scriptcache.Default()
				cfg.Method = method
				cfg.Call.MaxDurationMinutes = 10
				return scriptcache.Result{Config: cfg, Outcome: scriptcache.OutcomeFresh}
			},
		},
	}
	f.dialer = New(Params{Vapi: f.vapi, Twilio: f.twilio, Config: f.config, BaseURL: "https://calls.example.com"})
	return f
}

func TestDialer_Smart(t *testing.T) {
	t.Run("twilio first", func(t *testing.T) {
		f := newFixture(domain.MethodHybrid, true, true)
		res, err := f.dialer.Smart(context.Background(), domain.CallRequest{PhoneNumber: "98765 43210",
			CandidateName: "Alice", CandidateID: 7})
		require.NoError(t, err)
		assert.Equal(t, domain.ProviderTwilio, res.Provider)
		assert.Equal(t, "CA1", res.CallID)
		assert.Empty(t, res.FallbackReason)
		assert.Empty(t, f.vapi.CreateCallCalls())

		require.Len(t, f.twilio.CreateCallCalls(), 1)
		p := f.twilio.CreateCallCalls()[0].P
		assert.Equal(t, "+919876543210", p.To, "number formatted with default country code")
		assert.Equal(t, 10*time.Minute, p.TimeLimit)
		assert.Contains(t, p.TwiML, "https://calls.example.com/twilio/gather")
		assert.Contains(t, p.TwiML, "Hello Alice")

		cb, err := url.Parse(p.StatusCallback)
		require.NoError(t, err)
		assert.Equal(t, "/webhook/twilio/status", cb.Path)
		assert.Equal(t, "twilio", cb.Query().Get("callType"))
		assert.Equal(t, "7", cb.Query().Get("candidateId"))
	})

	t.Run("prefer vapi", func(t *testing.T) {
		f := newFixture(domain.MethodHybrid, true, true)
		res, err := f.dialer.Smart(context.Background(), domain.CallRequest{PhoneNumber: "+15005550006", PreferVapi: true})
		require.NoError(t, err)
		assert.Equal(t, domain.ProviderVapi, res.Provider)
		assert.Equal(t, "vapi-1", res.VapiCallID)
		assert.Empty(t, f.twilio.CreateCallCalls())
	})

	t.Run("twilio not configured", func(t *testing.T) {
		f := newFixture(domain.MethodHybrid, true, false)
		res, err := f.dialer.Smart(context.Background(), domain.CallRequest{PhoneNumber: "+15005550006"})
		require.NoError(t, err)
		assert.Equal(t, domain.ProviderVapi, res.Provider)
		assert.Equal(t, "Call initiated successfully with Vapi", res.Message)
	})

	t.Run("trial limitation falls back", func(t *testing.T) {
		f := newFixture(domain.MethodHybrid, true, true)
		f.twilio.CreateCallFunc = func(ctx context.Context, p twilio.CallParams) (*twilio.Call, error) {
			return nil, &twclient.TwilioRestError{Code: 21219, Message: "unverified"}
		}
		res, err := f.dialer.Smart(context.Background(), domain.CallRequest{PhoneNumber: "+15005550006", AssistantID: "as-9"})
		require.NoError(t, err)
		assert.Equal(t, domain.ProviderVapi, res.Provider)
		assert.Equal(t, "Twilio trial account limitation", res.FallbackReason)
		assert.Contains(t, res.Message, "fallback from Twilio")

		require.Len(t, f.vapi.CreateCallCalls(), 1)
		spec := f.vapi.CreateCallCalls()[0].Spec
		assert.Equal(t, "Twilio trial account limitation", spec.FallbackReason)
		assert.Equal(t, "as-9", spec.AssistantID)
	})

	t.Run("other twilio error falls back with its message", func(t *testing.T) {
		f := newFixture(domain.MethodHybrid, true, true)
		f.twilio.CreateCallFunc = func(ctx context.Context, p twilio.CallParams) (*twilio.Call, error) {
			return nil, errors.New("connection reset")
		}
		res, err := f.dialer.Smart(context.Background(), domain.CallRequest{PhoneNumber: "+15005550006"})
		require.NoError(t, err)
		assert.Equal(t, "connection reset", res.FallbackReason)
	})

	t.Run("both fail", func(t *testing.T) {
		f := newFixture(domain.MethodHybrid, true, true)
		f.twilio.CreateCallFunc = func(ctx context.Context, p twilio.CallParams) (*twilio.Call, error) {
			return nil, errors.New("twilio down")
		}
		f.vapi.CreateCallFunc = func(ctx context.Context, spec vapi.CallSpec) (*vapi.Call, error) {
			return nil, &vapi.APIError{StatusCode: 400, Message: "bad assistant"}
		}
		_, err := f.dialer.Smart(context.Background(), domain.CallRequest{PhoneNumber: "+15005550006"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "twilio down")
		var apiErr *vapi.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.StatusCode)
	})

	t.Run("invalid phone", func(t *testing.T) {
		f := newFixture(domain.MethodHybrid, true, true)
		_, err := f.dialer.Smart(context.Background(), domain.CallRequest{PhoneNumber: "+0123"})
		var pe *PhoneError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "+0123", pe.Original)
		require.ErrorIs(t, err, phone.ErrInvalidFormat)
		assert.Empty(t, f.twilio.CreateCallCalls())
	})

	t.Run("missing phone", func(t *testing.T) {
		f := newFixture(domain.MethodHybrid, true, true)
		_, err := f.dialer.Smart(context.Background(), domain.CallRequest{})
		var pe *PhoneError
		require.ErrorAs(t, err, &pe)
		assert.Contains(t, err.Error(), "required")
	})
}

func TestDialer_Hybrid(t *testing.T) {
	f := newFixture(domain.MethodHybrid, true, true)
	res, err := f.dialer.Hybrid(context.Background(), domain.CallRequest{PhoneNumber: "+15005550006", CandidateName: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, domain.ProviderHybrid, res.Provider)
	assert.Equal(t, "CA1", res.TwilioCallSID)
	assert.Equal(t, "vapi-1", res.VapiCallID)

	require.Len(t, f.twilio.CreateCallCalls(), 1)
	p := f.twilio.CreateCallCalls()[0].P
	assert.Contains(t, p.TwiML, "<Redirect>https://api.vapi.ai/call/vapi-1/connect</Redirect>")
	assert.True(t, strings.Contains(p.StatusCallback, "vapiCallId=vapi-1"))
	assert.True(t, strings.Contains(p.StatusCallback, "callType=hybrid"))

	t.Run("vapi failure stops before twilio", func(t *testing.T) {
		f := newFixture(domain.MethodHybrid, true, true)
		f.vapi.CreateCallFunc = func(ctx context.Context, spec vapi.CallSpec) (*vapi.Call, error) {
			return nil, &vapi.APIError{StatusCode: 402, Message: "no credits"}
		}
		_, err := f.dialer.Hybrid(context.Background(), domain.CallRequest{PhoneNumber: "+15005550006"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vapi call failed")
		assert.Empty(t, f.twilio.CreateCallCalls())
	})

	t.Run("requires both providers", func(t *testing.T) {
		f := newFixture(domain.MethodHybrid, false, true)
		_, err := f.dialer.Hybrid(context.Background(), domain.CallRequest{PhoneNumber: "+15005550006"})
		require.ErrorIs(t, err, ErrNotConfigured)

		f = newFixture(domain.MethodHybrid, true, false)
		_, err = f.dialer.Hybrid(context.Background(), domain.CallRequest{PhoneNumber: "+15005550006"})
		require.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestDialer_SingleProvider(t *testing.T) {
	t.Run("twilio only", func(t *testing.T) {
		f := newFixture(domain.MethodTwilio, false, true)
		res, err := f.dialer.TwilioOnly(context.Background(), domain.CallRequest{PhoneNumber: "+15005550006"})
		require.NoError(t, err)
		assert.Equal(t, domain.ProviderTwilio, res.Provider)

		f = newFixture(domain.MethodTwilio, true, false)
		_, err = f.dialer.TwilioOnly(context.Background(), domain.CallRequest{PhoneNumber: "+15005550006"})
		require.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("vapi only", func(t *testing.T) {
		f := newFixture(domain.MethodVapi, true, false)
		res, err := f.dialer.VapiOnly(context.Background(), domain.CallRequest{PhoneNumber: "+15005550006"})
		require.NoError(t, err)
		assert.Equal(t, domain.ProviderVapi, res.Provider)

		f = newFixture(domain.MethodVapi, false, true)
		_, err = f.dialer.VapiOnly(context.Background(), domain.CallRequest{PhoneNumber: "+15005550006"})
		require.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestDialer_Dial(t *testing.T) {
	tests := []struct {
		method   domain.CallMethod
		provider string
	}{
		{method: domain.MethodVapi, provider: domain.ProviderVapi},
		{method: domain.MethodTwilio, provider: domain.ProviderTwilio},
		{method: domain.MethodHybrid, provider: domain.ProviderHybrid},
		{method: "carrier-pigeon", provider: domain.ProviderTwilio},
	}
	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			f := newFixture(tt.method, true, true)
			res, err := f.dialer.Dial(context.Background(), domain.CallRequest{PhoneNumber: "+15005550006"})
			require.NoError(t, err)
			assert.Equal(t, tt.provider, res.Provider)
			assert.NotEmpty(t, f.config.GetCalls())
		})
	}
}

func TestNew_DefaultCountryCode(t *testing.T) {
	d := New(Params{})
	assert.Equal(t, phone.DefaultCountryCode, d.DefaultCountryCode)
	assert.Equal(t, "https://x/webhook/twilio/status?callType=twilio",
		(&Dialer{Params: Params{BaseURL: "https://x"}}).statusCallback(domain.ProviderTwilio, 0, ""))
}
