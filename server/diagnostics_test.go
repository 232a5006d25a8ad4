package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/callscope/pkg/domain"
	"github.com/umputun/callscope/pkg/llm"
	"github.com/umputun/callscope/pkg/provider/twilio"
	"github.com/umputun/callscope/pkg/provider/vapi"
)

// diagResults runs diagnostics and returns checks by name
func diagResults(t *testing.T, srv *Server) (map[string]any, map[string]diagCheck) {
	t.Helper()
	w := do(t, srv, http.MethodGet, "/api/v1/diagnostics", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)

	checks := map[string]diagCheck{}
	for _, c := range resp["results"].(map[string]any)["tests"].([]any) {
		m := c.(map[string]any)
		checks[m["name"].(string)] = diagCheck{Name: m["name"].(string), Status: m["status"].(string),
			Details: m["details"].(string)}
	}
	return resp, checks
}

func healthyDiagDeps() *testDeps {
	d := newTestDeps()
	d.candidates.CountCandidatesFunc = func(ctx context.Context) (int64, error) { return 3, nil }
	d.candidates.GetQueueFunc = func(ctx context.Context) ([]domain.Candidate, error) { return make([]domain.Candidate, 2), nil }
	d.configs.GetConfigFunc = func(ctx context.Context) (*domain.CallConfig, error) {
		return &domain.CallConfig{Method: domain.MethodHybrid}, nil
	}
	d.vapi.ListAssistantsFunc = func(ctx context.Context) ([]vapi.Assistant, error) { return []vapi.Assistant{{ID: "a"}}, nil }
	d.twilio.VerifiedCallerIDsFunc = func(ctx context.Context) ([]twilio.CallerID, error) {
		return []twilio.CallerID{{PhoneNumber: "+1"}, {PhoneNumber: "+2"}}, nil
	}
	d.llm.ConfiguredFunc = func() bool { return true }
	d.llm.CheckFunc = func(ctx context.Context) (*llm.ModelInfo, error) { return &llm.ModelInfo{ID: "gpt-4o-mini"}, nil }
	return d
}

func TestServer_diagnosticsHandler(t *testing.T) {
	t.Run("all ok", func(t *testing.T) {
		srv := testServer(t, healthyDiagDeps())
		resp, checks := diagResults(t, srv)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "All services working correctly", resp["message"])
		require.Len(t, checks, 7)
		for name, c := range checks {
			assert.Equal(t, checkOK, c.Status, name)
		}
		assert.Equal(t, "found 3 candidates", checks["Candidates"].Details)
		assert.Equal(t, "found 2 candidates in queue", checks["Call queue"].Details)
		assert.Equal(t, "configuration found, method hybrid", checks["Call config"].Details)
		assert.Equal(t, "found 1 assistants", checks["Vapi"].Details)
		assert.Equal(t, "found 2 verified caller ids", checks["Twilio"].Details)
		assert.Equal(t, "model gpt-4o-mini available", checks["LLM"].Details)
	})

	t.Run("skipped providers do not fail", func(t *testing.T) {
		d := healthyDiagDeps()
		d.vapi.ConfiguredFunc = func() bool { return false }
		d.twilio.CanLookupFunc = func() bool { return false }
		d.llm.ConfiguredFunc = func() bool { return false }
		d.configs.GetConfigFunc = func(ctx context.Context) (*domain.CallConfig, error) { return nil, nil }
		srv := testServer(t, d)

		resp, checks := diagResults(t, srv)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, checkSkipped, checks["Vapi"].Status)
		assert.Equal(t, checkSkipped, checks["Twilio"].Status)
		assert.Equal(t, checkSkipped, checks["LLM"].Status)
		assert.Contains(t, checks["Call config"].Details, "default in use")
		assert.Empty(t, d.vapi.ListAssistantsCalls())
		assert.Empty(t, d.llm.CheckCalls())
	})

	t.Run("failures reported", func(t *testing.T) {
		d := healthyDiagDeps()
		d.db.PingFunc = func(ctx context.Context) error { return errors.New("database is locked") }
		d.vapi.ListAssistantsFunc = func(ctx context.Context) ([]vapi.Assistant, error) {
			return nil, &vapi.APIError{StatusCode: 401, Message: "invalid key"}
		}
		d.twilio.ConfiguredFunc = func() bool { return false }
		srv := testServer(t, d)

		resp, checks := diagResults(t, srv)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "Some services have issues", resp["message"])
		assert.Equal(t, checkError, checks["Database"].Status)
		assert.Equal(t, "database is locked", checks["Database"].Details)
		assert.Equal(t, checkError, checks["Vapi"].Status)
		assert.Contains(t, checks["Vapi"].Details, "invalid key")
		assert.Equal(t, checkOK, checks["Twilio"].Status)
		assert.Contains(t, checks["Twilio"].Details, "caller number not set")
	})

	t.Run("no database", func(t *testing.T) {
		d := healthyDiagDeps()
		deps := d.deps()
		deps.DB = nil
		srv := New(testConfig(), deps, "test", false)
		_, checks := diagResults(t, srv)
		assert.Equal(t, checkSkipped, checks["Database"].Status)
	})
}
