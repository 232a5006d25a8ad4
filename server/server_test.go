package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/callscope/pkg/provider/vapi"
	"github.com/umputun/callscope/pkg/repository"
	"github.com/umputun/callscope/pkg/scriptcache"
	"github.com/umputun/callscope/server/mocks"
)

// newTestRepos opens in-memory repositories, single connection keeps one shared memory database
func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:",
		MaxOpenConns: 1, MaxIdleConns: 1, ConnMaxLifetime: time.Minute})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

// testDeps is a set of mocks with all providers configured and empty stores
type testDeps struct {
	cache      *mocks.ConfigCacheMock
	configs    *mocks.ConfigStoreMock
	candidates *mocks.CandidateStoreMock
	scripts    *mocks.ScriptStoreMock
	dialer     *mocks.DialerMock
	assistant  *mocks.AssistantServiceMock
	vapi       *mocks.VapiAPIMock
	twilio     *mocks.TwilioAPIMock
	llm        *mocks.ModelCheckerMock
	db         *mocks.PingerMock
}

func newTestDeps() *testDeps {
	return &testDeps{
		cache: &mocks.ConfigCacheMock{
			GetFunc: func(ctx context.Context) scriptcache.Result {
				return scriptcache.Result{Config: scriptcache.Default(), Outcome: scriptcache.OutcomeDefault}
			},
			RefreshFunc: func(ctx context.Context) scriptcache.Result {
				return scriptcache.Result{Config: scriptcache.Default(), Outcome: scriptcache.OutcomeDefault}
			},
		},
		configs:    &mocks.ConfigStoreMock{},
		candidates: &mocks.CandidateStoreMock{},
		scripts:    &mocks.ScriptStoreMock{},
		dialer:     &mocks.DialerMock{},
		assistant:  &mocks.AssistantServiceMock{},
		vapi:       &mocks.VapiAPIMock{ConfiguredFunc: func() bool { return true }},
		twilio: &mocks.TwilioAPIMock{
			ConfiguredFunc: func() bool { return true },
			CanLookupFunc:  func() bool { return true },
		},
		llm: &mocks.ModelCheckerMock{ConfiguredFunc: func() bool { return false }},
		db:  &mocks.PingerMock{PingFunc: func(ctx context.Context) error { return nil }},
	}
}

func (d *testDeps) deps() Deps {
	return Deps{
		Cache:      d.cache,
		Configs:    d.configs,
		Candidates: d.candidates,
		Scripts:    d.scripts,
		Dialer:     d.dialer,
		Assistant:  d.assistant,
		Vapi:       d.vapi,
		Twilio:     d.twilio,
		LLM:        d.llm,
		DB:         d.db,
	}
}

func testConfig() *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":8080", 30 * time.Second },
	}
}

// testServer creates a server instance using the actual New function
func testServer(t *testing.T, d *testDeps) *Server {
	t.Helper()
	return New(testConfig(), d.deps(), "test", false)
}

// do sends a request through the router and returns the recorder
func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader = http.NoBody
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a JSON response body
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(), newTestDeps().deps(), "1.0.0", false)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}
	srv := New(cfg, newTestDeps().deps(), "1.0.0", true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_statusHandler(t *testing.T) {
	srv := New(testConfig(), newTestDeps().deps(), "1.2.3", false)
	w := do(t, srv, http.MethodGet, "/api/v1/status", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	resp := decode(t, w)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "1.2.3", resp["version"])
	assert.NotEmpty(t, resp["time"])
	assert.Equal(t, "callscope", w.Header().Get("App-Name"))
}

func TestServer_healthHandler(t *testing.T) {
	d := newTestDeps()
	d.twilio.ConfiguredFunc = func() bool { return false }
	srv := New(testConfig(), Deps{Cache: d.cache, Configs: d.configs, Candidates: d.candidates, Scripts: d.scripts,
		Dialer: d.dialer, Assistant: d.assistant, Vapi: d.vapi, Twilio: d.twilio, DB: d.db, WebhookSecret: "s"}, "t", false)

	w := do(t, srv, http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "healthy", resp["status"])
	services := resp["services"].(map[string]any)
	assert.Equal(t, true, services["vapi"].(map[string]any)["configured"])
	assert.Equal(t, false, services["twilio"].(map[string]any)["configured"])
	assert.Equal(t, true, services["twilio"].(map[string]any)["lookup"])
	assert.Equal(t, false, services["llm"].(map[string]any)["configured"], "nil checker reported as not configured")
	assert.Equal(t, true, services["webhook"].(map[string]any)["secured"])
}

func TestRenderError(t *testing.T) {
	w := httptest.NewRecorder()
	renderError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), nil, http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"error":"unknown error"}`, w.Body.String())
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "vapi error", err: fmt.Errorf("wrapped: %w", &vapi.APIError{StatusCode: 402, Message: "no credits"}), code: 402},
		{name: "not found", err: fmt.Errorf("script 5: %w", repository.ErrNotFound), code: http.StatusNotFound},
		{name: "other", err: errors.New("boom"), code: http.StatusInternalServerError},
		{name: "vapi error without status", err: &vapi.APIError{}, code: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, errorStatus(tt.err))
		})
	}
}

func TestServer_InvalidJSON(t *testing.T) {
	srv := testServer(t, newTestDeps())
	for _, path := range []string{"/api/v1/config", "/api/v1/assistant", "/api/v1/scripts", "/api/v1/calls",
		"/api/v1/call", "/api/v1/phone/verify", "/api/v1/vapi/assistants", "/api/v1/data"} {
		t.Run(path, func(t *testing.T) {
			w := do(t, srv, http.MethodPost, path, "{not json")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decode(t, w)["error"], "invalid request body")
		})
	}
}
