package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/callscope/pkg/provider/vapi"
)

func TestServer_vapiAssistantHandlers(t *testing.T) {
	d := newTestDeps()
	d.vapi.ListAssistantsFunc = func(ctx context.Context) ([]vapi.Assistant, error) {
		return []vapi.Assistant{{ID: "a1", AssistantSpec: vapi.AssistantSpec{Name: "Interviewer"}}}, nil
	}
	d.vapi.CreateAssistantFunc = func(ctx context.Context, spec vapi.AssistantSpec) (*vapi.Assistant, error) {
		return &vapi.Assistant{ID: "a2", AssistantSpec: spec}, nil
	}
	d.vapi.GetAssistantFunc = func(ctx context.Context, id string) (*vapi.Assistant, error) {
		if id == "gone" {
			return nil, &vapi.APIError{StatusCode: http.StatusNotFound, Message: "not found"}
		}
		return &vapi.Assistant{ID: id}, nil
	}
	d.vapi.UpdateAssistantFunc = func(ctx context.Context, id string, fields map[string]any) (*vapi.Assistant, error) {
		name, _ := fields["name"].(string)
		return &vapi.Assistant{ID: id, AssistantSpec: vapi.AssistantSpec{Name: name}}, nil
	}
	d.vapi.DeleteAssistantFunc = func(ctx context.Context, id string) error {
		if id == "locked" {
			return errors.New("network down")
		}
		return nil
	}
	srv := testServer(t, d)

	t.Run("list", func(t *testing.T) {
		w := do(t, srv, http.MethodGet, "/api/v1/vapi/assistants", "")
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		assert.InDelta(t, 1, resp["count"], 0)
		assert.Equal(t, "Interviewer", resp["assistants"].([]any)[0].(map[string]any)["name"])
	})

	t.Run("create", func(t *testing.T) {
		w := do(t, srv, http.MethodPost, "/api/v1/vapi/assistants", `{"name":"Screening"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		a := decode(t, w)["assistant"].(map[string]any)
		assert.Equal(t, "a2", a["id"])
		assert.Equal(t, "Screening", d.vapi.CreateAssistantCalls()[0].Spec.Name)
	})

	t.Run("get", func(t *testing.T) {
		w := do(t, srv, http.MethodGet, "/api/v1/vapi/assistants/a1", "")
		require.Equal(t, http.StatusOK, w.Code)
		w = do(t, srv, http.MethodGet, "/api/v1/vapi/assistants/gone", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update passes fields through", func(t *testing.T) {
		w := do(t, srv, http.MethodPut, "/api/v1/vapi/assistants/a1", `{"name":"Renamed","firstMessage":"Hi"}`)
		require.Equal(t, http.StatusOK, w.Code)
		fields := d.vapi.UpdateAssistantCalls()[0].Fields
		assert.Equal(t, map[string]any{"name": "Renamed", "firstMessage": "Hi"}, fields)
	})

	t.Run("delete", func(t *testing.T) {
		w := do(t, srv, http.MethodDelete, "/api/v1/vapi/assistants/a1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		w = do(t, srv, http.MethodDelete, "/api/v1/vapi/assistants/locked", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_vapiNotConfigured(t *testing.T) {
	d := newTestDeps()
	d.vapi.ConfiguredFunc = func() bool { return false }
	srv := testServer(t, d)

	for _, r := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/v1/vapi/assistants", ""},
		{http.MethodPost, "/api/v1/vapi/assistants", `{"name":"x"}`},
		{http.MethodGet, "/api/v1/vapi/assistants/a1", ""},
		{http.MethodPut, "/api/v1/vapi/assistants/a1", `{}`},
		{http.MethodDelete, "/api/v1/vapi/assistants/a1", ""},
	} {
		w := do(t, srv, r.method, r.path, r.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, r.method+" "+r.path)
		assert.Equal(t, vapi.ErrNotConfigured.Error(), decode(t, w)["error"])
	}
}
