package vapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssistantSpec_WithDefaults(t *testing.T) {
	s := AssistantSpec{}.WithDefaults()
	assert.Equal(t, "Interview Assistant", s.Name)
	require.NotNil(t, s.Model)
	assert.Equal(t, "gpt-4o-mini", s.Model.Model)
	require.NotNil(t, s.Voice)
	assert.Equal(t, "adam", s.Voice.VoiceID)
	require.NotNil(t, s.Transcription)
	assert.Equal(t, "multi", s.Transcription.Language)
	assert.Equal(t, 600, s.MaxDurationSeconds)
	assert.Equal(t, 1000, s.InterruptionThreshold)
	assert.Equal(t, "office", s.BackgroundSound)
	assert.Equal(t, 5, s.SilenceTimeoutSeconds)
	assert.InDelta(t, 0.5, s.ResponseDelaySeconds, 0.0001)
	assert.Len(t, s.Functions, 2)
	assert.Equal(t, "take_notes", s.Functions[0].Name)

	custom := AssistantSpec{Name: "Asha", Voice: &Voice{Provider: "playht", VoiceID: "v1"}, MaxDurationSeconds: 120}.WithDefaults()
	assert.Equal(t, "Asha", custom.Name)
	assert.Equal(t, "playht", custom.Voice.Provider)
	assert.Equal(t, 120, custom.MaxDurationSeconds)
}

func TestClient_AssistantCRUD(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/assistant":
			var spec AssistantSpec
			require.NoError(t, json.NewDecoder(r.Body).Decode(&spec))
			assert.Equal(t, "Recruiter", spec.Name)
			assert.Equal(t, DefaultFirstMessage, spec.FirstMessage)
			_, _ = w.Write([]byte(`{"id":"as-1","name":"Recruiter"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/assistant":
			_, _ = w.Write([]byte(`[{"id":"as-1","name":"Recruiter"},{"id":"as-2","name":"Sales"}]`))
		case r.Method == http.MethodGet && r.URL.Path == "/assistant/as-1":
			_, _ = w.Write([]byte(`{"id":"as-1","name":"Recruiter","voice":{"provider":"elevenlabs","voiceId":"adam"}}`))
		case r.Method == http.MethodPatch && r.URL.Path == "/assistant/as-1":
			var fields map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
			assert.Equal(t, map[string]any{"name": "Recruiter 2"}, fields)
			_, _ = w.Write([]byte(`{"id":"as-1","name":"Recruiter 2"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/assistant/as-1":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		}
	})
	ctx := context.Background()

	created, err := c.CreateAssistant(ctx, AssistantSpec{Name: "Recruiter"})
	require.NoError(t, err)
	assert.Equal(t, "as-1", created.ID)

	list, err := c.ListAssistants(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Sales", list[1].Name)

	got, err := c.GetAssistant(ctx, "as-1")
	require.NoError(t, err)
	require.NotNil(t, got.Voice)
	assert.Equal(t, "adam", got.Voice.VoiceID)

	updated, err := c.UpdateAssistant(ctx, "as-1", map[string]any{"name": "Recruiter 2"})
	require.NoError(t, err)
	assert.Equal(t, "Recruiter 2", updated.Name)

	require.NoError(t, c.DeleteAssistant(ctx, "as-1"))

	_, err = c.GetAssistant(ctx, "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Not Found", apiErr.Message)
}
