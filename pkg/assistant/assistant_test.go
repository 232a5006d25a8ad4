package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/callscope/pkg/assistant/mocks"
	"github.com/umputun/callscope/pkg/domain"
	"github.com/umputun/callscope/pkg/scriptcache"
)

var testDefaults = Defaults{
	Name:                  "Interview Assistant",
	Language:              "en",
	ModelProvider:         "openai",
	ModelName:             "gpt-4o-mini",
	TranscriptionProvider: "deepgram",
	TranscriptionModel:    "nova-2",
	TranscriptionLanguage: "multi",
	HindiVoiceID:          "hindi-voice",
}

func TestBuild_Defaults(t *testing.T) {
	cfg := scriptcache.Default()
	cfg.Voice.VoiceID = "rachel"
	cfg.Voice.Speed = 1.2

	res := Build(cfg, testDefaults)
	assert.Equal(t, "Interview Assistant", res.Name)
	assert.Equal(t, "en", res.Language)
	assert.Equal(t, "openai", res.Model.Provider)
	assert.Equal(t, "gpt-4o-mini", res.Model.Model)
	assert.Equal(t, "rachel", res.Voice.VoiceID, "voice comes from call config")
	assert.InDelta(t, 1.2, res.Voice.Speed, 0.001)
	assert.Equal(t, "multi", res.Transcription.Language)
	assert.Contains(t, res.Instructions, "Follow this script:\n\n"+scriptcache.DefaultScript+"\n\n")
	assert.Zero(t, res.MaxDurationSeconds)
}

func TestBuild_Overrides(t *testing.T) {
	t.Run("named overrides apply", func(t *testing.T) {
		cfg := scriptcache.Default()
		cfg.Assistant = &domain.AssistantSettings{Name: "Recruiter", ModelName: "gpt-4o", VoiceID: "bella",
			Instructions: "be brief", MaxDurationSeconds: 300, BackgroundSound: "off"}
		res := Build(cfg, testDefaults)
		assert.Equal(t, "Recruiter", res.Name)
		assert.Equal(t, "gpt-4o", res.Model.Model)
		assert.Equal(t, "openai", res.Model.Provider, "empty override keeps default")
		assert.Equal(t, "bella", res.Voice.VoiceID)
		assert.Equal(t, "elevenlabs", res.Voice.Provider)
		assert.Equal(t, "be brief", res.Instructions)
		assert.Equal(t, 300, res.MaxDurationSeconds)
		assert.Equal(t, "off", res.BackgroundSound)
	})

	t.Run("unnamed overrides ignored", func(t *testing.T) {
		cfg := scriptcache.Default()
		cfg.Assistant = &domain.AssistantSettings{ModelName: "gpt-4o"}
		res := Build(cfg, testDefaults)
		assert.Equal(t, "gpt-4o-mini", res.Model.Model)
	})

	t.Run("hindi", func(t *testing.T) {
		cfg := scriptcache.Default()
		cfg.Assistant = &domain.AssistantSettings{Name: "Hindi", Language: "hi", VoiceID: "bella",
			TranscriptionModel: "whisper"}
		res := Build(cfg, testDefaults)
		assert.Equal(t, "deepgram", res.Transcription.Provider)
		assert.Equal(t, "nova-2", res.Transcription.Model)
		assert.Equal(t, "hi", res.Transcription.Language)
		assert.Equal(t, "hindi-voice", res.Voice.VoiceID)
		assert.Equal(t, "elevenlabs", res.Voice.Provider)
		assert.InDelta(t, 1.0, res.Voice.Pitch, 0.001)

		res = Build(cfg, Defaults{})
		assert.Equal(t, "hindi-male-1", res.Voice.VoiceID)
	})
}

func TestService_Update(t *testing.T) {
	var stored *domain.CallConfig
	cache := &mocks.ConfigCacheMock{
		GetFunc: func(ctx context.Context) scriptcache.Result {
			cfg := scriptcache.Default()
			cfg.Script = "custom script"
			return scriptcache.Result{Config: cfg, Outcome: scriptcache.OutcomeFresh}
		},
		RefreshFunc: func(ctx context.Context) scriptcache.Result {
			require.NotNil(t, stored)
			return scriptcache.Result{Config: *stored.Clone(), Outcome: scriptcache.OutcomeFresh}
		},
	}
	saver := &mocks.ConfigSaverMock{
		SaveConfigFunc: func(ctx context.Context, cfg domain.CallConfig) (*domain.CallConfig, error) {
			stored = cfg.Clone()
			return stored, nil
		},
	}
	svc := New(cache, saver, testDefaults)

	res, err := svc.Update(context.Background(), Settings{Name: "Screening", Language: "es"})
	require.NoError(t, err)
	assert.Equal(t, "Screening", res.Name)
	assert.Equal(t, "es", res.Language)
	assert.Equal(t, 600, res.MaxDurationSeconds)
	assert.Equal(t, 1000, res.InterruptionThreshold)
	assert.Equal(t, "office", res.BackgroundSound)
	assert.Equal(t, 5, res.SilenceTimeoutSeconds)
	assert.InDelta(t, 0.5, res.ResponseDelaySeconds, 0.001)
	assert.Equal(t, "adam", res.Voice.VoiceID)
	assert.Contains(t, res.Instructions, "custom script", "empty instructions fall back to template")

	require.Len(t, saver.SaveConfigCalls(), 1)
	saved := saver.SaveConfigCalls()[0].Cfg
	assert.Equal(t, "custom script", saved.Script, "rest of config preserved")
	assert.Equal(t, domain.MethodHybrid, saved.Method)
	require.NotNil(t, saved.Assistant)
	assert.Equal(t, "gpt-4o-mini", saved.Assistant.ModelName)
	assert.Len(t, cache.RefreshCalls(), 1)
}

func TestService_UpdateErrors(t *testing.T) {
	cache := &mocks.ConfigCacheMock{
		GetFunc: func(ctx context.Context) scriptcache.Result {
			return scriptcache.Result{Config: scriptcache.Default(), Outcome: scriptcache.OutcomeDegraded}
		},
	}

	t.Run("save failure", func(t *testing.T) {
		saver := &mocks.ConfigSaverMock{
			SaveConfigFunc: func(ctx context.Context, cfg domain.CallConfig) (*domain.CallConfig, error) {
				return nil, errors.New("disk full")
			},
		}
		_, err := New(cache, saver, testDefaults).Update(context.Background(), Settings{Name: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.Empty(t, cache.RefreshCalls())
	})

	t.Run("negative speed", func(t *testing.T) {
		saver := &mocks.ConfigSaverMock{}
		upd := Settings{Name: "x"}
		upd.Voice.Speed = -1
		_, err := New(cache, saver, testDefaults).Update(context.Background(), upd)
		require.ErrorIs(t, err, ErrInvalid)
		assert.Contains(t, err.Error(), "voice speed and pitch must be positive")
		assert.Empty(t, saver.SaveConfigCalls())
	})
}

func TestService_Current(t *testing.T) {
	cache := &mocks.ConfigCacheMock{
		GetFunc: func(ctx context.Context) scriptcache.Result {
			return scriptcache.Result{Config: scriptcache.Default(), Outcome: scriptcache.OutcomeDefault}
		},
	}
	res := New(cache, &mocks.ConfigSaverMock{}, testDefaults).Current(context.Background())
	assert.Equal(t, "Interview Assistant", res.Name)
	assert.Len(t, cache.GetCalls(), 1)
}
