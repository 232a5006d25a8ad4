// Package assistant builds the voice assistant settings served to the dashboard and to Vapi. Settings come from
// the cached call configuration, saved assistant overrides and configured defaults, in that order.
package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/callscope/pkg/domain"
	"github.com/umputun/callscope/pkg/provider/vapi"
	"github.com/umputun/callscope/pkg/scriptcache"
)

//go:generate moq -out mocks/cache.go -pkg mocks -skip-ensure -fmt goimports . ConfigCache
//go:generate moq -out mocks/saver.go -pkg mocks -skip-ensure -fmt goimports . ConfigSaver

const hindi = "hi"

// ErrInvalid is returned by Update for settings rejected before saving
var ErrInvalid = errors.New("invalid assistant settings")

// values used by Update for settings missing from the request
const (
	defaultVoiceProvider         = "elevenlabs"
	defaultVoiceID               = "adam"
	defaultMaxDurationSeconds    = 600
	defaultInterruptionThreshold = 1000
	defaultBackgroundSound       = "office"
	defaultSilenceTimeoutSeconds = 5
	defaultResponseDelaySeconds  = 0.5
)

const instructionsTemplate = `You are a professional interview assistant conducting phone interviews for job candidates. Follow this script:

%s

Always be professional, friendly, and take notes of their responses. If they ask to speak to a human, explain that this is an automated screening and provide contact information if available.`

// ConfigCache is the cached call configuration, satisfied by *scriptcache.Cache
type ConfigCache interface {
	Get(ctx context.Context) scriptcache.Result
	Refresh(ctx context.Context) scriptcache.Result
}

// ConfigSaver persists the call configuration
type ConfigSaver interface {
	SaveConfig(ctx context.Context, cfg domain.CallConfig) (*domain.CallConfig, error)
}

// Defaults are used when no overrides are saved
type Defaults struct {
	Name                  string
	Language              string
	ModelProvider         string
	ModelName             string
	TranscriptionProvider string
	TranscriptionModel    string
	TranscriptionLanguage string
	HindiVoiceID          string
}

// Settings is the assistant as presented to clients
type Settings struct {
	Name                  string             `json:"name"`
	Language              string             `json:"language"`
	Model                 vapi.Model         `json:"model"`
	Voice                 vapi.Voice         `json:"voice"`
	Transcription         vapi.Transcription `json:"transcription"`
	Instructions          string             `json:"instructions"`
	MaxDurationSeconds    int                `json:"maxDurationSeconds,omitempty"`
	InterruptionThreshold int                `json:"interruptionThreshold,omitempty"`
	BackgroundSound       string             `json:"backgroundSound,omitempty"`
	SilenceTimeoutSeconds int                `json:"silenceTimeoutSeconds,omitempty"`
	ResponseDelaySeconds  float64            `json:"responseDelaySeconds,omitempty"`
}

// Service reads and updates assistant settings
type Service struct {
	cache    ConfigCache
	store    ConfigSaver
	defaults Defaults
}

// New makes a Service
func New(cache ConfigCache, store ConfigSaver, defaults Defaults) *Service {
	return &Service{cache: cache, store: store, defaults: defaults}
}

// Current returns the assistant settings for the current call configuration
func (s *Service) Current(ctx context.Context) Settings {
	return Build(s.cache.Get(ctx).Config, s.defaults)
}

// Build makes assistant settings from a call configuration. Saved overrides apply only when they name
// the assistant, empty override fields keep the default. Hindi gets a fixed transcription and voice setup.
func Build(cfg domain.CallConfig, d Defaults) Settings {
	res := Settings{
		Name:          d.Name,
		Language:      d.Language,
		Model:         vapi.Model{Provider: d.ModelProvider, Model: d.ModelName},
		Voice:         vapi.Voice{Provider: cfg.Voice.Provider, VoiceID: cfg.Voice.VoiceID, Speed: cfg.Voice.Speed, Pitch: cfg.Voice.Pitch},
		Transcription: vapi.Transcription{Provider: d.TranscriptionProvider, Model: d.TranscriptionModel, Language: d.TranscriptionLanguage},
		Instructions:  fmt.Sprintf(instructionsTemplate, cfg.Script),
	}

	if a := cfg.Assistant; a != nil && a.Name != "" {
		res.Name = a.Name
		setString(&res.Language, a.Language)
		setString(&res.Model.Provider, a.ModelProvider)
		setString(&res.Model.Model, a.ModelName)
		setString(&res.Voice.Provider, a.VoiceProvider)
		setString(&res.Voice.VoiceID, a.VoiceID)
		setFloat(&res.Voice.Speed, a.VoiceSpeed)
		setFloat(&res.Voice.Pitch, a.VoicePitch)
		setString(&res.Transcription.Provider, a.TranscriptionProvider)
		setString(&res.Transcription.Model, a.TranscriptionModel)
		setString(&res.Transcription.Language, a.TranscriptionLanguage)
		setString(&res.Instructions, a.Instructions)
		res.MaxDurationSeconds = a.MaxDurationSeconds
		res.InterruptionThreshold = a.InterruptionThreshold
		res.BackgroundSound = a.BackgroundSound
		res.SilenceTimeoutSeconds = a.SilenceTimeoutSeconds
		res.ResponseDelaySeconds = a.ResponseDelaySeconds
	}

	if res.Language == hindi {
		res.Transcription = vapi.Transcription{Provider: "deepgram", Model: "nova-2", Language: hindi}
		voiceID := d.HindiVoiceID
		if voiceID == "" {
			voiceID = "hindi-male-1"
		}
		res.Voice = vapi.Voice{Provider: "elevenlabs", VoiceID: voiceID, Speed: 1.0, Pitch: 1.0}
	}
	return res
}

// Update stores upd as the assistant overrides of the current configuration, keeping its method, script,
// voice and call settings. Fields missing in upd get defaults. The cache is refreshed after the save.
func (s *Service) Update(ctx context.Context, upd Settings) (Settings, error) {
	current := s.cache.Get(ctx)
	if current.Outcome == scriptcache.OutcomeDegraded {
		lgr.Printf("[WARN] updating assistant on top of a stale call config")
	}

	cfg := current.Config
	cfg.Assistant = &domain.AssistantSettings{
		Name:                  orString(upd.Name, s.defaults.Name),
		Language:              orString(upd.Language, s.defaults.Language),
		ModelProvider:         orString(upd.Model.Provider, s.defaults.ModelProvider),
		ModelName:             orString(upd.Model.Model, s.defaults.ModelName),
		VoiceProvider:         orString(upd.Voice.Provider, defaultVoiceProvider),
		VoiceID:               orString(upd.Voice.VoiceID, defaultVoiceID),
		VoiceSpeed:            orFloat(upd.Voice.Speed, 1.0),
		VoicePitch:            orFloat(upd.Voice.Pitch, 1.0),
		TranscriptionProvider: orString(upd.Transcription.Provider, s.defaults.TranscriptionProvider),
		TranscriptionModel:    orString(upd.Transcription.Model, s.defaults.TranscriptionModel),
		TranscriptionLanguage: orString(upd.Transcription.Language, s.defaults.TranscriptionLanguage),
		Instructions:          upd.Instructions,
		MaxDurationSeconds:    orInt(upd.MaxDurationSeconds, defaultMaxDurationSeconds),
		InterruptionThreshold: orInt(upd.InterruptionThreshold, defaultInterruptionThreshold),
		BackgroundSound:       orString(upd.BackgroundSound, defaultBackgroundSound),
		SilenceTimeoutSeconds: orInt(upd.SilenceTimeoutSeconds, defaultSilenceTimeoutSeconds),
		ResponseDelaySeconds:  orFloat(upd.ResponseDelaySeconds, defaultResponseDelaySeconds),
	}
	if cfg.Assistant.VoiceSpeed < 0 || cfg.Assistant.VoicePitch < 0 {
		return Settings{}, fmt.Errorf("%w: voice speed and pitch must be positive", ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if _, err := s.store.SaveConfig(ctx, cfg); err != nil {
		return Settings{}, fmt.Errorf("save assistant settings: %w", err)
	}
	refreshed := s.cache.Refresh(ctx)
	lgr.Printf("[INFO] assistant settings updated, name %q, language %q", cfg.Assistant.Name, cfg.Assistant.Language)
	return Build(refreshed.Config, s.defaults), nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func orFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
