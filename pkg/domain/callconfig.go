package domain

import (
	"errors"
	"fmt"
	"time"
)

// CallMethod selects which provider places outbound calls
type CallMethod string

const (
	MethodVapi   CallMethod = "vapi"   // conversational-AI provider only
	MethodTwilio CallMethod = "twilio" // telephony provider only
	MethodHybrid CallMethod = "hybrid" // vapi call bridged through twilio
)

// ParseCallMethod converts a string to a known CallMethod
func ParseCallMethod(s string) (CallMethod, error) {
	switch m := CallMethod(s); m {
	case MethodVapi, MethodTwilio, MethodHybrid:
		return m, nil
	default:
		return "", fmt.Errorf("unknown call method %q", s)
	}
}

// VoiceSettings describes the synthetic voice used on a call
type VoiceSettings struct {
	Provider string  `json:"provider"`
	VoiceID  string  `json:"voiceId"`
	Speed    float64 `json:"speed"`
	Pitch    float64 `json:"pitch"`
}

// CallSettings holds per-call limits
type CallSettings struct {
	MaxDurationMinutes       int `json:"maxDurationMinutes"`
	RetryAttempts            int `json:"retryAttempts"`
	DelayBetweenCallsSeconds int `json:"delayBetweenCallsSeconds"`
}

// AssistantSettings are optional assistant overrides persisted with the call configuration
type AssistantSettings struct {
	Name                  string  `json:"name,omitempty"`
	Language              string  `json:"language,omitempty"`
	ModelProvider         string  `json:"modelProvider,omitempty"`
	ModelName             string  `json:"modelName,omitempty"`
	VoiceProvider         string  `json:"voiceProvider,omitempty"`
	VoiceID               string  `json:"voiceId,omitempty"`
	VoiceSpeed            float64 `json:"voiceSpeed,omitempty"`
	VoicePitch            float64 `json:"voicePitch,omitempty"`
	TranscriptionProvider string  `json:"transcriptionProvider,omitempty"`
	TranscriptionModel    string  `json:"transcriptionModel,omitempty"`
	TranscriptionLanguage string  `json:"transcriptionLanguage,omitempty"`
	Instructions          string  `json:"instructions,omitempty"`
	MaxDurationSeconds    int     `json:"maxDurationSeconds,omitempty"`
	InterruptionThreshold int     `json:"interruptionThreshold,omitempty"`
	BackgroundSound       string  `json:"backgroundSound,omitempty"`
	SilenceTimeoutSeconds int     `json:"silenceTimeoutSeconds,omitempty"`
	ResponseDelaySeconds  float64 `json:"responseDelaySeconds,omitempty"`
}

// CallConfig is the current call configuration. Only one is authoritative at a time,
// a save replaces it wholesale.
type CallConfig struct {
	Method    CallMethod         `json:"method"`
	Script    string             `json:"script"`
	Voice     VoiceSettings      `json:"voiceSettings"`
	Call      CallSettings       `json:"callSettings"`
	Assistant *AssistantSettings `json:"assistant,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt,omitzero"`
}

// Validate checks the configuration invariants
func (c *CallConfig) Validate() error {
	var errs []error
	if _, err := ParseCallMethod(string(c.Method)); err != nil {
		errs = append(errs, err)
	}
	if c.Script == "" {
		errs = append(errs, errors.New("script is required"))
	}
	if c.Voice.Speed <= 0 {
		errs = append(errs, errors.New("voice speed must be positive"))
	}
	if c.Voice.Pitch <= 0 {
		errs = append(errs, errors.New("voice pitch must be positive"))
	}
	if c.Call.MaxDurationMinutes <= 0 {
		errs = append(errs, errors.New("max duration must be positive"))
	}
	if c.Call.RetryAttempts < 0 {
		errs = append(errs, errors.New("retry attempts must be non-negative"))
	}
	if c.Call.DelayBetweenCallsSeconds < 0 {
		errs = append(errs, errors.New("delay between calls must be non-negative"))
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy of the configuration
func (c *CallConfig) Clone() *CallConfig {
	if c == nil {
		return nil
	}
	res := *c
	if c.Assistant != nil {
		a := *c.Assistant
		res.Assistant = &a
	}
	return &res
}
