package vapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// default assistant text
const (
	DefaultFirstMessage = "Hello! This is an automated call regarding your job application. " +
		"Do you have a few minutes to answer some questions?"
	DefaultEndCallMessage = "Thank you for your time! We'll be in touch soon."
	DefaultInstructions   = `You are a professional interview assistant conducting phone interviews for job candidates.

Your role is to:
1. Greet the candidate professionally
2. Ask relevant interview questions
3. Listen actively to their responses
4. Take notes of key information
5. Be friendly but professional
6. If they ask to speak to a human, explain this is an automated screening
7. Thank them for their time at the end

Always be respectful, patient, and professional.`
)

// Model is the conversation model of an assistant
type Model struct {
	Provider    string  `json:"provider"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"maxTokens,omitempty"`
}

// Voice is the text-to-speech voice of an assistant
type Voice struct {
	Provider string  `json:"provider"`
	VoiceID  string  `json:"voiceId"`
	Speed    float64 `json:"speed,omitempty"`
	Pitch    float64 `json:"pitch,omitempty"`
}

// Transcription is the speech-to-text setup of an assistant
type Transcription struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Language string `json:"language"`
}

// Function is a tool the assistant may call during a conversation
type Function struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// AssistantSpec describes an assistant to create
type AssistantSpec struct {
	Name                  string         `json:"name"`
	Model                 *Model         `json:"model,omitempty"`
	Voice                 *Voice         `json:"voice,omitempty"`
	Transcription         *Transcription `json:"transcription,omitempty"`
	FirstMessage          string         `json:"firstMessage,omitempty"`
	Instructions          string         `json:"instructions,omitempty"`
	MaxDurationSeconds    int            `json:"maxDurationSeconds,omitempty"`
	InterruptionThreshold int            `json:"interruptionThreshold,omitempty"`
	BackgroundSound       string         `json:"backgroundSound,omitempty"`
	SilenceTimeoutSeconds int            `json:"silenceTimeoutSeconds,omitempty"`
	ResponseDelaySeconds  float64        `json:"responseDelaySeconds,omitempty"`
	EndCallMessage        string         `json:"endCallMessage,omitempty"`
	EndCallPhrases        []string       `json:"endCallPhrases,omitempty"`
	Functions             []Function     `json:"functions,omitempty"`
}

// Assistant is a Vapi assistant as returned by the API
type Assistant struct {
	ID        string `json:"id"`
	OrgID     string `json:"orgId,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	AssistantSpec
}

// WithDefaults fills empty fields with the interview assistant defaults
func (s AssistantSpec) WithDefaults() AssistantSpec {
	if s.Name == "" {
		s.Name = "Interview Assistant"
	}
	if s.Model == nil {
		s.Model = &Model{Provider: "openai", Model: "gpt-4o-mini", Temperature: 0.7, MaxTokens: 1000}
	}
	if s.Voice == nil {
		s.Voice = &Voice{Provider: "elevenlabs", VoiceID: "adam", Speed: 1.0, Pitch: 1.0}
	}
	if s.Transcription == nil {
		s.Transcription = &Transcription{Provider: "deepgram", Model: "nova-2", Language: "multi"}
	}
	if s.FirstMessage == "" {
		s.FirstMessage = DefaultFirstMessage
	}
	if s.Instructions == "" {
		s.Instructions = DefaultInstructions
	}
	if s.MaxDurationSeconds == 0 {
		s.MaxDurationSeconds = 600
	}
	if s.InterruptionThreshold == 0 {
		s.InterruptionThreshold = 1000
	}
	if s.BackgroundSound == "" {
		s.BackgroundSound = "office"
	}
	if s.SilenceTimeoutSeconds == 0 {
		s.SilenceTimeoutSeconds = 5
	}
	if s.ResponseDelaySeconds == 0 {
		s.ResponseDelaySeconds = 0.5
	}
	if s.EndCallMessage == "" {
		s.EndCallMessage = DefaultEndCallMessage
	}
	if len(s.EndCallPhrases) == 0 {
		s.EndCallPhrases = []string{"goodbye", "thank you", "have a great day", "talk to you later"}
	}
	if len(s.Functions) == 0 {
		s.Functions = interviewFunctions()
	}
	return s
}

func interviewFunctions() []Function {
	str := func(desc string) map[string]any { return map[string]any{"type": "string", "description": desc} }
	return []Function{
		{
			Name:        "take_notes",
			Description: "Take notes about the candidate's responses",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": str("The question that was asked"),
					"response": str("The candidate's response"),
					"key_points": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Key points from the response",
					},
				},
				"required": []string{"question", "response"},
			},
		},
		{
			Name:        "schedule_follow_up",
			Description: "Schedule a follow-up call or meeting",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"candidate_name": str("Name of the candidate"),
					"preferred_time": str("Preferred time for follow-up"),
					"reason":         str("Reason for follow-up"),
				},
				"required": []string{"candidate_name", "reason"},
			},
		},
	}
}

// CreateAssistant creates an assistant, empty fields of spec get defaults
func (c *Client) CreateAssistant(ctx context.Context, spec AssistantSpec) (*Assistant, error) {
	var res Assistant
	if err := c.do(ctx, http.MethodPost, "/assistant", spec.WithDefaults(), &res); err != nil {
		return nil, fmt.Errorf("create assistant: %w", err)
	}
	return &res, nil
}

// GetAssistant returns an assistant by id
func (c *Client) GetAssistant(ctx context.Context, id string) (*Assistant, error) {
	var res Assistant
	if err := c.do(ctx, http.MethodGet, "/assistant/"+url.PathEscape(id), nil, &res); err != nil {
		return nil, fmt.Errorf("get assistant %s: %w", id, err)
	}
	return &res, nil
}

// ListAssistants returns all assistants of the account
func (c *Client) ListAssistants(ctx context.Context) ([]Assistant, error) {
	var res []Assistant
	if err := c.do(ctx, http.MethodGet, "/assistant", nil, &res); err != nil {
		return nil, fmt.Errorf("list assistants: %w", err)
	}
	return res, nil
}

// UpdateAssistant sends a partial update, fields are passed as is
func (c *Client) UpdateAssistant(ctx context.Context, id string, fields map[string]any) (*Assistant, error) {
	var res Assistant
	if err := c.do(ctx, http.MethodPatch, "/assistant/"+url.PathEscape(id), fields, &res); err != nil {
		return nil, fmt.Errorf("update assistant %s: %w", id, err)
	}
	return &res, nil
}

// DeleteAssistant removes an assistant
func (c *Client) DeleteAssistant(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/assistant/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete assistant %s: %w", id, err)
	}
	return nil
}
