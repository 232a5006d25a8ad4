package domain

// CallRequest is a request to place an outbound interview call
type CallRequest struct {
	PhoneNumber   string `json:"phoneNumber"`
	CandidateName string `json:"candidateName,omitempty"`
	CandidateID   int64  `json:"candidateId,omitempty"`
	AssistantID   string `json:"assistantId,omitempty"`
	PreferVapi    bool   `json:"preferVapi,omitempty"`
}

// Provider names reported in CallResult
const (
	ProviderVapi   = "vapi"
	ProviderTwilio = "twilio"
	ProviderHybrid = "hybrid"
)

// CallResult is the outcome of a successfully placed call
type CallResult struct {
	Provider       string `json:"provider"`
	CallID         string `json:"callId"`
	TwilioCallSID  string `json:"twilioCallSid,omitempty"`
	VapiCallID     string `json:"vapiCallId,omitempty"`
	Status         string `json:"status"`
	Message        string `json:"message"`
	FallbackReason string `json:"fallbackReason,omitempty"`
}
