package scriptcache

import "github.com/umputun/callscope/pkg/domain"

// DefaultScript is the interview script used when nothing else is configured
const DefaultScript = `Hello! This is an automated call regarding your job application. Do you have a few minutes to answer some questions?

1. Can you tell me about yourself and your background?
2. What interests you about this position?
3. What are your key strengths and skills?
4. Do you have any questions about the role or company?
5. What is your availability for the next steps?

Thank you for your time!`

// Default returns the hardcoded call configuration. It never touches a store or a cache,
// every call builds a new value.
func Default() domain.CallConfig {
	return domain.CallConfig{
		Method: domain.MethodHybrid,
		Script: DefaultScript,
		Voice: domain.VoiceSettings{
			Provider: "elevenlabs",
			VoiceID:  "adam",
			Speed:    1.0,
			Pitch:    1.0,
		},
		Call: domain.CallSettings{
			MaxDurationMinutes:       15,
			RetryAttempts:            2,
			DelayBetweenCallsSeconds: 30,
		},
	}
}
