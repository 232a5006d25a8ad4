package twilio

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
)

const voice = "alice"

type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []any
}

type say struct {
	XMLName xml.Name `xml:"Say"`
	Voice   string   `xml:"voice,attr,omitempty"`
	Text    string   `xml:",chardata"`
}

type pause struct {
	XMLName xml.Name `xml:"Pause"`
	Length  int      `xml:"length,attr"`
}

type gather struct {
	XMLName   xml.Name `xml:"Gather"`
	NumDigits int      `xml:"numDigits,attr"`
	Action    string   `xml:"action,attr"`
	Method    string   `xml:"method,attr"`
	Timeout   int      `xml:"timeout,attr"`
	Verbs     []any
}

type redirect struct {
	XMLName xml.Name `xml:"Redirect"`
	URL     string   `xml:",chardata"`
}

func render(verbs ...any) (string, error) {
	data, err := xml.MarshalIndent(twimlResponse{Verbs: verbs}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal twiml: %w", err)
	}
	return xml.Header + string(data), nil
}

func greetingName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "there"
	}
	return name
}

// InterviewTwiML greets the candidate and asks to press 1 or 2, the keypress is posted to gatherURL
func InterviewTwiML(candidateName, gatherURL string) (string, error) {
	return render(
		say{Voice: voice, Text: fmt.Sprintf("Hello %s, this is an automated call regarding your job application.",
			greetingName(candidateName))},
		pause{Length: 1},
		say{Voice: voice, Text: "Do you have a few minutes to answer some questions?"},
		gather{NumDigits: 1, Action: gatherURL, Method: "POST", Timeout: 10,
			Verbs: []any{say{Voice: voice, Text: "Press 1 for yes, or 2 for no."}}},
		say{Voice: voice, Text: "I didn't hear a response. Please call back when you're available. Goodbye."},
	)
}

// ConnectTwiML greets the candidate and redirects the call to connectURL
func ConnectTwiML(candidateName, connectURL string) (string, error) {
	return render(
		say{Voice: voice, Text: fmt.Sprintf("Hello %s, this is an automated call regarding your job application. "+
			"Please hold while we connect you to our interview system.", greetingName(candidateName))},
		pause{Length: 2},
		say{Voice: voice, Text: "Connecting you now..."},
		redirect{URL: connectURL},
	)
}

// GatherReplyTwiML answers the candidate keypress. 1 reads the questions, 2 says goodbye.
func GatherReplyTwiML(digits string, questions []string) (string, error) {
	switch digits {
	case "1":
		verbs := []any{say{Voice: voice, Text: "Great! Let's begin with a few questions."}, pause{Length: 1}}
		for _, q := range questions {
			verbs = append(verbs, say{Voice: voice, Text: q}, pause{Length: 3})
		}
		verbs = append(verbs, say{Voice: voice, Text: "Thank you for your time! We will be in touch soon. Goodbye."})
		return render(verbs...)
	case "2":
		return render(say{Voice: voice,
			Text: "No problem. Please call back when you have time for the interview. Thank you and goodbye."})
	default:
		return render(say{Voice: voice,
			Text: "I didn't understand your response. Please call back when you're available. Goodbye."})
	}
}

// ErrorTwiML is spoken when the reply can't be built
const ErrorTwiML = xml.Header + `<Response>
  <Say voice="alice">Sorry, there was a technical issue. Please call back later. Goodbye.</Say>
</Response>`

// DefaultQuestions are asked when the script has no numbered questions
var DefaultQuestions = []string{
	"Can you tell me about yourself and your background?",
	"What interests you about this position?",
	"What are your key strengths and skills?",
	"Do you have any questions about the role or company?",
	"What is your availability for the next steps?",
}

var numberedLine = regexp.MustCompile(`^\s*\d+[.)]\s+(.+)$`)

// ScriptQuestions extracts numbered lines ("1. question") from a script
func ScriptQuestions(script string) []string {
	var res []string
	for _, line := range strings.Split(script, "\n") {
		if m := numberedLine.FindStringSubmatch(line); m != nil {
			res = append(res, strings.TrimSpace(m[1]))
		}
	}
	if len(res) == 0 {
		return DefaultQuestions
	}
	return res
}
