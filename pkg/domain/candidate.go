package domain

import "time"

// CandidateStatus is a candidate position in the calling workflow
type CandidateStatus string

const (
	StatusPending   CandidateStatus = "pending"
	StatusCalling   CandidateStatus = "calling"
	StatusCompleted CandidateStatus = "completed"
	StatusFailed    CandidateStatus = "failed"
)

// Candidate represents a person to be called for an interview
type Candidate struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Position      string          `json:"position"`
	Status        CandidateStatus `json:"status"`
	CallID        string          `json:"callId,omitempty"`
	CallProvider  string          `json:"callProvider,omitempty"`
	CallResult    string          `json:"callResult,omitempty"`
	CallNotes     string          `json:"callNotes,omitempty"`
	AddedAt       *time.Time      `json:"addedAt,omitempty"`
	CallStartTime *time.Time      `json:"callStartTime,omitempty"`
	CallEndTime   *time.Time      `json:"callEndTime,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CallUpdate carries optional fields written together with a status change
type CallUpdate struct {
	CallID       string
	CallProvider string
	CallResult   string
	CallNotes    string
}
