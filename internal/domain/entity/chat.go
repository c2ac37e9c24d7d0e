package entity

import "time"

// Chat reply sources
const (
	SourceAssistant = "airport_operations_database"
	SourceCanned    = "canned_responses"
)

// ChatMessage is a user message sent to the assistant
type ChatMessage struct {
	Message   string `json:"message"`
	Context   string `json:"context,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse is the assistant reply
type ChatResponse struct {
	Response   string   `json:"response"`
	Confidence float64  `json:"confidence"`
	Sources    []string `json:"sources,omitempty"`
	SessionID  string   `json:"session_id,omitempty"`
}

// ChatLog is the stored transcript entry of one exchange
type ChatLog struct {
	ID          string    `bson:"_id,omitempty"`
	SessionID   string    `bson:"sessionId"`
	Message     string    `bson:"message"`
	Context     string    `bson:"context,omitempty"`
	Response    string    `bson:"response"`
	Source      string    `bson:"source"`
	Confidence  float64   `bson:"confidence"`
	ErrorDetail string    `bson:"errorDetail,omitempty"`
	CreatedAt   time.Time `bson:"createdAt"`
}
