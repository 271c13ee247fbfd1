package model

import "time"

// Turn senders
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Turn is a single message within a conversation. Assistant turns
// carry the identifiers of the schools they suggested.
type Turn struct {
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	SchoolIDs []int64   `json:"school_ids,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// Conversation is the append-only exchange between one requester and
// the assistant. It is created on the first message and only ever
// grows after that.
type Conversation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Turns     []Turn    `json:"turns"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
