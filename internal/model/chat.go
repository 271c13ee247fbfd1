package model

// ChatRequest represents an inbound chat message
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse represents the assistant's reply to one message
type ChatResponse struct {
	Message        string          `json:"message"`
	Schools        []SchoolSummary `json:"schools"`
	Criteria       *CriteriaSet    `json:"criteria,omitempty"`
	ConversationID string          `json:"conversation_id"`
}

// ChatHistoryResponse represents a requester's stored conversation
type ChatHistoryResponse struct {
	Conversation *Conversation `json:"conversation"`
}
