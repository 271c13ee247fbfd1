package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pickmyschool/internal/model"
	"pickmyschool/internal/service"
)

// ChatHandler handles conversational search requests
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat handles POST /api/v1/chat. Anonymous requesters are allowed;
// they get a throwaway conversation identity.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Message is required", CodeValidation)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(c, http.StatusBadRequest, "Message is required", CodeValidation)
		return
	}

	userID := "anon_" + uuid.NewString()
	if user := currentUser(c); user != nil {
		userID = user.ID
	}

	response, err := h.chatService.Handle(c.Request.Context(), userID, req.Message)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to process message: "+err.Error(), CodeInternal)
		return
	}

	c.JSON(http.StatusOK, response)
}

// History handles GET /api/v1/chat/history
func (h *ChatHandler) History(c *gin.Context) {
	user := currentUser(c)

	conversation, err := h.chatService.History(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch chat history: "+err.Error(), CodeInternal)
		return
	}

	c.JSON(http.StatusOK, model.ChatHistoryResponse{Conversation: conversation})
}
