package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"pickmyschool/internal/model"
	"pickmyschool/internal/utils"
)

// ChatService runs the conversational search pipeline: extract
// criteria, query the directory, filter facilities in memory, compose
// a reply, and persist the exchange as a conversation turn pair.
type ChatService struct {
	directory     SchoolDirectory
	conversations ConversationLog
	extractor     *CriteriaExtractor
	composer      *ResponseComposer
	pageSize      int
	logger        *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(
	directory SchoolDirectory,
	conversations ConversationLog,
	extractor *CriteriaExtractor,
	composer *ResponseComposer,
	pageSize int,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		directory:     directory,
		conversations: conversations,
		extractor:     extractor,
		composer:      composer,
		pageSize:      pageSize,
		logger:        logger,
	}
}

// Handle processes one chat message for the given requester
func (s *ChatService) Handle(ctx context.Context, userID, message string) (*model.ChatResponse, error) {
	message = strings.TrimSpace(message)

	criteria := s.extractor.Extract(message)
	s.logger.Debug("extracted criteria",
		zap.String("user_id", userID),
		zap.Any("criteria", criteria))

	schools, err := s.directory.SearchWithCriteria(ctx, criteria, s.pageSize)
	if err != nil {
		return nil, err
	}

	// Facilities are not relationally indexed, so that filter runs here
	if len(criteria.Facilities) > 0 {
		filtered := schools[:0]
		for _, school := range schools {
			if utils.HasAllFacilities(criteria.Facilities, school.Facilities) {
				filtered = append(filtered, school)
			}
		}
		schools = filtered
	}

	reply := s.composer.Compose(criteria, schools)

	schoolIDs := make([]int64, len(schools))
	summaries := make([]model.SchoolSummary, len(schools))
	for i, school := range schools {
		schoolIDs[i] = school.ID
		summaries[i] = school.Summary()
	}

	now := time.Now().UTC()
	conv, err := s.conversations.Append(ctx, userID,
		model.Turn{Sender: model.SenderUser, Content: message, SentAt: now},
		model.Turn{Sender: model.SenderAssistant, Content: reply, SchoolIDs: schoolIDs, SentAt: now},
	)
	if err != nil {
		return nil, err
	}

	return &model.ChatResponse{
		Message:        reply,
		Schools:        summaries,
		Criteria:       criteria,
		ConversationID: conv.ID,
	}, nil
}

// History returns the requester's conversation, nil if none exists
func (s *ChatService) History(ctx context.Context, userID string) (*model.Conversation, error) {
	return s.conversations.Get(ctx, userID)
}
