package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"pickmyschool/internal/model"
)

// ConversationStore persists conversations in Redis, one JSON document
// per requester. Conversations are append-only: a turn pair is added
// on every chat exchange and nothing is ever removed.
type ConversationStore struct {
	client *redis.Client
}

// NewConversationStore creates a conversation store on the given Redis client
func NewConversationStore(client *redis.Client) *ConversationStore {
	return &ConversationStore{client: client}
}

// NewRedisClient connects a Redis client for the conversation store
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func conversationKey(userID string) string {
	return "conversation:" + userID
}

// Get returns the requester's conversation, or nil if none exists yet
func (s *ConversationStore) Get(ctx context.Context, userID string) (*model.Conversation, error) {
	raw, err := s.client.Get(ctx, conversationKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	var conv model.Conversation
	if err := json.Unmarshal([]byte(raw), &conv); err != nil {
		return nil, fmt.Errorf("failed to decode conversation: %w", err)
	}
	return &conv, nil
}

// Append adds turns to the requester's conversation, creating the
// conversation on first use. Returns the updated conversation.
func (s *ConversationStore) Append(ctx context.Context, userID string, turns ...model.Turn) (*model.Conversation, error) {
	conv, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if conv == nil {
		conv = &model.Conversation{
			ID:        uuid.NewString(),
			UserID:    userID,
			CreatedAt: now,
		}
	}

	conv.Turns = append(conv.Turns, turns...)
	conv.UpdatedAt = now

	raw, err := json.Marshal(conv)
	if err != nil {
		return nil, fmt.Errorf("failed to encode conversation: %w", err)
	}
	if err := s.client.Set(ctx, conversationKey(userID), raw, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to store conversation: %w", err)
	}
	return conv, nil
}
