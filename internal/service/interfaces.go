package service

import (
	"context"

	"pickmyschool/internal/model"
)

// SchoolDirectory is the relational read surface the services depend on
type SchoolDirectory interface {
	SearchWithCriteria(ctx context.Context, criteria *model.CriteriaSet, limit int) ([]model.School, error)
	GetSchoolByID(ctx context.Context, schoolID int64) (*model.School, error)
	ListPublicSchools(ctx context.Context) ([]model.School, error)
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
	EnquiredSchoolIDs(ctx context.Context, studentID string) ([]int64, error)
	CreateEnquiry(ctx context.Context, enquiry *model.Enquiry) error
}

// ConversationLog is the append-only conversation persistence surface
type ConversationLog interface {
	Get(ctx context.Context, userID string) (*model.Conversation, error)
	Append(ctx context.Context, userID string, turns ...model.Turn) (*model.Conversation, error)
}
