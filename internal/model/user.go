package model

import "time"

// User roles
const (
	RoleStudent = "student"
	RoleSchool  = "school"
	RoleAdmin   = "admin"
)

// User represents an authenticated requester
type User struct {
	ID             string     `json:"id" db:"id"`
	Role           string     `json:"role" db:"role"`
	Name           string     `json:"name" db:"name"`
	Email          string     `json:"email" db:"email"`
	City           *string    `json:"city,omitempty" db:"city"`
	SavedSchoolIDs Int64Array `json:"saved_school_ids,omitempty" db:"saved_school_ids"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// Enquiry represents a student's contact request to a school
type Enquiry struct {
	ID        int64     `json:"id" db:"id"`
	StudentID string    `json:"student_id" db:"student_id"`
	SchoolID  int64     `json:"school_id" db:"school_id"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// EnquiryRequest represents an inbound enquiry submission
type EnquiryRequest struct {
	SchoolID int64  `json:"school_id" binding:"required"`
	Message  string `json:"message"`
}
