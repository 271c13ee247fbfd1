package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// School represents a school directory record
type School struct {
	ID                int64      `json:"id" db:"id"`
	Name              string     `json:"name" db:"name"`
	Board             string     `json:"board" db:"board"`
	City              string     `json:"city" db:"city"`
	State             *string    `json:"state,omitempty" db:"state"`
	SchoolType        *string    `json:"school_type,omitempty" db:"school_type"`
	Medium            *string    `json:"medium,omitempty" db:"medium"`
	FeesMin           *int       `json:"fees_min,omitempty" db:"fees_min"`
	FeesMax           *int       `json:"fees_max,omitempty" db:"fees_max"`
	Rating            float64    `json:"rating" db:"rating"`
	ReviewCount       int        `json:"review_count" db:"review_count"`
	ProfileViews      int        `json:"profile_views" db:"profile_views"`
	Featured          bool       `json:"featured" db:"featured"`
	IsPublic          bool       `json:"is_public" db:"is_public"`
	IsInternational   bool       `json:"is_international" db:"is_international"`
	Facilities        JSONArray  `json:"facilities,omitempty" db:"facilities"`
	VirtualTourURL    *string    `json:"virtual_tour_url,omitempty" db:"virtual_tour_url"`
	VirtualTourVideos JSONArray  `json:"virtual_tour_videos,omitempty" db:"virtual_tour_videos"`
	Description       *string    `json:"description,omitempty" db:"description"`
	LogoURL           *string    `json:"logo_url,omitempty" db:"logo_url"`
	ContactNumber     *string    `json:"contact_number,omitempty" db:"contact_number"`
	Email             *string    `json:"email,omitempty" db:"email"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}

// SchoolSummary is the compact shape returned inside chat replies
type SchoolSummary struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Board   string  `json:"board"`
	City    string  `json:"city"`
	FeesMin *int    `json:"fees_min,omitempty"`
	FeesMax *int    `json:"fees_max,omitempty"`
	Rating  float64 `json:"rating"`
}

// Summary projects a School into its chat-reply shape
func (s *School) Summary() SchoolSummary {
	return SchoolSummary{
		ID:      s.ID,
		Name:    s.Name,
		Board:   s.Board,
		City:    s.City,
		FeesMin: s.FeesMin,
		FeesMax: s.FeesMax,
		Rating:  s.Rating,
	}
}

// HasVirtualTour reports whether any tour URL or tour video is present
func (s *School) HasVirtualTour() bool {
	if s.VirtualTourURL != nil && *s.VirtualTourURL != "" {
		return true
	}
	return len(s.VirtualTourVideos) > 0
}

// HasCompleteProfile reports whether description, logo, contact number
// and email are all present
func (s *School) HasCompleteProfile() bool {
	return strSet(s.Description) && strSet(s.LogoURL) && strSet(s.ContactNumber) && strSet(s.Email)
}

func strSet(p *string) bool {
	return p != nil && *p != ""
}

// JSONArray represents a JSON array field
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}

// Int64Array represents a JSON array of school identifiers
type Int64Array []int64

// Value implements driver.Valuer interface
func (a Int64Array) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner interface
func (a *Int64Array) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), a)
	}
	return json.Unmarshal(bytes, a)
}
