package repository

import (
	"context"
	"fmt"

	"pickmyschool/internal/model"
)

// EnquiredSchoolIDs returns the identifiers of schools a student has
// already contacted, in enquiry order
func (r *PostgresRepository) EnquiredSchoolIDs(ctx context.Context, studentID string) ([]int64, error) {
	var ids []int64
	query := `SELECT school_id FROM enquiries WHERE student_id = $1 ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &ids, query, studentID); err != nil {
		return nil, fmt.Errorf("failed to list enquired schools: %w", err)
	}
	return ids, nil
}

// CreateEnquiry records a student's enquiry against a school
func (r *PostgresRepository) CreateEnquiry(ctx context.Context, enquiry *model.Enquiry) error {
	query := `
		INSERT INTO enquiries (student_id, school_id, message, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`
	row := r.db.QueryRowxContext(ctx, query, enquiry.StudentID, enquiry.SchoolID, enquiry.Message)
	if err := row.Scan(&enquiry.ID, &enquiry.CreatedAt); err != nil {
		return fmt.Errorf("failed to create enquiry: %w", err)
	}
	return nil
}
