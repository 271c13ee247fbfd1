package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pickmyschool/internal/model"
)

const schoolColumns = `
	id, name, board, city, state, school_type, medium, fees_min, fees_max,
	rating, review_count, profile_views, featured, is_public, is_international,
	facilities, virtual_tour_url, virtual_tour_videos, description, logo_url,
	contact_number, email, created_at, updated_at`

// SearchWithCriteria fetches publicly visible schools matching the
// relational parts of a criteria set, best rated first. The facility
// filter is applied in memory by the caller since facilities live in a
// jsonb column with no relational index.
//
// The fee predicates are intentionally independent: the school's own
// fees_min must sit at or below the requested ceiling, and its
// fees_max at or above the requested floor.
func (r *PostgresRepository) SearchWithCriteria(ctx context.Context, criteria *model.CriteriaSet, limit int) ([]model.School, error) {
	whereClauses := []string{"is_public = true"}
	args := []interface{}{}
	argIndex := 1

	if criteria != nil {
		if criteria.City != nil {
			whereClauses = append(whereClauses, fmt.Sprintf("city ILIKE $%d", argIndex))
			args = append(args, *criteria.City)
			argIndex++
		}
		if criteria.Board != nil {
			whereClauses = append(whereClauses, fmt.Sprintf("board ILIKE $%d", argIndex))
			args = append(args, *criteria.Board)
			argIndex++
		}
		if criteria.SchoolType != nil {
			whereClauses = append(whereClauses, fmt.Sprintf("school_type ILIKE $%d", argIndex))
			args = append(args, *criteria.SchoolType)
			argIndex++
		}
		if criteria.FeesMax != nil {
			whereClauses = append(whereClauses, fmt.Sprintf("fees_min <= $%d", argIndex))
			args = append(args, *criteria.FeesMax)
			argIndex++
		}
		if criteria.FeesMin != nil {
			whereClauses = append(whereClauses, fmt.Sprintf("fees_max >= $%d", argIndex))
			args = append(args, *criteria.FeesMin)
			argIndex++
		}
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM schools
		WHERE %s
		ORDER BY rating DESC
		LIMIT $%d
	`, schoolColumns, strings.Join(whereClauses, " AND "), argIndex)
	args = append(args, limit)

	var schools []model.School
	if err := r.db.SelectContext(ctx, &schools, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search schools: %w", err)
	}

	return schools, nil
}

// GetSchoolByID retrieves a single public school by its ID
func (r *PostgresRepository) GetSchoolByID(ctx context.Context, schoolID int64) (*model.School, error) {
	var school model.School
	query := fmt.Sprintf(`SELECT %s FROM schools WHERE id = $1 AND is_public = true`, schoolColumns)
	err := r.db.GetContext(ctx, &school, query, schoolID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get school: %w", err)
	}
	return &school, nil
}

// ListPublicSchools returns the full publicly visible catalog, used
// as the candidate set for recommendation scoring
func (r *PostgresRepository) ListPublicSchools(ctx context.Context) ([]model.School, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM schools
		WHERE is_public = true
		ORDER BY id
	`, schoolColumns)

	var schools []model.School
	if err := r.db.SelectContext(ctx, &schools, query); err != nil {
		return nil, fmt.Errorf("failed to list schools: %w", err)
	}
	return schools, nil
}
