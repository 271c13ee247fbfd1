package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pickmyschool/internal/model"
)

const userColumns = `id, role, name, email, city, saved_school_ids, created_at, updated_at`

// GetUserByToken resolves an opaque bearer token to its user
func (r *PostgresRepository) GetUserByToken(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	query := fmt.Sprintf(`SELECT %s FROM users WHERE api_token = $1`, userColumns)
	err := r.db.GetContext(ctx, &user, query, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by token: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *PostgresRepository) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
