package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rvaughn/taskdesk/internal/db"
	"github.com/rvaughn/taskdesk/internal/domain"
)

// SQLiteProfileRepo stores the single local account profile.
type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

// Get returns the local profile, or nil when none has been created yet.
func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT id, role, display_name, email, activated, created_at, updated_at
		FROM profiles LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.Profile
	var roleStr, createdAtStr, updatedAtStr string
	var activated int
	err := row.Scan(&p.ID, &roleStr, &p.DisplayName, &p.Email, &activated, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	p.Role = domain.Role(roleStr)
	p.Activated = activated != 0
	p.CreatedAt = parseTime(createdAtStr)
	p.UpdatedAt = parseTime(updatedAtStr)
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, role, display_name, email, activated, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			role = excluded.role,
			display_name = excluded.display_name,
			email = excluded.email,
			activated = excluded.activated,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		string(p.Role),
		p.DisplayName,
		p.Email,
		boolToInt(p.Activated),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
