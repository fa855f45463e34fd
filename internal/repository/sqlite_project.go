package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rvaughn/taskdesk/internal/db"
	"github.com/rvaughn/taskdesk/internal/domain"
)

const projectColumns = `id, short_id, title, subject, description, payout, commission_pct,
	deadline, status, supervisor_id, supervisor_name, doer_id, doer_name,
	word_count, page_count, created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo over the SQLite store.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ShortID,
		p.Title,
		p.Subject,
		p.Description,
		nullableFloatToValue(p.Payout),
		p.CommissionPct,
		p.Deadline.UTC().Format(time.RFC3339),
		string(p.Status),
		p.SupervisorID,
		p.SupervisorName,
		p.DoerID,
		p.DoerName,
		p.WordCount,
		p.PageCount,
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	return scanProject(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProjectRepo) GetByShortID(ctx context.Context, shortID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE UPPER(short_id) = UPPER(?)`
	return scanProject(r.db.QueryRowContext(ctx, query, shortID))
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at`
	return r.queryProjects(ctx, query)
}

func (r *SQLiteProjectRepo) ListByDoer(ctx context.Context, doerID string) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE doer_id = ? ORDER BY created_at`
	return r.queryProjects(ctx, query, doerID)
}

func (r *SQLiteProjectRepo) ListBySupervisor(ctx context.Context, supervisorID string) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE supervisor_id = ? ORDER BY created_at`
	return r.queryProjects(ctx, query, supervisorID)
}

func (r *SQLiteProjectRepo) ListPool(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects
		WHERE status = ? AND doer_id = '' ORDER BY created_at`
	return r.queryProjects(ctx, query, string(domain.StatusAssigning))
}

func (r *SQLiteProjectRepo) ListByStatuses(ctx context.Context, statuses []domain.ProjectStatus) ([]*domain.Project, error) {
	if len(statuses) == 0 {
		return r.List(ctx)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(statuses)), ",")
	query := `SELECT ` + projectColumns + ` FROM projects
		WHERE status IN (` + placeholders + `) ORDER BY created_at`
	args := make([]any, len(statuses))
	for i, s := range statuses {
		args[i] = string(s)
	}
	return r.queryProjects(ctx, query, args...)
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET short_id = ?, title = ?, subject = ?, description = ?,
		payout = ?, commission_pct = ?, deadline = ?, status = ?,
		supervisor_id = ?, supervisor_name = ?, doer_id = ?, doer_name = ?,
		word_count = ?, page_count = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.ShortID,
		p.Title,
		p.Subject,
		p.Description,
		nullableFloatToValue(p.Payout),
		p.CommissionPct,
		p.Deadline.UTC().Format(time.RFC3339),
		string(p.Status),
		p.SupervisorID,
		p.SupervisorName,
		p.DoerID,
		p.DoerName,
		p.WordCount,
		p.PageCount,
		p.UpdatedAt.UTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("project not found: %s", p.ID)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) queryProjects(ctx context.Context, query string, args ...any) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProjectRow(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProjectInto(s rowScanner) (*domain.Project, error) {
	var p domain.Project
	var payout sql.NullFloat64
	var deadlineStr, statusStr, createdAtStr, updatedAtStr string

	err := s.Scan(
		&p.ID, &p.ShortID, &p.Title, &p.Subject, &p.Description,
		&payout, &p.CommissionPct,
		&deadlineStr, &statusStr,
		&p.SupervisorID, &p.SupervisorName, &p.DoerID, &p.DoerName,
		&p.WordCount, &p.PageCount,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	p.Payout = parseNullableFloat(payout)
	p.Status = domain.ProjectStatus(statusStr)
	p.Deadline = parseTime(deadlineStr)
	p.CreatedAt = parseTime(createdAtStr)
	p.UpdatedAt = parseTime(updatedAtStr)
	return &p, nil
}

func scanProject(row *sql.Row) (*domain.Project, error) {
	p, err := scanProjectInto(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project not found")
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return p, nil
}

func scanProjectRow(rows *sql.Rows) (*domain.Project, error) {
	p, err := scanProjectInto(rows)
	if err != nil {
		return nil, fmt.Errorf("scanning project row: %w", err)
	}
	return p, nil
}
