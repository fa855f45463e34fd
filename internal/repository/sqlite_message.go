package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rvaughn/taskdesk/internal/db"
	"github.com/rvaughn/taskdesk/internal/domain"
)

// SQLiteMessageRepo stores per-project chat messages.
type SQLiteMessageRepo struct {
	db db.DBTX
}

func NewSQLiteMessageRepo(conn db.DBTX) *SQLiteMessageRepo {
	return &SQLiteMessageRepo{db: conn}
}

func (r *SQLiteMessageRepo) Create(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (id, project_id, sender_id, sender, body, sent_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.ProjectID,
		m.SenderID,
		string(m.Sender),
		m.Body,
		m.SentAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}
	return nil
}

func (r *SQLiteMessageRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Message, error) {
	query := `SELECT id, project_id, sender_id, sender, body, sent_at
		FROM messages WHERE project_id = ? ORDER BY sent_at, id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		var m domain.Message
		var senderStr, sentAtStr string
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.SenderID, &senderStr, &m.Body, &sentAtStr); err != nil {
			return nil, fmt.Errorf("scanning message row: %w", err)
		}
		m.Sender = domain.Role(senderStr)
		m.SentAt = parseTime(sentAtStr)
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return messages, nil
}
