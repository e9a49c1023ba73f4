package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/ponyo877/mural/server/domain"
	"github.com/ponyo877/mural/server/usecase"
)

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id         TEXT PRIMARY KEY,
	author     TEXT NOT NULL,
	body       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages (created_at DESC);
`

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) (usecase.Repository, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to bootstrap messages schema: %w", err)
	}
	return &Repository{db: db}, nil
}

// List returns every message, newest first. ULIDs sort lexically by time,
// so the id tiebreak keeps same-timestamp rows in insertion order.
func (r *Repository) List(ctx context.Context) ([]domain.Message, error) {
	query := "SELECT id, author, body, created_at FROM messages ORDER BY created_at DESC, id DESC"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var id, author, body string
		var createdAt time.Time
		if err := rows.Scan(&id, &author, &body, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, domain.NewMessage(id, author, body, createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over messages: %w", err)
	}
	return messages, nil
}

// Create persists a new message, assigning its id and timestamp.
func (r *Repository) Create(ctx context.Context, author, body string) (domain.Message, error) {
	id := ulid.Make().String()
	createdAt := time.Now().UTC()

	query := "INSERT INTO messages (id, author, body, created_at) VALUES (?, ?, ?, ?)"
	if _, err := r.db.ExecContext(ctx, query, id, author, body, createdAt); err != nil {
		return domain.Message{}, fmt.Errorf("failed to insert message: %w", err)
	}
	return domain.NewMessage(id, author, body, createdAt), nil
}
