package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkoval/plotline/internal/domain"
)

// SQLiteTodoRepo implements TodoRepo using a SQLite database.
type SQLiteTodoRepo struct {
	db *sql.DB
}

// NewSQLiteTodoRepo creates a new SQLiteTodoRepo.
func NewSQLiteTodoRepo(db *sql.DB) *SQLiteTodoRepo {
	return &SQLiteTodoRepo{db: db}
}

func (r *SQLiteTodoRepo) Create(ctx context.Context, t *domain.Todo) error {
	query := `INSERT INTO todos (id, nodeId, text, completed) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, t.ID, t.NodeID, t.Text, boolToInt(t.Completed))
	if err != nil {
		return fmt.Errorf("inserting todo: %w", err)
	}
	return nil
}

func (r *SQLiteTodoRepo) ListByNode(ctx context.Context, nodeID string) ([]domain.Todo, error) {
	query := `SELECT id, nodeId, text, completed FROM todos WHERE nodeId = ?`
	rows, err := r.db.QueryContext(ctx, query, nodeID)
	if err != nil {
		return nil, fmt.Errorf("listing todos by node: %w", err)
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		var t domain.Todo
		var completed int
		if err := rows.Scan(&t.ID, &t.NodeID, &t.Text, &completed); err != nil {
			return nil, fmt.Errorf("scanning todo: %w", err)
		}
		t.Completed = intToBool(completed)
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}
	return todos, nil
}

func (r *SQLiteTodoRepo) Update(ctx context.Context, t *domain.Todo) error {
	query := `UPDATE todos SET text = ?, completed = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, t.Text, boolToInt(t.Completed), t.ID)
	if err != nil {
		return fmt.Errorf("updating todo: %w", err)
	}
	return nil
}

func (r *SQLiteTodoRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}
	return nil
}

// DeleteByNode removes every todo owned by the given node. Runs before
// the node row itself is deleted; the engine does not cascade.
func (r *SQLiteTodoRepo) DeleteByNode(ctx context.Context, nodeID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE nodeId = ?`, nodeID); err != nil {
		return fmt.Errorf("deleting todos by node: %w", err)
	}
	return nil
}
