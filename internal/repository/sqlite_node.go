package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkoval/plotline/internal/domain"
)

// nodeColumns is the canonical SELECT column list for nodes.
const nodeColumns = `id, title, date, type, description, titleOffset`

// SQLiteNodeRepo implements NodeRepo using a SQLite database.
// It manages node rows only; todo population and the application-level
// cascade live in the service layer.
type SQLiteNodeRepo struct {
	db *sql.DB
}

// NewSQLiteNodeRepo creates a new SQLiteNodeRepo.
func NewSQLiteNodeRepo(db *sql.DB) *SQLiteNodeRepo {
	return &SQLiteNodeRepo{db: db}
}

func (r *SQLiteNodeRepo) Create(ctx context.Context, n *domain.Node) error {
	query := `INSERT INTO nodes (id, title, date, type, description, titleOffset)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		n.Title,
		n.Date,
		string(n.Type),
		n.Description,
		encodeOffset(n.TitleOffset),
	)
	if err != nil {
		return fmt.Errorf("inserting node: %w", err)
	}
	return nil
}

func (r *SQLiteNodeRepo) GetByID(ctx context.Context, id string) (*domain.Node, error) {
	query := `SELECT ` + nodeColumns + ` FROM nodes WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanNode(row)
}

func (r *SQLiteNodeRepo) List(ctx context.Context) ([]*domain.Node, error) {
	query := `SELECT ` + nodeColumns + ` FROM nodes`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing nodes: %w", err)
	}
	defer rows.Close()

	var nodes []*domain.Node
	for rows.Next() {
		n, err := scanNodeFields(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning node: %w", err)
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating nodes: %w", err)
	}
	return nodes, nil
}

func (r *SQLiteNodeRepo) Update(ctx context.Context, n *domain.Node) error {
	query := `UPDATE nodes SET title = ?, date = ?, type = ?, description = ?, titleOffset = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		n.Title,
		n.Date,
		string(n.Type),
		n.Description,
		encodeOffset(n.TitleOffset),
		n.ID,
	)
	if err != nil {
		return fmt.Errorf("updating node: %w", err)
	}
	return nil
}

func (r *SQLiteNodeRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM nodes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting node: %w", err)
	}
	return nil
}

func (r *SQLiteNodeRepo) scanNode(row *sql.Row) (*domain.Node, error) {
	n, err := scanNodeFields(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("node: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning node: %w", err)
	}
	return n, nil
}

func scanNodeFields(scan func(dest ...any) error) (*domain.Node, error) {
	var n domain.Node
	var typeStr string
	var description, offsetStr sql.NullString

	if err := scan(&n.ID, &n.Title, &n.Date, &typeStr, &description, &offsetStr); err != nil {
		return nil, err
	}

	n.Type = domain.NodeType(typeStr)
	n.Description = description.String
	n.TitleOffset = decodeOffset(offsetStr)
	return &n, nil
}
