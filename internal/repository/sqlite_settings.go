package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mkoval/plotline/internal/db"
	"github.com/mkoval/plotline/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
// timeline_settings holds at most one row, keyed by domain.SettingsID.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.TimelineSettings, error) {
	query := `SELECT startDate, endDate FROM timeline_settings WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, domain.SettingsID)

	var startStr, endStr string
	if err := row.Scan(&startStr, &endStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("timeline settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning timeline settings: %w", err)
	}

	start, err := parseStoredDate(startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing start date: %w", err)
	}
	end, err := parseStoredDate(endStr)
	if err != nil {
		return nil, fmt.Errorf("parsing end date: %w", err)
	}
	return &domain.TimelineSettings{StartDate: start, EndDate: end}, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.TimelineSettings) error {
	query := `INSERT OR REPLACE INTO timeline_settings (id, startDate, endDate) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		domain.SettingsID,
		s.StartDate.UTC().Format(time.RFC3339),
		s.EndDate.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting timeline settings: %w", err)
	}
	return nil
}

// parseStoredDate accepts the RFC3339 form this layer writes as well as
// bare dates left behind by hand edits.
func parseStoredDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
