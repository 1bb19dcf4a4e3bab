package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mkoval/plotline/internal/domain"
	"github.com/mkoval/plotline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_Get_NotFound(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	_, err := repo.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSettingsRepo_UpsertAndGet(t *testing.T) {
	repo := NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, &domain.TimelineSettings{StartDate: start, EndDate: end}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, got.StartDate.Equal(start))
	assert.True(t, got.EndDate.Equal(end))
}

func TestSettingsRepo_Upsert_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)
	ctx := context.Background()

	s := &domain.TimelineSettings{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Upsert(ctx, s))
	require.NoError(t, repo.Upsert(ctx, s))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM timeline_settings`).Scan(&count))
	assert.Equal(t, 1, count, "upserting twice must leave exactly one settings row")
}

func TestSettingsRepo_Get_BareDateForm(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)

	_, err := db.Exec(
		`INSERT INTO timeline_settings (id, startDate, endDate) VALUES ('default', '2024-03-01', '2024-09-01')`)
	require.NoError(t, err)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2024, got.StartDate.Year())
	assert.Equal(t, time.March, got.StartDate.Month())
}
