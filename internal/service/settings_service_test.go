package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/mkoval/plotline/internal/repository"
	"github.com/mkoval/plotline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_Get_AbsentIsNotFound(t *testing.T) {
	svc := NewSettingsService(repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t)))
	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSettingsService_SaveThenGet(t *testing.T) {
	svc := NewSettingsService(repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t)))
	ctx := context.Background()

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	saved, err := svc.Save(ctx, start, end)
	require.NoError(t, err)
	assert.True(t, saved.StartDate.Equal(start))
	assert.True(t, saved.EndDate.Equal(end))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, got.StartDate.Equal(start))
	assert.True(t, got.EndDate.Equal(end))
}

func TestSettingsService_ObserverRecordsSave(t *testing.T) {
	var buf bytes.Buffer
	svc := NewSettingsService(
		repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t)),
		NewLogUseCaseObserver(&buf),
	)

	_, err := svc.Save(context.Background(), time.Now(), time.Now().AddDate(0, 6, 0))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "settings.save")
	assert.Contains(t, buf.String(), "success=true")
}
