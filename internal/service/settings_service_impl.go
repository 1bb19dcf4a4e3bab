package service

import (
	"context"
	"time"

	"github.com/mkoval/plotline/internal/domain"
	"github.com/mkoval/plotline/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
	observer UseCaseObserver
}

func NewSettingsService(settings repository.SettingsRepo, observers ...UseCaseObserver) SettingsService {
	return &settingsService{
		settings: settings,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Get returns the stored date range, or repository.ErrNotFound when no
// range was ever saved. Absence is a valid state, not a failure.
func (s *settingsService) Get(ctx context.Context) (*domain.TimelineSettings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Save(ctx context.Context, start, end time.Time) (*domain.TimelineSettings, error) {
	startedAt := time.Now()
	settings := &domain.TimelineSettings{StartDate: start, EndDate: end}
	err := s.settings.Upsert(ctx, settings)
	observe(ctx, s.observer, "settings.save", startedAt, err, nil)
	if err != nil {
		return nil, err
	}
	return settings, nil
}
