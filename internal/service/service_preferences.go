package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/store"
	"github.com/MKhiriev/go-daily-diary/models"
)

type preferencesService struct {
	preferencesStore store.PreferencesStore
	logger           *logger.Logger
}

func NewPreferencesService(preferencesStore store.PreferencesStore, logger *logger.Logger) PreferencesService {
	return &preferencesService{preferencesStore: preferencesStore, logger: logger}
}

func (s *preferencesService) GetPreferences(ctx context.Context) (models.StatisticsPreferences, error) {
	prefs, err := s.preferencesStore.GetPreferences(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*preferencesService.GetPreferences").Msg("error loading preferences")
		return models.StatisticsPreferences{}, fmt.Errorf("error loading preferences: %w", err)
	}
	return prefs, nil
}

// UpdatePreferences merges update over the stored preferences and saves the
// result.
func (s *preferencesService) UpdatePreferences(ctx context.Context, update models.StatisticsPreferencesUpdate) (models.StatisticsPreferences, error) {
	current, err := s.GetPreferences(ctx)
	if err != nil {
		return models.StatisticsPreferences{}, err
	}

	merged := update.Apply(current)
	if err := s.preferencesStore.SavePreferences(ctx, merged); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*preferencesService.UpdatePreferences").Msg("error saving preferences")
		return models.StatisticsPreferences{}, fmt.Errorf("error saving preferences: %w", err)
	}
	return merged, nil
}

// ResetPreferences drops stored preferences and returns the defaults.
func (s *preferencesService) ResetPreferences(ctx context.Context) (models.StatisticsPreferences, error) {
	if err := s.preferencesStore.ResetPreferences(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*preferencesService.ResetPreferences").Msg("error resetting preferences")
		return models.StatisticsPreferences{}, fmt.Errorf("error resetting preferences: %w", err)
	}
	return models.DefaultStatisticsPreferences(), nil
}
