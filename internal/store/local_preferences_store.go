package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/models"
)

type localPreferencesStore struct {
	mu sync.Mutex
	kv keyValueStore
}

// NewLocalPreferencesStore constructs the local [PreferencesStore] keeping
// preferences under [preferencesKey].
func NewLocalPreferencesStore(kv keyValueStore) PreferencesStore {
	return &localPreferencesStore{kv: kv}
}

// GetPreferences returns defaults when nothing is stored or the stored value
// is unreadable. Stored fields override the defaults one by one.
func (s *localPreferencesStore) GetPreferences(ctx context.Context) (models.StatisticsPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := models.DefaultStatisticsPreferences()
	data, err := readKey(s.kv, preferencesKey)
	if err != nil || len(data) == 0 {
		return prefs, nil
	}

	if err := json.Unmarshal(data, &prefs); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*localPreferencesStore.GetPreferences").Msg("stored preferences are unreadable, using defaults")
		return models.DefaultStatisticsPreferences(), nil
	}
	return prefs, nil
}

func (s *localPreferencesStore) SavePreferences(ctx context.Context, prefs models.StatisticsPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("error encoding preferences: %w", err)
	}
	if err := s.kv.Write(preferencesKey, data); err != nil {
		return fmt.Errorf("error writing preferences: %w", err)
	}
	return nil
}

func (s *localPreferencesStore) ResetPreferences(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.kv.Has(preferencesKey) {
		return nil
	}
	if err := s.kv.Erase(preferencesKey); err != nil {
		return fmt.Errorf("error erasing preferences: %w", err)
	}
	return nil
}
