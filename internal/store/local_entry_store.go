package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/utils"
	"github.com/MKhiriev/go-daily-diary/models"
)

// localEntryStore is the single-user [EntryStore] persisting all entries as
// one JSON object under [entriesKey].
//
// Every save is a read-modify-write of that object, serialized by mu.
// Undecodable members are kept verbatim on save and skipped on read.
type localEntryStore struct {
	mu     sync.Mutex
	kv     keyValueStore
	ids    utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewLocalEntryStore constructs the local [EntryStore] over kv.
func NewLocalEntryStore(kv keyValueStore, ids utils.IDGenerator, logger *logger.Logger) EntryStore {
	logger.Debug().Msg("creating local entry store")
	return &localEntryStore{
		kv:     kv,
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
}

// loadRaw returns the stored mapping with undecoded members. A missing key
// is an empty mapping; an undecodable blob is [ErrCorruptedStorage].
func (s *localEntryStore) loadRaw() (map[string]json.RawMessage, error) {
	blob, err := readKey(s.kv, entriesKey)
	if err != nil {
		return nil, err
	}

	raw := make(map[string]json.RawMessage)
	if len(blob) == 0 {
		return raw, nil
	}
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedStorage, err)
	}
	if raw == nil {
		raw = make(map[string]json.RawMessage)
	}
	return raw, nil
}

// load decodes the stored mapping for reads. A corrupt blob is logged and
// read as empty; corrupt members are logged and skipped.
func (s *localEntryStore) load(ctx context.Context) map[string]models.DailyEntry {
	log := logger.FromContext(ctx)

	raw, err := s.loadRaw()
	if err != nil {
		log.Err(err).Str("func", "*localEntryStore.load").Msg("entries blob is unreadable, reading as empty")
		return map[string]models.DailyEntry{}
	}

	entries := make(map[string]models.DailyEntry, len(raw))
	for date, payload := range raw {
		entry, err := models.DecodeEntry(payload)
		if err != nil {
			log.Warn().Err(err).Str("func", "*localEntryStore.load").Str("date", date).Msg("skipping undecodable entry")
			continue
		}
		entries[date] = NormalizeEntry(entry, date, s.ids.Generate(), s.now())
	}
	return entries
}

func (s *localEntryStore) lookup(ctx context.Context, date string) Lookup {
	if entry, ok := s.load(ctx)[date]; ok {
		return Found(entry)
	}
	return Absent()
}

func (s *localEntryStore) GetEntryByDate(ctx context.Context, date string) (models.DailyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lookup(ctx, date).Resolve(date, s.ids.Generate(), s.now()), nil
}

func (s *localEntryStore) GetEntriesByDateRange(ctx context.Context, start, end string) ([]models.DailyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]models.DailyEntry, 0)
	for date, entry := range s.load(ctx) {
		if date >= start && date <= end {
			entries = append(entries, entry)
		}
	}
	sortByDate(entries)
	return entries, nil
}

func (s *localEntryStore) GetAllEntries(ctx context.Context) ([]models.DailyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.load(ctx)
	entries := make([]models.DailyEntry, 0, len(all))
	for _, entry := range all {
		entries = append(entries, entry)
	}
	sortByDate(entries)
	return entries, nil
}

func (s *localEntryStore) SaveEntry(ctx context.Context, entry models.DailyEntry) (models.DailyEntry, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.loadRaw()
	if err != nil {
		log.Err(err).Str("func", "*localEntryStore.SaveEntry").Msg("refusing to overwrite unreadable entries blob")
		return models.DailyEntry{}, err
	}

	// Saving a template for an existing date keeps the stored identity.
	if existing, ok := raw[entry.Date]; ok {
		if stored, err := models.DecodeEntry(existing); err == nil {
			if entry.ID == "" {
				entry.ID = stored.ID
			}
			if entry.CreatedAt.IsZero() {
				entry.CreatedAt = stored.CreatedAt
			}
		}
	}

	saved := NormalizeEntry(entry, entry.Date, s.ids.Generate(), s.now())
	saved.UserID = 0

	payload, err := json.Marshal(saved)
	if err != nil {
		return models.DailyEntry{}, fmt.Errorf("%w: %w", ErrEncodingEntry, err)
	}
	raw[saved.Date] = payload

	blob, err := json.Marshal(raw)
	if err != nil {
		return models.DailyEntry{}, fmt.Errorf("%w: %w", ErrEncodingEntry, err)
	}
	if err := s.kv.Write(entriesKey, blob); err != nil {
		log.Err(err).Str("func", "*localEntryStore.SaveEntry").Msg("error writing entries blob")
		return models.DailyEntry{}, fmt.Errorf("error writing entries: %w", err)
	}

	log.Debug().Str("func", "*localEntryStore.SaveEntry").Str("date", saved.Date).Msg("entry saved")
	return saved, nil
}

func sortByDate(entries []models.DailyEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
}
