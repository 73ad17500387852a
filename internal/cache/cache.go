// Package cache keeps recently used diary entries in memory, keyed by user
// and date.
//
// EntryCache is an [store.EntryStore] decorator. Reads of a date are served
// from memory; a stale entry is returned as is and refreshed in the
// background. Saves go to the underlying store and replace the cached value.
// Range and full reads are not cached.
package cache

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-daily-diary/internal/config"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/store"
	"github.com/MKhiriev/go-daily-diary/internal/utils"
	"github.com/MKhiriev/go-daily-diary/models"
	"golang.org/x/sync/singleflight"
)

// backgroundTimeout bounds a single background refresh or prefetch.
const backgroundTimeout = 10 * time.Second

type cacheKey struct {
	userID int64
	date   string
}

func (k cacheKey) String() string {
	return strconv.FormatInt(k.userID, 10) + "/" + k.date
}

type item struct {
	entry     models.DailyEntry
	fetchedAt time.Time
	usedAt    atomic.Int64
}

func (i *item) touch(now time.Time) {
	i.usedAt.Store(now.UnixNano())
}

func (i *item) lastUsed() time.Time {
	return time.Unix(0, i.usedAt.Load())
}

// EntryCache caches GetEntryByDate results of the wrapped store.
type EntryCache struct {
	next      store.EntryStore
	staleTime time.Duration
	gcTime    time.Duration
	interval  time.Duration
	now       func() time.Time
	logger    *logger.Logger

	mu    sync.RWMutex
	items map[cacheKey]*item

	group      singleflight.Group
	background sync.WaitGroup
}

var _ store.EntryStore = (*EntryCache)(nil)

// New wraps next with a cache configured by cfg.
func New(next store.EntryStore, cfg config.Cache, log *logger.Logger) *EntryCache {
	return &EntryCache{
		next:      next,
		staleTime: cfg.StaleTime,
		gcTime:    cfg.GCTime,
		interval:  cfg.JanitorInterval,
		now:       time.Now,
		logger:    log,
		items:     make(map[cacheKey]*item),
	}
}

func keyFor(ctx context.Context, date string) cacheKey {
	userID, _ := utils.GetUserIDFromContext(ctx)
	return cacheKey{userID: userID, date: date}
}

// GetEntryByDate returns the cached entry for date, loading it on a miss.
func (c *EntryCache) GetEntryByDate(ctx context.Context, date string) (models.DailyEntry, error) {
	key := keyFor(ctx, date)

	c.mu.RLock()
	cached, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return c.load(ctx, key)
	}

	now := c.now()
	cached.touch(now)
	if now.Sub(cached.fetchedAt) >= c.staleTime {
		c.revalidate(ctx, key)
	}
	return cached.entry, nil
}

// GetEntriesByDateRange is not cached.
func (c *EntryCache) GetEntriesByDateRange(ctx context.Context, start, end string) ([]models.DailyEntry, error) {
	return c.next.GetEntriesByDateRange(ctx, start, end)
}

// GetAllEntries is not cached.
func (c *EntryCache) GetAllEntries(ctx context.Context) ([]models.DailyEntry, error) {
	return c.next.GetAllEntries(ctx)
}

// SaveEntry persists entry and replaces its cached value with the result.
func (c *EntryCache) SaveEntry(ctx context.Context, entry models.DailyEntry) (models.DailyEntry, error) {
	saved, err := c.next.SaveEntry(ctx, entry)
	if err != nil {
		return models.DailyEntry{}, err
	}

	c.mu.Lock()
	c.set(keyFor(ctx, saved.Date), saved)
	c.mu.Unlock()
	return saved, nil
}

// Prefetch loads the days before and after date in the background unless
// they are already cached.
func (c *EntryCache) Prefetch(ctx context.Context, date string) {
	prev, next, err := utils.AdjacentDates(date)
	if err != nil {
		c.logger.Err(err).Str("func", "*EntryCache.Prefetch").Str("date", date).Msg("cannot prefetch around invalid date")
		return
	}

	for _, adjacent := range []string{prev, next} {
		key := keyFor(ctx, adjacent)
		if c.contains(key) {
			continue
		}
		c.revalidate(ctx, key)
	}
}

// Len returns the number of cached entries.
func (c *EntryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Wait blocks until background refreshes and the janitor have finished.
func (c *EntryCache) Wait() {
	c.background.Wait()
}

func (c *EntryCache) contains(key cacheKey) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.items[key]
	return ok
}

// load fetches key from the underlying store. Concurrent loads of one key
// share a single store call.
func (c *EntryCache) load(ctx context.Context, key cacheKey) (models.DailyEntry, error) {
	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		started := c.now()
		entry, err := c.next.GetEntryByDate(ctx, key.date)
		if err != nil {
			return models.DailyEntry{}, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		// a save that finished while we were reading wins
		if cur, ok := c.items[key]; ok && cur.fetchedAt.After(started) {
			return cur.entry, nil
		}
		c.set(key, entry)
		return entry, nil
	})
	if err != nil {
		return models.DailyEntry{}, err
	}
	return v.(models.DailyEntry), nil
}

// revalidate reloads key detached from the caller's cancellation.
func (c *EntryCache) revalidate(ctx context.Context, key cacheKey) {
	c.background.Add(1)
	go func() {
		defer c.background.Done()

		bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), backgroundTimeout)
		defer cancel()

		if _, err := c.load(bgCtx, key); err != nil {
			c.logger.Err(err).Str("func", "*EntryCache.revalidate").Str("key", key.String()).Msg("background refresh failed")
		}
	}()
}

// set stores entry under key. The caller holds c.mu.
func (c *EntryCache) set(key cacheKey, entry models.DailyEntry) {
	now := c.now()
	it := &item{entry: entry, fetchedAt: now}
	it.touch(now)
	c.items[key] = it
}
