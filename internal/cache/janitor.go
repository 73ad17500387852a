package cache

import (
	"context"
	"time"
)

// Evict removes entries not used within the retention window and returns
// how many were removed. A non-positive window disables eviction.
func (c *EntryCache) Evict(now time.Time) int {
	if c.gcTime <= 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	for key, it := range c.items {
		if now.Sub(it.lastUsed()) > c.gcTime {
			delete(c.items, key)
			evicted++
		}
	}
	return evicted
}

// Run starts the eviction sweep in the background. It stops when ctx is
// done. A non-positive janitor interval leaves the janitor off.
func (c *EntryCache) Run(ctx context.Context) {
	if c.interval <= 0 || c.gcTime <= 0 {
		return
	}

	c.background.Add(1)
	go func() {
		defer c.background.Done()
		t := time.NewTicker(c.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if n := c.Evict(c.now()); n > 0 {
					c.logger.Debug().Str("func", "*EntryCache.Run").Int("evicted", n).Msg("evicted cached entries")
				}
			}
		}
	}()
}
