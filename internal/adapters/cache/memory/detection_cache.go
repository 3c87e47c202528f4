package memory

import (
	"context"
	"sync"
	"time"

	"pet-care-insights/internal/domain/detection"
)

// DetectionCache es el cache en proceso, para dev y tests.
type DetectionCache struct {
	mu    sync.RWMutex
	items map[string]entry
	now   func() time.Time
}

type entry struct {
	d       detection.Detection
	expires time.Time // zero = sin expiración
}

func NewDetectionCache() *DetectionCache {
	return &DetectionCache{
		items: make(map[string]entry),
		now:   time.Now,
	}
}

func (c *DetectionCache) Get(ctx context.Context, key string) (detection.Detection, bool, error) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return detection.Detection{}, false, nil
	}
	if !e.expires.IsZero() && !c.now().Before(e.expires) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return detection.Detection{}, false, nil
	}
	return e.d, true, nil
}

func (c *DetectionCache) Set(ctx context.Context, key string, d detection.Detection, ttl time.Duration) error {
	e := entry{d: d}
	if ttl > 0 {
		e.expires = c.now().Add(ttl)
	}
	c.mu.Lock()
	c.items[key] = e
	c.mu.Unlock()
	return nil
}

func (c *DetectionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
