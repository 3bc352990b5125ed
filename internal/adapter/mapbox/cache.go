package mapbox

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/couchcryptid/storm-bulletin-etl/internal/domain"
	"github.com/couchcryptid/storm-bulletin-etl/internal/observability"
)

// CachedRenderer wraps a MapRenderer with an in-memory LRU cache keyed by the
// request contents. Updates to an alert usually reuse the same polygon.
type CachedRenderer struct {
	inner   domain.MapRenderer
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedRenderer creates a cache decorator around a renderer.
func NewCachedRenderer(inner domain.MapRenderer, maxEntries int, metrics *observability.Metrics) *CachedRenderer {
	return &CachedRenderer{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedRenderer) RenderMap(ctx context.Context, req domain.MapRequest) (domain.MapImage, error) {
	key, ok := cacheKey(req)
	if !ok {
		return c.inner.RenderMap(ctx, req)
	}
	if img, ok := c.cache.get(key); ok {
		c.metrics.MapRenderCache.WithLabelValues("hit").Inc()
		return img, nil
	}
	c.metrics.MapRenderCache.WithLabelValues("miss").Inc()

	img, err := c.inner.RenderMap(ctx, req)
	if err != nil {
		return img, err
	}
	c.cache.put(key, img)
	return img, nil
}

// cacheKey hashes the request so large polygons do not bloat the key set.
func cacheKey(req domain.MapRequest) (string, bool) {
	b, err := json.Marshal(struct {
		Geometry any
		Color    string
		Center   [2]float64
		Zoom     int
	}{req.Geometry, req.Color, req.Center, req.Zoom})
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), true
}

// lruCache is a simple thread-safe LRU cache of rendered images.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value domain.MapImage
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.MapImage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.MapImage{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.MapImage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
