package mapbox

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/storm-bulletin-etl/internal/domain"
	"github.com/couchcryptid/storm-bulletin-etl/internal/nws"
)

// --- mock for cache tests ---

type countingRenderer struct {
	calls int
	err   error
}

func (m *countingRenderer) RenderMap(_ context.Context, req domain.MapRequest) (domain.MapImage, error) {
	m.calls++
	if m.err != nil {
		return domain.MapImage{}, m.err
	}
	return domain.MapImage{ContentType: "image/png", Data: []byte(req.Color)}, nil
}

func testRequest(color string) domain.MapRequest {
	return domain.MapRequest{
		Geometry: nws.NewPolygon([]nws.Point{{-93.8, 41.6}, {-93.6, 41.7}, {-93.5, 41.5}}),
		Color:    color,
		Center:   [2]float64{41.6, -93.63},
		Zoom:     9,
	}
}

// --- CachedRenderer tests ---

func TestCachedRenderer_CacheHit(t *testing.T) {
	inner := &countingRenderer{}
	metrics := testMetrics()
	cached := NewCachedRenderer(inner, 10, metrics)

	img1, err := cached.RenderMap(context.Background(), testRequest("#FF0000"))
	require.NoError(t, err)
	img2, err := cached.RenderMap(context.Background(), testRequest("#FF0000"))
	require.NoError(t, err)

	assert.Equal(t, img1, img2)
	assert.Equal(t, 1, inner.calls, "should only call inner once")
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.MapRenderCache.WithLabelValues("hit")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.MapRenderCache.WithLabelValues("miss")), 0)
}

func TestCachedRenderer_DifferentRequestsMiss(t *testing.T) {
	inner := &countingRenderer{}
	cached := NewCachedRenderer(inner, 10, testMetrics())

	_, _ = cached.RenderMap(context.Background(), testRequest("#FF0000"))
	_, _ = cached.RenderMap(context.Background(), testRequest("#FFFF00"))

	assert.Equal(t, 2, inner.calls)
}

func TestCachedRenderer_ErrorsAreNotCached(t *testing.T) {
	inner := &countingRenderer{err: errors.New("boom")}
	cached := NewCachedRenderer(inner, 10, testMetrics())

	_, err := cached.RenderMap(context.Background(), testRequest("#FF0000"))
	require.Error(t, err)
	_, err = cached.RenderMap(context.Background(), testRequest("#FF0000"))
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls)
}

// --- LRU cache unit tests ---

func TestLRUCache_BasicGetPut(t *testing.T) {
	c := newLRUCache(3)

	c.put("a", domain.MapImage{ContentType: "A"})
	c.put("b", domain.MapImage{ContentType: "B"})

	result, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, "A", result.ContentType)

	_, ok = c.get("missing")
	assert.False(t, ok)
}

func TestLRUCache_Eviction(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", domain.MapImage{ContentType: "A"})
	c.put("b", domain.MapImage{ContentType: "B"})
	c.put("c", domain.MapImage{ContentType: "C"}) // evicts "a"

	_, ok := c.get("a")
	assert.False(t, ok, "a should have been evicted")

	result, ok := c.get("b")
	assert.True(t, ok)
	assert.Equal(t, "B", result.ContentType)

	result, ok = c.get("c")
	assert.True(t, ok)
	assert.Equal(t, "C", result.ContentType)
}

func TestLRUCache_AccessPromotesEntry(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", domain.MapImage{ContentType: "A"})
	c.put("b", domain.MapImage{ContentType: "B"})

	c.get("a")

	// "b" is now least recently used.
	c.put("c", domain.MapImage{ContentType: "C"})

	_, ok := c.get("b")
	assert.False(t, ok)
	_, ok = c.get("a")
	assert.True(t, ok)
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", domain.MapImage{ContentType: "old"})
	c.put("a", domain.MapImage{ContentType: "new"})

	result, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, "new", result.ContentType)
	assert.Len(t, c.entries, 1)
}
