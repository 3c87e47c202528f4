package detection

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-insights/internal/platform/metrics"
)

type mapCache struct {
	mu     sync.Mutex
	items  map[string]Detection
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newMapCache() *mapCache {
	return &mapCache{items: map[string]Detection{}, ttls: map[string]time.Duration{}}
}

func (c *mapCache) Get(ctx context.Context, key string) (Detection, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return Detection{}, false, c.getErr
	}
	d, ok := c.items[key]
	return d, ok, nil
}

func (c *mapCache) Set(ctx context.Context, key string, d Detection, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.items[key] = d
	c.ttls[key] = ttl
	return nil
}

type mapResolver map[string][]byte

func (m mapResolver) Resolve(ctx context.Context, ref string) ([]byte, error) {
	b, ok := m[ref]
	if !ok {
		return nil, errors.New("not found")
	}
	return b, nil
}

func TestService_DetectEnrichesAndCaches(t *testing.T) {
	prov := succeeding("vision", AnimalDog, "Labrador Retriever", 0.93)
	cache := newMapCache()
	svc := NewService(NewSelector([]Provider{prov}, NewHeuristic(fixedClock(9)), SelectorConfig{}), ServiceConfig{
		Cache:    cache,
		CacheTTL: time.Hour,
		Metrics:  metrics.New(),
	})

	data := pngBytes(t, 40, 30)
	d, err := svc.DetectBytes(context.Background(), data, "")
	require.NoError(t, err)

	assert.True(t, d.Success)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "vision", d.Source)
	require.NotNil(t, d.Enriched)
	assert.Equal(t, "Labrador Retriever", d.Enriched.Name)
	assert.Equal(t, "Canadá", d.Enriched.Origin)

	again, err := svc.DetectBytes(context.Background(), data, "")
	require.NoError(t, err)
	assert.Equal(t, d, again)
	assert.Equal(t, int32(1), prov.calls.Load())

	require.Len(t, cache.items, 1)
	for k, ttl := range cache.ttls {
		assert.Contains(t, k, "detection:")
		assert.Equal(t, time.Hour, ttl)
	}
}

func TestService_FallbackIsEnrichedWithCategoryEntry(t *testing.T) {
	svc := NewService(NewSelector([]Provider{failing("vision", errUpstream)}, NewHeuristic(fixedClock(22)), SelectorConfig{}), ServiceConfig{})

	d := svc.Detect(context.Background(), Image{Data: []byte("x"), Width: 800, Height: 800, Size: 400 * 1024})
	require.True(t, d.Success)
	assert.True(t, d.Fallback)
	assert.Equal(t, AnimalCat, d.AnimalType)
	require.NotNil(t, d.Enriched)
	assert.Equal(t, "Mestizo", d.Enriched.Name)
}

func TestService_UnsuccessfulIsNotCached(t *testing.T) {
	cache := newMapCache()
	svc := NewService(NewSelector([]Provider{failing("vision", errUpstream)}, nil, SelectorConfig{}), ServiceConfig{Cache: cache})

	d := svc.Detect(context.Background(), Image{Data: []byte("x"), Width: 10, Height: 10})
	assert.False(t, d.Success)
	assert.Nil(t, d.Enriched)
	assert.Empty(t, cache.items)
}

func TestService_CacheErrorsAreIgnored(t *testing.T) {
	cache := newMapCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewService(NewSelector([]Provider{succeeding("vision", AnimalCat, "Bengal", 0.8)}, nil, SelectorConfig{}), ServiceConfig{Cache: cache})

	d := svc.Detect(context.Background(), Image{Data: []byte("x"), Width: 10, Height: 10})
	assert.True(t, d.Success)
	assert.Equal(t, "Bengalí", d.Enriched.Name)
}

func TestService_DetectReference(t *testing.T) {
	data := pngBytes(t, 20, 20)
	svc := NewService(
		NewSelector([]Provider{succeeding("vision", AnimalBird, "Cockatiel", 0.7)}, nil, SelectorConfig{}),
		ServiceConfig{Resolver: mapResolver{"s3://pets/kiwi.png": data}},
	)

	d, err := svc.DetectReference(context.Background(), "s3://pets/kiwi.png")
	require.NoError(t, err)
	assert.Equal(t, "Ninfa", d.Enriched.Name)

	_, err = svc.DetectReference(context.Background(), "s3://pets/missing.png")
	assert.Error(t, err)

	noResolver := NewService(NewSelector(nil, nil, SelectorConfig{}), ServiceConfig{})
	_, err = noResolver.DetectReference(context.Background(), "https://example.com/a.png")
	assert.ErrorIs(t, err, ErrUnsupportedReference)
}

func TestService_FallbackIsNotCached(t *testing.T) {
	prov := failing("vision", errUpstream)
	cache := newMapCache()
	svc := NewService(NewSelector([]Provider{prov}, NewHeuristic(fixedClock(9)), SelectorConfig{}), ServiceConfig{
		Cache:    cache,
		CacheTTL: time.Hour,
	})
	data := pngBytes(t, 40, 30)

	first, err := svc.DetectBytes(context.Background(), data, "")
	require.NoError(t, err)
	require.True(t, first.Success)
	assert.True(t, first.Fallback)
	assert.Equal(t, SourceHeuristic, first.Source)
	assert.Empty(t, cache.items)

	// el proveedor se recupera: la siguiente consulta tiene que llegarle
	prov.err = nil
	prov.result = Result{Success: true, AnimalType: AnimalCat, Breed: "Persian", Confidence: 0.95, Source: "vision"}

	second, err := svc.DetectBytes(context.Background(), data, "")
	require.NoError(t, err)
	assert.False(t, second.Fallback)
	assert.Equal(t, "vision", second.Source)
	assert.Equal(t, AnimalCat, second.AnimalType)
	assert.Equal(t, "Persa", second.Enriched.Name)
	assert.Equal(t, int32(2), prov.calls.Load())
	assert.Len(t, cache.items, 1)
}

func TestService_DetectBytesRejectsOnlyEmptyPayload(t *testing.T) {
	svc := NewService(NewSelector(nil, NewHeuristic(nil), SelectorConfig{}), ServiceConfig{})
	_, err := svc.DetectBytes(context.Background(), nil, "")
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestService_UnmeasurableFormatsReachProviders(t *testing.T) {
	prov := succeeding("vision", AnimalDog, "Beagle", 0.88)
	svc := NewService(NewSelector([]Provider{prov}, NewHeuristic(fixedClock(9)), SelectorConfig{}), ServiceConfig{})

	d, err := svc.DetectBytes(context.Background(), heicBytes(), "")
	require.NoError(t, err)
	assert.True(t, d.Success)
	assert.Equal(t, "vision", d.Source)
	assert.Equal(t, int32(1), prov.calls.Load())

	// sin proveedores el heurístico no puede medir la imagen: éxito=false, no error
	onlyLocal := NewService(NewSelector([]Provider{failing("vision", errUpstream)}, NewHeuristic(fixedClock(9)), SelectorConfig{}), ServiceConfig{})
	d, err = onlyLocal.DetectBytes(context.Background(), heicBytes(), "")
	require.NoError(t, err)
	assert.False(t, d.Success)
}

func TestEnrich(t *testing.T) {
	d := Enrich(Result{Success: true, AnimalType: AnimalDog, Breed: "Xoloitzcuintle", Confidence: 0.7, Source: "x"})
	require.NotNil(t, d.Enriched)
	assert.Equal(t, "Mestizo", d.Enriched.Name)
	assert.Equal(t, "Xoloitzcuintle", d.Breed)

	assert.Equal(t, Unsuccessful(), Enrich(Result{}))
}
