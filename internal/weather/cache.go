package weather

import (
	"log"
	"time"

	"vitality/internal/kvstore"
	"vitality/internal/metrics"
	"vitality/internal/models"
)

// CachedProvider wraps a Provider with a TTL cache in the key-value
// store. A provider failure degrades to the fallback reading; the
// fallback is not cached, so the next call retries the provider.
type CachedProvider struct {
	provider Provider
	store    kvstore.Store
	ttl      time.Duration
}

// NewCachedProvider creates a cache with the given TTL over provider.
func NewCachedProvider(provider Provider, store kvstore.Store, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		store:    store,
		ttl:      ttl,
	}
}

// Current returns the cached reading when fresh, otherwise fetches,
// caches and returns a new one.
func (p *CachedProvider) Current() (models.WeatherReading, error) {
	var cached models.WeatherReading
	found, err := p.store.Get(kvstore.KeyWeatherCache, &cached)
	if err != nil {
		log.Printf("Failed to read weather cache: %v", err)
	}
	if found {
		metrics.RecordWeatherFetch("cache")
		return cached, nil
	}

	return p.Refresh()
}

// Refresh bypasses the cache, fetches a fresh reading and stores it.
// On provider failure it returns the fallback reading and a nil error:
// callers always get a usable reading.
func (p *CachedProvider) Refresh() (models.WeatherReading, error) {
	reading, err := p.provider.Current()
	if err != nil {
		log.Printf("Weather fetch failed, using fallback reading: %v", err)
		metrics.RecordWeatherFetch("fallback")
		return FallbackReading(), nil
	}

	if err := p.store.SetTTL(kvstore.KeyWeatherCache, reading, p.ttl); err != nil {
		log.Printf("Failed to cache weather reading: %v", err)
	}

	metrics.RecordWeatherFetch("provider")
	return reading, nil
}

// Invalidate drops the cached reading.
func (p *CachedProvider) Invalidate() {
	if err := p.store.Delete(kvstore.KeyWeatherCache); err != nil {
		log.Printf("Failed to invalidate weather cache: %v", err)
	}
}
