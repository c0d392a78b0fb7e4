package weather

import (
	"fmt"
	"testing"
	"time"

	"vitality/internal/kvstore"
	"vitality/internal/models"
)

type stubProvider struct {
	reading models.WeatherReading
	err     error
	calls   int
}

func (p *stubProvider) Current() (models.WeatherReading, error) {
	p.calls++
	return p.reading, p.err
}

func TestCachedProvider_FetchesAndCaches(t *testing.T) {
	provider := &stubProvider{
		reading: models.WeatherReading{Temperature: 32, Humidity: 50, Condition: "Clear"},
	}
	cached := NewCachedProvider(provider, kvstore.NewMemoryStore(), 30*time.Minute)

	first, err := cached.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if first.Temperature != 32 {
		t.Errorf("Current().Temperature = %v, want 32", first.Temperature)
	}

	second, err := cached.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if second.Temperature != 32 {
		t.Errorf("Current().Temperature = %v, want 32", second.Temperature)
	}

	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1 (second call should hit cache)", provider.calls)
	}
}

func TestCachedProvider_ExpiredEntryRefetches(t *testing.T) {
	provider := &stubProvider{
		reading: models.WeatherReading{Temperature: 20, Humidity: 50, Condition: "Clear"},
	}
	store := kvstore.NewMemoryStore()
	cached := NewCachedProvider(provider, store, time.Nanosecond)

	cached.Current()
	time.Sleep(time.Millisecond)
	cached.Current()

	if provider.calls != 2 {
		t.Errorf("provider called %d times, want 2 after TTL expiry", provider.calls)
	}
}

func TestCachedProvider_FallbackOnFailure(t *testing.T) {
	provider := &stubProvider{err: fmt.Errorf("connection refused")}
	cached := NewCachedProvider(provider, kvstore.NewMemoryStore(), 30*time.Minute)

	reading, err := cached.Current()
	if err != nil {
		t.Fatalf("Current() error = %v, want nil (degrade to fallback)", err)
	}

	if reading.Temperature != 25 || reading.Condition != "Cloudy" {
		t.Errorf("Current() = %+v, want fallback reading", reading)
	}

	// The fallback is not cached: the next call retries the provider.
	cached.Current()
	if provider.calls != 2 {
		t.Errorf("provider called %d times, want 2 (fallback must not be cached)", provider.calls)
	}
}

func TestCachedProvider_Invalidate(t *testing.T) {
	provider := &stubProvider{
		reading: models.WeatherReading{Temperature: 20, Humidity: 50, Condition: "Clear"},
	}
	cached := NewCachedProvider(provider, kvstore.NewMemoryStore(), 30*time.Minute)

	cached.Current()
	cached.Invalidate()
	cached.Current()

	if provider.calls != 2 {
		t.Errorf("provider called %d times, want 2 after invalidation", provider.calls)
	}
}
