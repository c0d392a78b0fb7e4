package kvstore

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Logical keys owned by the core. Each maps to one JSON blob in the
// backing store.
const (
	KeyActivity     = "activity"
	KeySchedule     = "notificationSchedule"
	KeyLedger       = "lastNotificationLedger"
	KeyPantry       = "pantry"
	KeySavedMeals   = "savedMealIds"
	KeyWeatherCache = "weatherCache"
)

// Store is the persistence collaborator: synchronous get/set of
// JSON-serializable blobs scoped per logical key. Durable-enough local
// storage; no schema migration.
type Store interface {
	// Get unmarshals the blob stored under key into the value pointed
	// to by into. It returns false when the key is absent or expired.
	Get(key string, into interface{}) (bool, error)
	// Set stores value under key with no expiry.
	Set(key string, value interface{}) error
	// SetTTL stores value under key, expiring after ttl.
	SetTTL(key string, value interface{}, ttl time.Duration) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time // zero means no expiry
}

// MemoryStore is an in-process Store, used in tests and as the
// fallback when Redis is unavailable.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry

	now func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(key string, into interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return false, nil
	}

	if !entry.expiresAt.IsZero() && s.now().After(entry.expiresAt) {
		delete(s.entries, key)
		return false, nil
	}

	if err := json.Unmarshal(entry.data, into); err != nil {
		return false, fmt.Errorf("failed to decode value for key %s: %w", key, err)
	}
	return true, nil
}

func (s *MemoryStore) Set(key string, value interface{}) error {
	return s.SetTTL(key, value, 0)
}

func (s *MemoryStore) SetTTL(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %s: %w", key, err)
	}

	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}
