package kvstore

import (
	"testing"
	"time"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStore_SetGet(t *testing.T) {
	s := NewMemoryStore()

	if err := s.Set("activity", payload{Name: "steps", Count: 500}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got payload
	found, err := s.Get("activity", &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("Get() found = false, want true")
	}
	if got.Name != "steps" || got.Count != 500 {
		t.Errorf("Get() = %+v, want {steps 500}", got)
	}
}

func TestMemoryStore_GetMissingKey(t *testing.T) {
	s := NewMemoryStore()

	var got payload
	found, err := s.Get("missing", &got)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Get() found = true for missing key, want false")
	}
}

func TestMemoryStore_Overwrite(t *testing.T) {
	s := NewMemoryStore()

	s.Set("pantry", []string{"rice"})
	s.Set("pantry", []string{"rice", "egg"})

	var got []string
	found, _ := s.Get("pantry", &got)
	if !found {
		t.Fatal("Get() found = false, want true")
	}
	if len(got) != 2 {
		t.Errorf("Get() returned %d items, want 2", len(got))
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()

	s.Set("weatherCache", payload{Name: "hot"})
	if err := s.Delete("weatherCache"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var got payload
	found, _ := s.Get("weatherCache", &got)
	if found {
		t.Error("Get() found = true after delete, want false")
	}

	// Deleting an absent key must not error.
	if err := s.Delete("weatherCache"); err != nil {
		t.Errorf("Delete() on absent key error = %v", err)
	}
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	s := NewMemoryStore()

	current := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	if err := s.SetTTL("weatherCache", payload{Name: "cloudy"}, 30*time.Minute); err != nil {
		t.Fatalf("SetTTL() error = %v", err)
	}

	var got payload
	found, _ := s.Get("weatherCache", &got)
	if !found {
		t.Fatal("Get() found = false before expiry, want true")
	}

	current = current.Add(31 * time.Minute)

	found, _ = s.Get("weatherCache", &got)
	if found {
		t.Error("Get() found = true after expiry, want false")
	}
}

func TestMemoryStore_ZeroTTLNeverExpires(t *testing.T) {
	s := NewMemoryStore()

	current := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	s.SetTTL("activity", payload{Name: "steps"}, 0)

	current = current.Add(1000 * time.Hour)

	var got payload
	found, _ := s.Get("activity", &got)
	if !found {
		t.Error("Get() found = false for zero-TTL key, want true")
	}
}
