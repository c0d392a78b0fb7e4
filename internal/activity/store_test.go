package activity

import (
	"testing"
	"time"

	"vitality/internal/kvstore"
	"vitality/internal/models"
)

func newTestStore() (*Store, *time.Time) {
	current := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	s := NewStore(kvstore.NewMemoryStore())
	s.now = func() time.Time { return current }
	return s, &current
}

func TestGet_FreshDayDefaults(t *testing.T) {
	s, _ := newTestStore()

	record, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if record.Date != "2024-03-10" {
		t.Errorf("Get().Date = %s, want 2024-03-10", record.Date)
	}
	if record.Steps != 0 {
		t.Errorf("Get().Steps = %d, want 0", record.Steps)
	}

	// Wellness scores reset to mid-scale baselines, not zeros.
	if record.SleepScore != 7 {
		t.Errorf("Get().SleepScore = %d, want 7", record.SleepScore)
	}
	if record.StressScore != 5 {
		t.Errorf("Get().StressScore = %d, want 5", record.StressScore)
	}
	if record.MoodScore != 7 {
		t.Errorf("Get().MoodScore = %d, want 7", record.MoodScore)
	}
	if record.SorenessScore != 3 {
		t.Errorf("Get().SorenessScore = %d, want 3", record.SorenessScore)
	}
}

func TestIncrement_Sequential(t *testing.T) {
	s, _ := newTestStore()

	if _, err := s.Increment(FieldSteps, 500); err != nil {
		t.Fatalf("Increment() error = %v", err)
	}
	record, err := s.Increment(FieldSteps, 500)
	if err != nil {
		t.Fatalf("Increment() error = %v", err)
	}

	if record.Steps != 1000 {
		t.Errorf("Steps after two increments = %d, want 1000", record.Steps)
	}
}

func TestIncrement_UnknownField(t *testing.T) {
	s, _ := newTestStore()

	if _, err := s.Increment("heartRate", 10); err == nil {
		t.Error("Increment() expected error for unknown field, got nil")
	}
}

func TestIncrement_FloatField(t *testing.T) {
	s, _ := newTestStore()

	record, err := s.Increment(FieldCaloriesBurned, 120.5)
	if err != nil {
		t.Fatalf("Increment() error = %v", err)
	}
	if record.CaloriesBurned != 120.5 {
		t.Errorf("CaloriesBurned = %v, want 120.5", record.CaloriesBurned)
	}
}

func TestRollover_ResetsRecord(t *testing.T) {
	s, current := newTestStore()

	s.Increment(FieldSteps, 4000)
	s.Increment(FieldHydrationGlasses, 3)

	// Next local day.
	*current = current.Add(24 * time.Hour)

	record, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if record.Date != "2024-03-11" {
		t.Errorf("Get().Date = %s, want 2024-03-11", record.Date)
	}
	if record.Steps != 0 {
		t.Errorf("Steps after rollover = %d, want 0", record.Steps)
	}
	if record.HydrationGlasses != 0 {
		t.Errorf("HydrationGlasses after rollover = %d, want 0", record.HydrationGlasses)
	}
	if record.SleepScore != 7 || record.StressScore != 5 {
		t.Error("wellness baselines not restored after rollover")
	}
}

func TestRollover_PersistsReplacementOnRead(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	current := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	s := NewStore(kv)
	s.now = func() time.Time { return current }

	s.Increment(FieldSteps, 100)
	current = current.Add(24 * time.Hour)
	s.Get()

	// The replacement must already be in storage, not just in memory.
	var stored models.DailyActivity
	found, _ := kv.Get(kvstore.KeyActivity, &stored)
	if !found {
		t.Fatal("no activity record persisted after rollover read")
	}
	if stored.Date != "2024-03-11" || stored.Steps != 0 {
		t.Errorf("persisted record = %+v, want fresh 2024-03-11 record", stored)
	}
}

func TestUpdate_MergesPartialFields(t *testing.T) {
	s, _ := newTestStore()

	steps := 2500
	sleep := 9
	record, err := s.Update(Update{Steps: &steps, SleepScore: &sleep})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if record.Steps != 2500 {
		t.Errorf("Steps = %d, want 2500", record.Steps)
	}
	if record.SleepScore != 9 {
		t.Errorf("SleepScore = %d, want 9", record.SleepScore)
	}
	// Untouched fields keep their values.
	if record.StressScore != 5 {
		t.Errorf("StressScore = %d, want untouched 5", record.StressScore)
	}
}

func TestBroadcast_DeliversFullRecordToSubscribers(t *testing.T) {
	s, _ := newTestStore()

	var firstSeen, secondSeen []models.DailyActivity
	s.Subscribe(func(r models.DailyActivity) { firstSeen = append(firstSeen, r) })
	s.Subscribe(func(r models.DailyActivity) { secondSeen = append(secondSeen, r) })

	s.Increment(FieldSteps, 750)

	if len(firstSeen) != 1 || len(secondSeen) != 1 {
		t.Fatalf("broadcast counts = %d/%d, want 1/1", len(firstSeen), len(secondSeen))
	}
	if firstSeen[0].Steps != 750 {
		t.Errorf("broadcast record Steps = %d, want 750", firstSeen[0].Steps)
	}
}

func TestBroadcast_UnsubscribeStopsDelivery(t *testing.T) {
	s, _ := newTestStore()

	count := 0
	unsubscribe := s.Subscribe(func(models.DailyActivity) { count++ })

	s.Increment(FieldSteps, 100)
	unsubscribe()
	s.Increment(FieldSteps, 100)

	if count != 1 {
		t.Errorf("subscriber called %d times, want 1", count)
	}
}

func TestGet_DoesNotBroadcast(t *testing.T) {
	s, _ := newTestStore()

	count := 0
	s.Subscribe(func(models.DailyActivity) { count++ })

	s.Get()
	s.Get()

	if count != 0 {
		t.Errorf("Get() broadcast %d times, want 0 (reads are silent)", count)
	}
}
