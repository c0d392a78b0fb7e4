package activity

import (
	"fmt"
	"time"

	"vitality/internal/bus"
	"vitality/internal/kvstore"
	"vitality/internal/metrics"
	"vitality/internal/models"
)

// Rollover baselines. Sleep/stress/mood/soreness reset to mid-scale
// values rather than zero so a fresh day reads as "average", matching
// product behavior the recommenders were tuned against.
const (
	defaultSleepScore    = 7
	defaultStressScore   = 5
	defaultMoodScore     = 7
	defaultSorenessScore = 3
)

const dateLayout = "2006-01-02"

// Numeric field names accepted by Increment.
const (
	FieldSteps             = "steps"
	FieldCaloriesBurned    = "caloriesBurned"
	FieldActiveMinutes     = "activeMinutes"
	FieldHydrationGlasses  = "hydrationGlasses"
	FieldWorkoutsCompleted = "workoutsCompleted"
)

// Update carries a partial-field merge; nil fields are left unchanged.
type Update struct {
	Steps             *int     `json:"steps"`
	CaloriesBurned    *float64 `json:"calories_burned"`
	ActiveMinutes     *int     `json:"active_minutes"`
	HydrationGlasses  *int     `json:"hydration_glasses"`
	WorkoutsCompleted *int     `json:"workouts_completed"`
	SleepScore        *int     `json:"sleep_score"`
	StressScore       *int     `json:"stress_score"`
	MoodScore         *int     `json:"mood_score"`
	SorenessScore     *int     `json:"soreness_score"`
}

// Store holds the single live per-day activity record. Exactly one
// record exists in storage at a time; when the stored date no longer
// matches today the record is replaced with a fresh baseline and
// yesterday's values are gone (historical persistence is out of
// scope). Every mutation persists first, then broadcasts the full
// record to subscribers synchronously in registration order.
//
// The store assumes a single writer per process. Multiple processes
// sharing one backing store are only eventually consistent; that is a
// documented limitation, not something this store locks around.
type Store struct {
	kv        kvstore.Store
	broadcast *bus.Bus[models.DailyActivity]

	now func() time.Time
}

// NewStore creates an activity store over the given persistence
// backend.
func NewStore(kv kvstore.Store) *Store {
	return &Store{
		kv:        kv,
		broadcast: bus.New[models.DailyActivity](),
		now:       time.Now,
	}
}

func (s *Store) today() string {
	return s.now().Format(dateLayout)
}

func freshRecord(date string) models.DailyActivity {
	return models.DailyActivity{
		Date:          date,
		SleepScore:    defaultSleepScore,
		StressScore:   defaultStressScore,
		MoodScore:     defaultMoodScore,
		SorenessScore: defaultSorenessScore,
	}
}

// Get returns today's record, creating or rolling it over as needed.
// The rollover replacement is persisted before it is returned.
func (s *Store) Get() (models.DailyActivity, error) {
	today := s.today()

	var record models.DailyActivity
	found, err := s.kv.Get(kvstore.KeyActivity, &record)
	if err != nil {
		return models.DailyActivity{}, fmt.Errorf("failed to read activity record: %w", err)
	}

	if found && record.Date == today {
		return record, nil
	}

	if found {
		metrics.ActivityRolloversTotal.Inc()
	}

	record = freshRecord(today)
	if err := s.kv.Set(kvstore.KeyActivity, record); err != nil {
		return models.DailyActivity{}, fmt.Errorf("failed to persist rollover record: %w", err)
	}
	return record, nil
}

// Update merges the non-nil fields into today's record, persists and
// broadcasts the result.
func (s *Store) Update(update Update) (models.DailyActivity, error) {
	record, err := s.Get()
	if err != nil {
		return models.DailyActivity{}, err
	}

	if update.Steps != nil {
		record.Steps = *update.Steps
	}
	if update.CaloriesBurned != nil {
		record.CaloriesBurned = *update.CaloriesBurned
	}
	if update.ActiveMinutes != nil {
		record.ActiveMinutes = *update.ActiveMinutes
	}
	if update.HydrationGlasses != nil {
		record.HydrationGlasses = *update.HydrationGlasses
	}
	if update.WorkoutsCompleted != nil {
		record.WorkoutsCompleted = *update.WorkoutsCompleted
	}
	if update.SleepScore != nil {
		record.SleepScore = *update.SleepScore
	}
	if update.StressScore != nil {
		record.StressScore = *update.StressScore
	}
	if update.MoodScore != nil {
		record.MoodScore = *update.MoodScore
	}
	if update.SorenessScore != nil {
		record.SorenessScore = *update.SorenessScore
	}
	record.Date = s.today()

	return s.persistAndBroadcast(record)
}

// Increment adds delta to one numeric field. It re-reads the current
// record first, so sequential increments never go through a stale
// snapshot.
func (s *Store) Increment(field string, delta float64) (models.DailyActivity, error) {
	record, err := s.Get()
	if err != nil {
		return models.DailyActivity{}, err
	}

	switch field {
	case FieldSteps:
		record.Steps += int(delta)
	case FieldCaloriesBurned:
		record.CaloriesBurned += delta
	case FieldActiveMinutes:
		record.ActiveMinutes += int(delta)
	case FieldHydrationGlasses:
		record.HydrationGlasses += int(delta)
	case FieldWorkoutsCompleted:
		record.WorkoutsCompleted += int(delta)
	default:
		return models.DailyActivity{}, fmt.Errorf("unknown activity field: %s", field)
	}

	return s.persistAndBroadcast(record)
}

func (s *Store) persistAndBroadcast(record models.DailyActivity) (models.DailyActivity, error) {
	if err := s.kv.Set(kvstore.KeyActivity, record); err != nil {
		return models.DailyActivity{}, fmt.Errorf("failed to persist activity record: %w", err)
	}

	s.broadcast.Publish(record)
	metrics.ActivityBroadcastsTotal.Inc()
	return record, nil
}

// Subscribe registers callback for every broadcast record and returns
// an unsubscribe function.
func (s *Store) Subscribe(callback func(models.DailyActivity)) func() {
	return s.broadcast.Subscribe(callback)
}
