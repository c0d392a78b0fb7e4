package notifier

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"vitality/internal/kvstore"
	"vitality/internal/metrics"
	"vitality/internal/models"
	"vitality/internal/weather"
)

// Notification kinds tracked in the last-sent ledger.
const (
	KindWater = "water"
	KindMeal  = "meal"
)

const dateLayout = "2006-01-02"

// Notifier is the delivery collaborator. The scheduler never talks to
// an OS or browser notification API directly.
type Notifier interface {
	RequestPermission() bool
	Show(title, body string) error
}

var waterMessages = []string{
	"Time for a glass of water! Your body will thank you.",
	"Hydration check: grab some water before your next task.",
	"Quick reminder to drink up. Small sips count too.",
	"Water break! Staying hydrated keeps your energy steady.",
}

// mealSuggestions maps each weather category to its fixed candidate
// list. One entry is picked per notification.
var mealSuggestions = map[models.WeatherCategory][]models.MealSuggestion{
	models.CategoryHot: {
		{Name: "Curd Rice", Protein: "9g", Calories: "320 kcal"},
		{Name: "Cucumber Salad Bowl", Protein: "3g", Calories: "90 kcal"},
		{Name: "Watermelon Mint Cooler", Protein: "1g", Calories: "60 kcal"},
	},
	models.CategoryCold: {
		{Name: "Dal Khichdi", Protein: "13g", Calories: "340 kcal"},
		{Name: "Tomato Soup", Protein: "4g", Calories: "140 kcal"},
		{Name: "Palak Paneer with Roti", Protein: "19g", Calories: "430 kcal"},
	},
	models.CategoryRainy: {
		{Name: "Masala Chai and Pakora", Protein: "7g", Calories: "260 kcal"},
		{Name: "Dal Khichdi", Protein: "13g", Calories: "340 kcal"},
		{Name: "Tomato Soup", Protein: "4g", Calories: "140 kcal"},
	},
	models.CategoryHumid: {
		{Name: "Lemon Rice", Protein: "7g", Calories: "310 kcal"},
		{Name: "Fruit Chaat", Protein: "2g", Calories: "130 kcal"},
		{Name: "Curd Rice", Protein: "9g", Calories: "320 kcal"},
	},
	models.CategoryCloudy: {
		{Name: "Vegetable Poha", Protein: "8g", Calories: "250 kcal"},
		{Name: "Paneer Tikka", Protein: "18g", Calories: "290 kcal"},
		{Name: "Grilled Fish with Vegetables", Protein: "26g", Calories: "380 kcal"},
	},
}

// Scheduler polls wall-clock time against the configured daily
// schedule and fires each notification kind at most once per calendar
// date. Selection among message variants is uniform random; pick is
// injectable so tests can pin the choice.
type Scheduler struct {
	store    kvstore.Store
	notifier Notifier
	weather  weather.Provider
	defaults models.NotificationSchedule
	interval time.Duration

	now  func() time.Time
	pick func(n int) int
}

// NewScheduler creates a scheduler. defaults is used until the user
// saves a schedule of their own.
func NewScheduler(store kvstore.Store, notifier Notifier, provider weather.Provider, defaults models.NotificationSchedule, interval time.Duration) *Scheduler {
	return &Scheduler{
		store:    store,
		notifier: notifier,
		weather:  provider,
		defaults: defaults,
		interval: interval,
		now:      time.Now,
		pick:     rand.Intn,
	}
}

// Schedule returns the active schedule: the persisted one when
// present, otherwise the defaults.
func (s *Scheduler) Schedule() models.NotificationSchedule {
	var schedule models.NotificationSchedule
	found, err := s.store.Get(kvstore.KeySchedule, &schedule)
	if err != nil {
		log.Printf("Failed to read notification schedule: %v", err)
	}
	if !found {
		return s.defaults
	}
	return schedule
}

// SetSchedule persists a user-edited schedule.
func (s *Scheduler) SetSchedule(schedule models.NotificationSchedule) error {
	for _, clock := range []string{schedule.WaterReminderTime, schedule.MealSuggestionTime} {
		if _, err := time.Parse("15:04", clock); err != nil {
			return fmt.Errorf("invalid schedule time %q: %w", clock, err)
		}
	}
	if err := s.store.Set(kvstore.KeySchedule, schedule); err != nil {
		return fmt.Errorf("failed to save notification schedule: %w", err)
	}
	return nil
}

// Run polls until ctx is cancelled. Each tick runs to completion
// before the next can start.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("Notification scheduler running (poll interval %s)", s.interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("Notification scheduler stopped")
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick compares the current HH:MM against the schedule and fires the
// matching notification, if any.
func (s *Scheduler) Tick() {
	schedule := s.Schedule()
	if !schedule.Enabled {
		return
	}

	clock := s.now().Format("15:04")
	if clock == schedule.WaterReminderTime {
		s.SendWaterReminder()
	}
	if clock == schedule.MealSuggestionTime {
		s.SendMealSuggestion()
	}
}

// SendWaterReminder fires the water reminder unless it was already
// sent today or permission is denied. Failures are logged skips, not
// errors.
func (s *Scheduler) SendWaterReminder() {
	if s.sentToday(KindWater) {
		metrics.RecordNotificationSkipped(KindWater, "already_sent")
		return
	}

	if !s.notifier.RequestPermission() {
		log.Println("Water reminder skipped: notification permission denied")
		metrics.RecordNotificationSkipped(KindWater, "permission_denied")
		return
	}

	message := waterMessages[s.pick(len(waterMessages))]
	if err := s.notifier.Show("Water Reminder", message); err != nil {
		log.Printf("Failed to show water reminder: %v", err)
		metrics.RecordNotificationSkipped(KindWater, "delivery_failed")
		return
	}

	s.markSent(KindWater)
	metrics.RecordNotificationSent(KindWater)
}

// SendMealSuggestion fires a weather-matched meal suggestion under the
// same once-per-day guard. A weather failure degrades to the fallback
// reading instead of aborting.
func (s *Scheduler) SendMealSuggestion() {
	if s.sentToday(KindMeal) {
		metrics.RecordNotificationSkipped(KindMeal, "already_sent")
		return
	}

	if !s.notifier.RequestPermission() {
		log.Println("Meal suggestion skipped: notification permission denied")
		metrics.RecordNotificationSkipped(KindMeal, "permission_denied")
		return
	}

	reading, err := s.weather.Current()
	if err != nil {
		log.Printf("Weather fetch failed during meal suggestion, using fallback: %v", err)
		reading = weather.FallbackReading()
	}
	category := weather.Classify(reading)

	candidates := mealSuggestions[category]
	if len(candidates) == 0 {
		candidates = mealSuggestions[models.CategoryCloudy]
	}
	suggestion := candidates[s.pick(len(candidates))]

	title := fmt.Sprintf("%s Meal Idea %s", titleFor(category), weather.Icon(category))
	body := fmt.Sprintf("%s (%s protein, %s)", suggestion.Name, suggestion.Protein, suggestion.Calories)
	if err := s.notifier.Show(title, body); err != nil {
		log.Printf("Failed to show meal suggestion: %v", err)
		metrics.RecordNotificationSkipped(KindMeal, "delivery_failed")
		return
	}

	s.markSent(KindMeal)
	metrics.RecordNotificationSent(KindMeal)
}

func titleFor(category models.WeatherCategory) string {
	switch category {
	case models.CategoryHot:
		return "Hot Day"
	case models.CategoryCold:
		return "Cold Day"
	case models.CategoryRainy:
		return "Rainy Day"
	case models.CategoryHumid:
		return "Humid Day"
	default:
		return "Cloudy Day"
	}
}

func (s *Scheduler) sentToday(kind string) bool {
	ledger := s.ledger()
	return ledger[kind] == s.now().Format(dateLayout)
}

func (s *Scheduler) markSent(kind string) {
	ledger := s.ledger()
	ledger[kind] = s.now().Format(dateLayout)
	if err := s.store.Set(kvstore.KeyLedger, ledger); err != nil {
		log.Printf("Failed to persist notification ledger: %v", err)
	}
}

func (s *Scheduler) ledger() map[string]string {
	ledger := make(map[string]string)
	if _, err := s.store.Get(kvstore.KeyLedger, &ledger); err != nil {
		log.Printf("Failed to read notification ledger: %v", err)
	}
	return ledger
}
