package models

import "time"

// WeatherCategory is a discretization of a raw weather reading.
type WeatherCategory string

const (
	CategoryHot    WeatherCategory = "hot"
	CategoryCold   WeatherCategory = "cold"
	CategoryRainy  WeatherCategory = "rainy"
	CategoryHumid  WeatherCategory = "humid"
	CategoryCloudy WeatherCategory = "cloudy"
)

// WeatherReading is a raw reading from the weather provider.
// Temperature is in Celsius, humidity in percent.
type WeatherReading struct {
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Condition   string    `json:"condition"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Recipe is one entry of the static meal catalog. Catalog data is
// read-only at runtime: ingredients are canonical lowercase, every
// recipe carries at least one tag and one weather category.
type Recipe struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Ingredients       []string          `json:"ingredients"`
	Tags              []string          `json:"tags"`
	WeatherCategories []WeatherCategory `json:"weather_categories"`
	PrepTime          string            `json:"prep_time"`
	DietType          string            `json:"diet_type"` // "veg" or "non-veg"
	Protein           string            `json:"protein"`
	Calories          string            `json:"calories"`
}

// Meal-type tags a recipe may carry. These double as the output
// bucket keys of the meal recommender.
const (
	TagBreakfast = "breakfast"
	TagLunch     = "lunch"
	TagDinner    = "dinner"
	TagSnack     = "snack"
	TagBaby      = "baby"
)

// MealTags lists the bucket keys in display order.
var MealTags = []string{TagBreakfast, TagLunch, TagDinner, TagSnack, TagBaby}

// ScoredRecipe is a recipe scored against the current pantry.
// Derived, never persisted.
type ScoredRecipe struct {
	Recipe
	MatchScore           int      `json:"match_score"`
	AvailableIngredients []string `json:"available_ingredients"`
	MissingIngredients   []string `json:"missing_ingredients"`
}

// Intensity is a workout difficulty tier.
type Intensity string

const (
	IntensityRecovery Intensity = "recovery"
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

// WorkoutPlan is the static plan mapped 1:1 from a discrete mood.
type WorkoutPlan struct {
	Mood       string   `json:"mood"`
	Title      string   `json:"title"`
	Duration   string   `json:"duration"`
	Exercises  []string `json:"exercises"`
	MusicGenre string   `json:"music_genre"`
	Motivation string   `json:"motivation"`
	Breathing  string   `json:"breathing"`
	Quote      string   `json:"quote"`
}

// MetricsSnapshot is the continuous input to the smart workout
// recommendation cascade.
type MetricsSnapshot struct {
	SleepQuality     int    `json:"sleep_quality"` // 1-10
	StressLevel      int    `json:"stress_level"`  // 1-10
	Soreness         int    `json:"soreness"`      // 1-10
	StepsToday       int    `json:"steps_today"`
	HourOfDay        int    `json:"hour_of_day"` // 0-23
	WeatherCondition string `json:"weather_condition"`
}

// WorkoutVideo is one entry of a tiered video catalog.
type WorkoutVideo struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Duration string    `json:"duration"`
	Channel  string    `json:"channel"`
	Tier     Intensity `json:"tier"`
}

// SmartRecommendation is the output of the continuous metrics cascade.
type SmartRecommendation struct {
	Intensity   Intensity      `json:"intensity"`
	Duration    string         `json:"duration"`
	EnergyLevel string         `json:"energy_level"`
	BestTime    string         `json:"best_time"`
	Videos      []WorkoutVideo `json:"videos"`
	Reasoning   []string       `json:"reasoning"`
}

// DailyActivity is the single live per-day aggregate record. The
// sleep/stress/mood/soreness values after a day rollover are
// intentional mid-scale baselines (7/5/7/3), not zeros.
type DailyActivity struct {
	Date              string  `json:"date"` // local date, "2006-01-02"
	Steps             int     `json:"steps"`
	CaloriesBurned    float64 `json:"calories_burned"`
	ActiveMinutes     int     `json:"active_minutes"`
	HydrationGlasses  int     `json:"hydration_glasses"`
	WorkoutsCompleted int     `json:"workouts_completed"`
	SleepScore        int     `json:"sleep_score"`
	StressScore       int     `json:"stress_score"`
	MoodScore         int     `json:"mood_score"`
	SorenessScore     int     `json:"soreness_score"`
}

// NotificationSchedule holds the user-editable daily reminder times.
type NotificationSchedule struct {
	WaterReminderTime  string `json:"water_reminder_time"`  // "HH:MM"
	MealSuggestionTime string `json:"meal_suggestion_time"` // "HH:MM"
	Enabled            bool   `json:"enabled"`
}

// MealSuggestion is one notification-ready suggestion for a weather
// category.
type MealSuggestion struct {
	Name     string `json:"name"`
	Protein  string `json:"protein"`
	Calories string `json:"calories"`
}
