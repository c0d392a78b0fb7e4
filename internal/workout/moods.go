package workout

import (
	"vitality/internal/metrics"
	"vitality/internal/models"
)

// Discrete mood keys. Unknown moods fall back to neutral.
const (
	MoodHappy     = "happy"
	MoodSad       = "sad"
	MoodStressed  = "stressed"
	MoodAnxious   = "anxious"
	MoodAngry     = "angry"
	MoodTired     = "tired"
	MoodMotivated = "motivated"
	MoodNeutral   = "neutral"
)

// moodPlans maps each discrete mood 1:1 to its static plan. Pure
// lookup, no derivation.
var moodPlans = map[string]models.WorkoutPlan{
	MoodHappy: {
		Mood:       MoodHappy,
		Title:      "Feel-Good Dance Cardio",
		Duration:   "25 min",
		Exercises:  []string{"Dance warm-up", "High knees", "Grapevine steps", "Freestyle dance", "Cool-down stretch"},
		MusicGenre: "Pop",
		Motivation: "Ride that good mood into movement!",
		Breathing:  "Natural rhythm breathing, in through the nose, out through the mouth",
		Quote:      "Energy and persistence conquer all things.",
	},
	MoodSad: {
		Mood:       MoodSad,
		Title:      "Gentle Mood-Lift Walk and Stretch",
		Duration:   "20 min",
		Exercises:  []string{"Brisk walk", "Shoulder rolls", "Standing forward fold", "Cat-cow stretch", "Child's pose"},
		MusicGenre: "Acoustic",
		Motivation: "A small step today is still a step.",
		Breathing:  "4-7-8 breathing: inhale 4, hold 7, exhale 8",
		Quote:      "The sun will rise and we will try again.",
	},
	MoodStressed: {
		Mood:       MoodStressed,
		Title:      "Stress-Release Yoga Flow",
		Duration:   "30 min",
		Exercises:  []string{"Sun salutation", "Warrior II", "Pigeon pose", "Seated twist", "Savasana"},
		MusicGenre: "Ambient",
		Motivation: "Exhale the day, inhale some space.",
		Breathing:  "Box breathing: 4 counts in, 4 hold, 4 out, 4 hold",
		Quote:      "You can't always control what goes on outside, but you can control what goes on inside.",
	},
	MoodAnxious: {
		Mood:       MoodAnxious,
		Title:      "Grounding Pilates Basics",
		Duration:   "20 min",
		Exercises:  []string{"Diaphragmatic warm-up", "Pelvic curls", "Dead bug", "Bird dog", "Rest pose"},
		MusicGenre: "Lo-fi",
		Motivation: "Slow is smooth, smooth is calm.",
		Breathing:  "Extended exhale: inhale 4, exhale 6",
		Quote:      "Nothing diminishes anxiety faster than action.",
	},
	MoodAngry: {
		Mood:       MoodAngry,
		Title:      "Power Boxing Intervals",
		Duration:   "25 min",
		Exercises:  []string{"Jump rope warm-up", "Jab-cross combos", "Hooks and uppercuts", "Burpees", "Cool-down shadowboxing"},
		MusicGenre: "Rock",
		Motivation: "Channel it. The bag doesn't mind.",
		Breathing:  "Sharp exhale on every strike",
		Quote:      "Speak when you are angry and you will make the best speech you will ever regret.",
	},
	MoodTired: {
		Mood:       MoodTired,
		Title:      "Low-Energy Mobility Reset",
		Duration:   "15 min",
		Exercises:  []string{"Neck circles", "Hip openers", "Hamstring stretch", "Ankle rolls", "Legs up the wall"},
		MusicGenre: "Chill",
		Motivation: "Rest is productive too. Just loosen up.",
		Breathing:  "Slow belly breathing, 6 breaths per minute",
		Quote:      "Take rest; a field that has rested gives a bountiful crop.",
	},
	MoodMotivated: {
		Mood:       MoodMotivated,
		Title:      "Full-Body Strength Circuit",
		Duration:   "40 min",
		Exercises:  []string{"Dynamic warm-up", "Squats", "Push-ups", "Lunges", "Plank series", "Deadlift pattern drills"},
		MusicGenre: "Electronic",
		Motivation: "This is the day you've been training for.",
		Breathing:  "Exhale on exertion, inhale on release",
		Quote:      "We are what we repeatedly do. Excellence, then, is not an act, but a habit.",
	},
	MoodNeutral: {
		Mood:       MoodNeutral,
		Title:      "Balanced Everyday Workout",
		Duration:   "30 min",
		Exercises:  []string{"Light jog", "Bodyweight squats", "Push-ups", "Plank", "Full-body stretch"},
		MusicGenre: "Indie",
		Motivation: "Consistency beats intensity.",
		Breathing:  "Steady nasal breathing",
		Quote:      "Well done is better than well said.",
	},
}

// PlanFor returns the static plan for a discrete mood. Unknown moods
// map to the neutral plan rather than failing.
func PlanFor(mood string) models.WorkoutPlan {
	metrics.RecordRecommendation("mood")
	if plan, ok := moodPlans[mood]; ok {
		return plan
	}
	return moodPlans[MoodNeutral]
}

// Moods lists the known discrete mood keys.
func Moods() []string {
	return []string{
		MoodHappy, MoodSad, MoodStressed, MoodAnxious,
		MoodAngry, MoodTired, MoodMotivated, MoodNeutral,
	}
}

// Greeting holds the template fields a text-to-speech collaborator
// combines into the selection greeting. Synthesis itself is outside
// this core.
type Greeting struct {
	TimeOfDay string `json:"time_of_day"`
	Mood      string `json:"mood"`
	Title     string `json:"title"`
	Quote     string `json:"quote"`
}

// GreetingFor builds the greeting fields for a mood selection at the
// given hour.
func GreetingFor(mood string, hour int) Greeting {
	plan := PlanFor(mood)
	return Greeting{
		TimeOfDay: timeOfDayLabel(hour),
		Mood:      plan.Mood,
		Title:     plan.Title,
		Quote:     plan.Quote,
	}
}

func timeOfDayLabel(hour int) string {
	switch {
	case hour < 12:
		return "morning"
	case hour < 17:
		return "afternoon"
	default:
		return "evening"
	}
}
