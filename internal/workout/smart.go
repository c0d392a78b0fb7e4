package workout

import (
	"fmt"
	"strings"

	"vitality/internal/metrics"
	"vitality/internal/models"
)

// Recommend derives a workout recommendation from a continuous
// metrics snapshot. The rules run top to bottom; later rules may
// override the intensity set by earlier ones, and every rule that
// fires appends a reasoning entry whether or not it changed the
// intensity. Deterministic for a given snapshot; callers re-derive on
// every input change rather than caching.
func Recommend(snapshot models.MetricsSnapshot) models.SmartRecommendation {
	rec := models.SmartRecommendation{
		Intensity:   models.IntensityModerate,
		Duration:    "15-20",
		EnergyLevel: "Medium",
	}

	// Sleep sets the starting tier.
	switch {
	case snapshot.SleepQuality < 6:
		rec.Intensity = models.IntensityLow
		rec.Duration = "10-15"
		rec.EnergyLevel = "Low→Medium"
		rec.Reasoning = append(rec.Reasoning, fmt.Sprintf("Sleep quality %d/10 is low: keeping the session short and easy", snapshot.SleepQuality))
	case snapshot.SleepQuality >= 8:
		rec.Intensity = models.IntensityHigh
		rec.Duration = "20-30"
		rec.EnergyLevel = "Medium→High"
		rec.Reasoning = append(rec.Reasoning, fmt.Sprintf("Sleep quality %d/10 is great: you can push harder today", snapshot.SleepQuality))
	default:
		rec.Reasoning = append(rec.Reasoning, fmt.Sprintf("Sleep quality %d/10 is okay: sticking with a moderate session", snapshot.SleepQuality))
	}

	// High stress overrides the sleep-derived tier unconditionally.
	if snapshot.StressLevel > 7 {
		rec.Intensity = models.IntensityLow
		rec.Reasoning = append(rec.Reasoning, fmt.Sprintf("Stress level %d/10 is high: dropping to low intensity to unwind", snapshot.StressLevel))
	}

	// Soreness wins over everything above it; recovery is the floor.
	if snapshot.Soreness > 6 {
		rec.Intensity = models.IntensityRecovery
		rec.Reasoning = append(rec.Reasoning, fmt.Sprintf("Soreness %d/10: switching to a recovery session so your muscles can rebuild", snapshot.Soreness))
	}

	// Step count adds context but never changes the tier.
	if snapshot.StepsToday > 8000 {
		rec.Reasoning = append(rec.Reasoning, fmt.Sprintf("Already %d steps today: favoring lighter cardio", snapshot.StepsToday))
	} else if snapshot.StepsToday < 3000 {
		rec.Reasoning = append(rec.Reasoning, fmt.Sprintf("Only %d steps so far: adding a cardio boost note", snapshot.StepsToday))
	}

	// Time-of-day band.
	switch {
	case snapshot.HourOfDay >= 8 && snapshot.HourOfDay <= 11:
		rec.Reasoning = append(rec.Reasoning, "Morning energy window: a great time to move")
	case snapshot.HourOfDay >= 17 && snapshot.HourOfDay <= 19:
		rec.Reasoning = append(rec.Reasoning, "Evening window: body temperature peaks, strength work lands well")
	case snapshot.HourOfDay >= 20:
		rec.Reasoning = append(rec.Reasoning, "Late evening: keeping things calmer before sleep")
		if rec.Intensity == models.IntensityHigh {
			rec.Intensity = models.IntensityModerate
		}
	}

	// Weather is informational only.
	if strings.Contains(strings.ToLower(snapshot.WeatherCondition), "rain") {
		rec.Reasoning = append(rec.Reasoning, "Rain outside: indoor workout selected")
	}

	rec.BestTime = bestTimeFor(snapshot.HourOfDay)
	rec.Videos = VideosFor(rec.Intensity)

	metrics.RecordRecommendation("smart")
	return rec
}

func bestTimeFor(hour int) string {
	switch {
	case hour < 12:
		return "7:00 AM"
	case hour < 17:
		return "5:30 PM"
	default:
		return "6:30 PM"
	}
}
