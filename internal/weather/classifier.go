package weather

import (
	"strings"

	"vitality/internal/models"
)

// Classification thresholds. Rain in the condition text always wins,
// then temperature, then humidity; cloudy is the fallback bucket.
const (
	hotThreshold   = 30.0 // Celsius, exclusive
	coldThreshold  = 15.0 // Celsius, exclusive
	humidThreshold = 75.0 // percent, exclusive
)

var rainTokens = []string{"rain", "drizzle", "thunderstorm"}

// Classify maps a raw reading to exactly one weather category. It is
// total: every input maps to a category and the order of the checks is
// the tie-break policy.
func Classify(reading models.WeatherReading) models.WeatherCategory {
	condition := strings.ToLower(reading.Condition)
	for _, token := range rainTokens {
		if strings.Contains(condition, token) {
			return models.CategoryRainy
		}
	}

	if reading.Temperature > hotThreshold {
		return models.CategoryHot
	}
	if reading.Temperature < coldThreshold {
		return models.CategoryCold
	}
	if reading.Humidity > humidThreshold {
		return models.CategoryHumid
	}
	return models.CategoryCloudy
}

var categoryIcons = map[models.WeatherCategory]string{
	models.CategoryHot:    "☀️",
	models.CategoryCold:   "❄️",
	models.CategoryRainy:  "🌧️",
	models.CategoryHumid:  "💧",
	models.CategoryCloudy: "☁️",
}

// Icon returns the display glyph for a category. Unknown categories
// fall back to the cloudy glyph.
func Icon(category models.WeatherCategory) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return categoryIcons[models.CategoryCloudy]
}
