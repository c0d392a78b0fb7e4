package weather

import (
	"testing"

	"vitality/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		temperature float64
		humidity    float64
		condition   string
		want        models.WeatherCategory
	}{
		{
			name:        "hot day",
			temperature: 35,
			humidity:    40,
			condition:   "Clear",
			want:        models.CategoryHot,
		},
		{
			name:        "cold day",
			temperature: 5,
			humidity:    40,
			condition:   "Clear",
			want:        models.CategoryCold,
		},
		{
			name:        "rain takes precedence over heat",
			temperature: 35,
			humidity:    40,
			condition:   "light rain",
			want:        models.CategoryRainy,
		},
		{
			name:        "rain takes precedence over cold",
			temperature: 2,
			humidity:    40,
			condition:   "Heavy Rain",
			want:        models.CategoryRainy,
		},
		{
			name:        "drizzle counts as rainy",
			temperature: 20,
			humidity:    50,
			condition:   "Drizzle",
			want:        models.CategoryRainy,
		},
		{
			name:        "thunderstorm counts as rainy",
			temperature: 28,
			humidity:    80,
			condition:   "Thunderstorm",
			want:        models.CategoryRainy,
		},
		{
			name:        "humid mild day",
			temperature: 25,
			humidity:    85,
			condition:   "Cloudy",
			want:        models.CategoryHumid,
		},
		{
			name:        "mild day falls through to cloudy",
			temperature: 22,
			humidity:    50,
			condition:   "Clear",
			want:        models.CategoryCloudy,
		},
		{
			name:        "boundary temperature 30 is not hot",
			temperature: 30,
			humidity:    50,
			condition:   "Clear",
			want:        models.CategoryCloudy,
		},
		{
			name:        "boundary temperature 15 is not cold",
			temperature: 15,
			humidity:    50,
			condition:   "Clear",
			want:        models.CategoryCloudy,
		},
		{
			name:        "boundary humidity 75 is not humid",
			temperature: 20,
			humidity:    75,
			condition:   "Clear",
			want:        models.CategoryCloudy,
		},
		{
			name:        "hot check runs before humidity",
			temperature: 35,
			humidity:    90,
			condition:   "Clear",
			want:        models.CategoryHot,
		},
		{
			name:        "empty condition text",
			temperature: 20,
			humidity:    50,
			condition:   "",
			want:        models.CategoryCloudy,
		},
		{
			name:        "mixed case rain substring",
			temperature: 20,
			humidity:    50,
			condition:   "Patchy RAIN nearby",
			want:        models.CategoryRainy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(models.WeatherReading{
				Temperature: tt.temperature,
				Humidity:    tt.humidity,
				Condition:   tt.condition,
			})
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIcon(t *testing.T) {
	categories := []models.WeatherCategory{
		models.CategoryHot,
		models.CategoryCold,
		models.CategoryRainy,
		models.CategoryHumid,
		models.CategoryCloudy,
	}

	seen := make(map[string]bool)
	for _, category := range categories {
		icon := Icon(category)
		if icon == "" {
			t.Errorf("Icon(%s) returned empty string", category)
		}
		seen[icon] = true
	}

	if len(seen) != 5 {
		t.Errorf("Expected 5 distinct icons, got %d", len(seen))
	}

	// Unknown categories fall back to the cloudy glyph.
	if Icon(models.WeatherCategory("volcanic")) != Icon(models.CategoryCloudy) {
		t.Error("Icon() for unknown category should fall back to cloudy")
	}
}
