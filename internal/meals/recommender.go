package meals

import (
	"sort"

	"vitality/internal/metrics"
	"vitality/internal/models"
)

// Recommender ranks catalog recipes against the current weather
// category and pantry. The catalog is read-only after construction.
type Recommender struct {
	catalog []models.Recipe
}

// NewRecommender creates a recommender over the given catalog. A nil
// catalog falls back to the compiled-in default.
func NewRecommender(catalog []models.Recipe) *Recommender {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Recommender{catalog: catalog}
}

// Recommend filters the catalog to recipes suitable for the weather
// category, scores each against the pantry, and partitions the result
// into the five meal-type buckets.
//
// With an empty pantry every weather-suitable recipe stays in
// (scores are all 0 and order display-only); with a non-empty pantry
// recipes with no overlapping ingredient are excluded entirely. Sort
// is stable descending by score, so ties keep catalog order. A recipe
// with several tags appears in each of its buckets.
func (r *Recommender) Recommend(category models.WeatherCategory, pantry []string) map[string][]models.ScoredRecipe {
	var viable []models.ScoredRecipe
	for _, recipe := range r.catalog {
		if !suitableFor(recipe, category) {
			continue
		}

		scored := Score(recipe, pantry)
		if len(pantry) > 0 && scored.MatchScore == 0 {
			continue
		}
		viable = append(viable, scored)
	}

	sort.SliceStable(viable, func(i, j int) bool {
		return viable[i].MatchScore > viable[j].MatchScore
	})

	buckets := make(map[string][]models.ScoredRecipe, len(models.MealTags))
	for _, tag := range models.MealTags {
		buckets[tag] = []models.ScoredRecipe{}
	}
	for _, scored := range viable {
		for _, tag := range scored.Tags {
			buckets[tag] = append(buckets[tag], scored)
		}
	}

	metrics.RecordRecommendation("meals")
	return buckets
}

func suitableFor(recipe models.Recipe, category models.WeatherCategory) bool {
	for _, c := range recipe.WeatherCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Catalog returns the backing catalog.
func (r *Recommender) Catalog() []models.Recipe {
	return r.catalog
}
