package meals

import (
	"math"
	"strings"

	"vitality/internal/models"
)

// Score computes the ingredient-overlap score between a recipe and the
// pantry. Matching is exact set membership on lowercased names, never
// fuzzy. The score is the rounded percentage of the recipe's
// ingredients present in the pantry.
func Score(recipe models.Recipe, pantry []string) models.ScoredRecipe {
	available := make(map[string]bool, len(pantry))
	for _, item := range pantry {
		available[strings.ToLower(item)] = true
	}

	scored := models.ScoredRecipe{Recipe: recipe}
	for _, ingredient := range recipe.Ingredients {
		if available[strings.ToLower(ingredient)] {
			scored.AvailableIngredients = append(scored.AvailableIngredients, ingredient)
		} else {
			scored.MissingIngredients = append(scored.MissingIngredients, ingredient)
		}
	}

	// A recipe with zero ingredients is a data-authoring bug; score it
	// 0 instead of dividing by zero.
	if len(recipe.Ingredients) == 0 {
		scored.MatchScore = 0
		return scored
	}

	ratio := float64(len(scored.AvailableIngredients)) / float64(len(recipe.Ingredients))
	scored.MatchScore = int(math.Round(ratio * 100))
	return scored
}
