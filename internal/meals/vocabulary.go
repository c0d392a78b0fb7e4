package meals

import "strings"

const (
	minSuggestQuery = 2
	maxSuggestions  = 10
)

// Vocabulary is the fixed ingredient list backing autosuggest.
type Vocabulary []string

// DefaultVocabulary returns the compiled-in ingredient vocabulary.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		"apple", "banana", "besan", "black pepper", "butter", "capsicum",
		"carrot", "chaat masala", "chicken", "coriander", "cream",
		"cucumber", "cumin", "curd", "curry leaves", "egg", "fish",
		"garlic", "ghee", "ginger", "green chili", "jaggery", "lemon",
		"milk", "mint", "moong dal", "mustard seeds", "mushroom", "oats",
		"olive oil", "onion", "paneer", "peanuts", "peas", "poha",
		"pomegranate", "potato", "ragi", "rice", "spinach", "tea",
		"tomato", "turmeric", "watermelon", "wheat flour", "yogurt",
	}
}

// Suggest returns up to 10 vocabulary entries containing the query,
// case-insensitive. Queries shorter than 2 characters return nothing.
func (v Vocabulary) Suggest(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < minSuggestQuery {
		return nil
	}

	var matches []string
	for _, ingredient := range v {
		if strings.Contains(strings.ToLower(ingredient), query) {
			matches = append(matches, ingredient)
			if len(matches) == maxSuggestions {
				break
			}
		}
	}
	return matches
}
