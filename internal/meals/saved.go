package meals

import (
	"fmt"

	"vitality/internal/kvstore"
)

// SavedMeals tracks the recipe ids the user has bookmarked.
type SavedMeals struct {
	store kvstore.Store
}

// NewSavedMeals creates a saved-meals list over the given store.
func NewSavedMeals(store kvstore.Store) *SavedMeals {
	return &SavedMeals{store: store}
}

// IDs returns the saved recipe ids in save order.
func (s *SavedMeals) IDs() ([]int64, error) {
	var ids []int64
	if _, err := s.store.Get(kvstore.KeySavedMeals, &ids); err != nil {
		return nil, fmt.Errorf("failed to load saved meals: %w", err)
	}
	return ids, nil
}

// Save bookmarks a recipe id. Saving an already-saved id is a no-op.
func (s *SavedMeals) Save(id int64) error {
	ids, err := s.IDs()
	if err != nil {
		return err
	}

	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}

	ids = append(ids, id)
	if err := s.store.Set(kvstore.KeySavedMeals, ids); err != nil {
		return fmt.Errorf("failed to save meal ids: %w", err)
	}
	return nil
}

// Unsave removes a recipe id from the bookmarks.
func (s *SavedMeals) Unsave(id int64) error {
	ids, err := s.IDs()
	if err != nil {
		return err
	}

	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(ids) {
		return nil
	}

	if err := s.store.Set(kvstore.KeySavedMeals, kept); err != nil {
		return fmt.Errorf("failed to save meal ids: %w", err)
	}
	return nil
}
