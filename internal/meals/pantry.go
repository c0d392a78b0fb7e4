package meals

import (
	"fmt"
	"strings"

	"vitality/internal/kvstore"
)

// Pantry manages the user's available-ingredients list: an
// ordered-unique list of canonical lowercase names, persisted under
// one key-value store key.
type Pantry struct {
	store kvstore.Store
}

// NewPantry creates a pantry over the given store.
func NewPantry(store kvstore.Store) *Pantry {
	return &Pantry{store: store}
}

// Items returns the current pantry contents. An absent key means an
// empty pantry, not an error.
func (p *Pantry) Items() ([]string, error) {
	var items []string
	if _, err := p.store.Get(kvstore.KeyPantry, &items); err != nil {
		return nil, fmt.Errorf("failed to load pantry: %w", err)
	}
	return items, nil
}

// Add appends an ingredient, normalized to lowercase. Duplicates and
// blank names are no-ops.
func (p *Pantry) Add(name string) error {
	name = canonical(name)
	if name == "" {
		return nil
	}

	items, err := p.Items()
	if err != nil {
		return err
	}

	for _, item := range items {
		if item == name {
			return nil
		}
	}

	items = append(items, name)
	if err := p.store.Set(kvstore.KeyPantry, items); err != nil {
		return fmt.Errorf("failed to save pantry: %w", err)
	}
	return nil
}

// Remove deletes an ingredient. Removing an absent ingredient is a
// no-op.
func (p *Pantry) Remove(name string) error {
	name = canonical(name)

	items, err := p.Items()
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item != name {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}

	if err := p.store.Set(kvstore.KeyPantry, kept); err != nil {
		return fmt.Errorf("failed to save pantry: %w", err)
	}
	return nil
}

func canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
