package meals

import (
	"testing"

	"vitality/internal/kvstore"
)

func TestPantry_AddAndList(t *testing.T) {
	p := NewPantry(kvstore.NewMemoryStore())

	if err := p.Add("Rice"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := p.Add("  Egg  "); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	items, err := p.Items()
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}

	want := []string{"rice", "egg"}
	if len(items) != len(want) {
		t.Fatalf("Items() = %v, want %v", items, want)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("Items()[%d] = %s, want %s", i, items[i], want[i])
		}
	}
}

func TestPantry_AddDuplicate(t *testing.T) {
	p := NewPantry(kvstore.NewMemoryStore())

	p.Add("rice")
	p.Add("RICE")

	items, _ := p.Items()
	if len(items) != 1 {
		t.Errorf("Items() = %v, want single entry", items)
	}
}

func TestPantry_AddBlank(t *testing.T) {
	p := NewPantry(kvstore.NewMemoryStore())

	p.Add("")
	p.Add("   ")

	items, _ := p.Items()
	if len(items) != 0 {
		t.Errorf("Items() = %v, want empty", items)
	}
}

func TestPantry_Remove(t *testing.T) {
	p := NewPantry(kvstore.NewMemoryStore())

	p.Add("rice")
	p.Add("egg")
	p.Add("onion")

	if err := p.Remove("Egg"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	items, _ := p.Items()
	want := []string{"rice", "onion"}
	if len(items) != len(want) {
		t.Fatalf("Items() = %v, want %v", items, want)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("Items()[%d] = %s, want %s", i, items[i], want[i])
		}
	}

	// Removing an absent item is a no-op.
	if err := p.Remove("butter"); err != nil {
		t.Errorf("Remove() on absent item error = %v", err)
	}
}

func TestPantry_EmptyByDefault(t *testing.T) {
	p := NewPantry(kvstore.NewMemoryStore())

	items, err := p.Items()
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Items() = %v, want empty", items)
	}
}
