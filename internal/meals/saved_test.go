package meals

import (
	"testing"

	"vitality/internal/kvstore"
)

func TestSavedMeals_SaveAndUnsave(t *testing.T) {
	saved := NewSavedMeals(kvstore.NewMemoryStore())

	for _, id := range []int64{3, 7, 1} {
		if err := saved.Save(id); err != nil {
			t.Fatalf("Save(%d) error = %v", id, err)
		}
	}

	ids, err := saved.IDs()
	if err != nil {
		t.Fatalf("IDs() error = %v", err)
	}
	want := []int64{3, 7, 1}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %d, want %d", i, ids[i], want[i])
		}
	}

	if err := saved.Unsave(7); err != nil {
		t.Fatalf("Unsave(7) error = %v", err)
	}
	ids, _ = saved.IDs()
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 1 {
		t.Errorf("IDs() after unsave = %v, want [3 1]", ids)
	}
}

func TestSavedMeals_SaveIsIdempotent(t *testing.T) {
	saved := NewSavedMeals(kvstore.NewMemoryStore())

	if err := saved.Save(5); err != nil {
		t.Fatalf("Save(5) error = %v", err)
	}
	if err := saved.Save(5); err != nil {
		t.Fatalf("second Save(5) error = %v", err)
	}

	ids, _ := saved.IDs()
	if len(ids) != 1 {
		t.Errorf("IDs() = %v, want a single entry", ids)
	}
}

func TestSavedMeals_UnsaveMissingIsNoOp(t *testing.T) {
	saved := NewSavedMeals(kvstore.NewMemoryStore())

	if err := saved.Unsave(42); err != nil {
		t.Errorf("Unsave(42) on empty list error = %v", err)
	}

	ids, err := saved.IDs()
	if err != nil {
		t.Fatalf("IDs() error = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("IDs() = %v, want empty", ids)
	}
}
