package category

import (
	"errors"
	"testing"

	"kharch/internal/model"
)

func TestResolveBuiltin(t *testing.T) {
	r := New(nil)
	c := r.Resolve("food")
	if c.Name != "Food and Groceries" || c.Emoji != "🍔" {
		t.Errorf("Resolve(food) = %+v", c)
	}
}

func TestResolveCustomAndFallback(t *testing.T) {
	r := New([]model.Category{{ID: "custom_1", Name: "Pets", Emoji: "🐕"}})

	if c := r.Resolve("custom_1"); c.Name != "Pets" {
		t.Errorf("Resolve(custom_1) = %+v", c)
	}

	// Unknown ids resolve to a raw-name fallback, never an error.
	c := r.Resolve("custom_gone")
	if c.Name != "custom_gone" || c.Emoji != model.DefaultIcon {
		t.Errorf("fallback = %+v", c)
	}
}

func TestAddCustom(t *testing.T) {
	r := New(nil)

	c, err := r.AddCustom("  Pets  ")
	if err != nil {
		t.Fatalf("AddCustom: %v", err)
	}
	if c.Name != "Pets" {
		t.Errorf("name = %q, want trimmed", c.Name)
	}
	if got := r.Resolve(c.ID); got.Name != "Pets" {
		t.Errorf("Resolve(%s) = %+v", c.ID, got)
	}

	_, err = r.AddCustom("   ")
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("AddCustom(blank) err = %v, want ValidationError", err)
	}
}

func TestAddCustomUniqueIDs(t *testing.T) {
	r := New(nil)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		c, err := r.AddCustom("Dup")
		if err != nil {
			t.Fatalf("AddCustom: %v", err)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestRemoveCustom(t *testing.T) {
	r := New([]model.Category{{ID: "custom_1", Name: "Pets", Emoji: "🐕"}})

	if !r.RemoveCustom("custom_1") {
		t.Error("RemoveCustom(custom_1) = false")
	}
	if r.RemoveCustom("custom_1") {
		t.Error("second RemoveCustom should be a no-op")
	}
	if len(r.Custom()) != 0 {
		t.Errorf("custom list not empty: %v", r.Custom())
	}
}
