// Package category maintains the combined built-in and custom category catalog.
package category

import (
	"fmt"
	"strings"
	"time"

	"kharch/internal/model"
)

// Registry resolves category identifiers against the fixed built-in
// catalog plus the user's custom categories. Resolution never fails:
// unknown identifiers fall back to a raw-name rendering so expenses
// referencing a deleted custom category still display.
type Registry struct {
	custom []model.Category
}

// New builds a registry seeded with the given custom categories.
func New(custom []model.Category) *Registry {
	return &Registry{custom: append([]model.Category(nil), custom...)}
}

// All returns the built-in catalog followed by the custom categories.
func (r *Registry) All() []model.Category {
	out := make([]model.Category, 0, len(model.BuiltinCategories)+len(r.custom))
	out = append(out, model.BuiltinCategories...)
	out = append(out, r.custom...)
	return out
}

// Custom returns a copy of the custom category list.
func (r *Registry) Custom() []model.Category {
	return append([]model.Category(nil), r.custom...)
}

// Resolve looks up a category by identifier, built-ins first.
func (r *Registry) Resolve(id string) model.Category {
	for _, c := range model.BuiltinCategories {
		if c.ID == id {
			return c
		}
	}
	for _, c := range r.custom {
		if c.ID == id {
			return c
		}
	}
	return model.Category{ID: id, Name: id, Emoji: model.DefaultIcon}
}

// AddCustom creates a custom category with a fresh unique identifier.
func (r *Registry) AddCustom(name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, &model.ValidationError{Msg: "enter a category name"}
	}
	c := model.Category{
		ID:    r.newID(time.Now().UnixMilli()),
		Name:  name,
		Emoji: "🏷️",
	}
	r.custom = append(r.custom, c)
	return c, nil
}

// RemoveCustom deletes a custom category if present and reports
// whether anything was removed. Removing an absent id is a no-op.
func (r *Registry) RemoveCustom(id string) bool {
	for i, c := range r.custom {
		if c.ID == id {
			r.custom = append(r.custom[:i], r.custom[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Registry) newID(ms int64) string {
	for {
		id := fmt.Sprintf("custom_%d", ms)
		if !r.exists(id) {
			return id
		}
		ms++
	}
}

func (r *Registry) exists(id string) bool {
	for _, c := range model.BuiltinCategories {
		if c.ID == id {
			return true
		}
	}
	for _, c := range r.custom {
		if c.ID == id {
			return true
		}
	}
	return false
}
