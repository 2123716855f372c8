// Package ledger implements the authoritative in-memory expense store
// and its persistence round-trip.
package ledger

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"kharch/internal/category"
	"kharch/internal/model"
)

// Gateway is the persistence collaborator. The store reads and writes
// opaque keyed blobs and never assumes anything about the medium.
type Gateway interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, blob []byte) error
}

// Blob keys the store persists under.
const (
	keyExpenses   = "expenses"
	keyBudgets    = "budgets"
	keyCategories = "customCategories"
)

// Store owns the expense ledger, the per-month budgets, and the custom
// category list for one session. Every mutation rewrites the affected
// blobs through the gateway; a failed write surfaces as
// *model.PersistenceError but the in-memory mutation is kept.
type Store struct {
	gw Gateway

	expenses []model.Expense
	budgets  map[string]float64
	registry *category.Registry

	lastID int64
	now    func() time.Time
}

// NewStore builds an empty store over the given gateway. Call Load to
// hydrate it from persisted state.
func NewStore(gw Gateway) *Store {
	return &Store{
		gw:       gw,
		budgets:  map[string]float64{},
		registry: category.New(nil),
		now:      time.Now,
	}
}

// Load hydrates the store from the gateway. Absent blobs hydrate to
// empty state, so a fresh database loads cleanly.
func (s *Store) Load() error {
	if err := loadBlob(s.gw, keyExpenses, &s.expenses); err != nil {
		return err
	}
	if err := loadBlob(s.gw, keyBudgets, &s.budgets); err != nil {
		return err
	}
	var custom []model.Category
	if err := loadBlob(s.gw, keyCategories, &custom); err != nil {
		return err
	}
	if s.budgets == nil {
		s.budgets = map[string]float64{}
	}
	s.registry = category.New(custom)
	for _, e := range s.expenses {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
	return nil
}

func loadBlob(gw Gateway, key string, dst any) error {
	blob, ok, err := gw.Get(key)
	if err != nil {
		return &model.PersistenceError{Op: "load " + key, Err: err}
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(blob, dst); err != nil {
		return &model.PersistenceError{Op: "decode " + key, Err: err}
	}
	return nil
}

// Save writes all three blobs. It is called by every mutating
// operation and can be called directly after a batch of changes.
func (s *Store) Save() error {
	if err := s.saveBlob(keyExpenses, s.expenses); err != nil {
		return err
	}
	if err := s.saveBlob(keyBudgets, s.budgets); err != nil {
		return err
	}
	return s.saveBlob(keyCategories, s.registry.Custom())
}

func (s *Store) saveBlob(key string, v any) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return &model.PersistenceError{Op: "encode " + key, Err: err}
	}
	if err := s.gw.Set(key, blob); err != nil {
		return &model.PersistenceError{Op: "save " + key, Err: err}
	}
	return nil
}

// Expenses returns a copy of the ledger in insertion order.
func (s *Store) Expenses() []model.Expense {
	return append([]model.Expense(nil), s.expenses...)
}

// Budgets returns a copy of the month-to-amount budget map.
func (s *Store) Budgets() map[string]float64 {
	out := make(map[string]float64, len(s.budgets))
	for k, v := range s.budgets {
		out[k] = v
	}
	return out
}

// Budget returns the budget for a month, if one is set.
func (s *Store) Budget(month string) (float64, bool) {
	v, ok := s.budgets[month]
	return v, ok
}

// Categories exposes the category registry backing this store.
func (s *Store) Categories() *category.Registry {
	return s.registry
}

// Get looks up one expense by id.
func (s *Store) Get(id int64) (model.Expense, error) {
	for _, e := range s.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Expense{}, &model.NotFoundError{Kind: "expense", ID: fmt.Sprint(id)}
}

// Add validates a draft, assigns it a fresh id and timestamps, appends
// it to the ledger, and persists. On a persistence failure the new
// expense is still returned and kept in memory.
func (s *Store) Add(d model.Draft) (model.Expense, error) {
	d = normalizeDraft(d)
	if err := validateDraft(d); err != nil {
		return model.Expense{}, err
	}
	now := s.now()
	e := s.materialize(d, now)
	s.expenses = append(s.expenses, e)
	return e, s.Save()
}

// Update replaces the mutable fields of an existing expense. The id
// and creation timestamp are preserved; Updated is refreshed.
func (s *Store) Update(id int64, d model.Draft) (model.Expense, error) {
	d = normalizeDraft(d)
	if err := validateDraft(d); err != nil {
		return model.Expense{}, err
	}
	for i, e := range s.expenses {
		if e.ID != id {
			continue
		}
		e.Item = d.Item
		e.Category = d.Category
		e.Price = d.Price
		e.Date = d.Date
		e.Month = d.Month
		e.Remarks = d.Remarks
		e.Updated = s.now()
		s.expenses[i] = e
		return e, s.Save()
	}
	return model.Expense{}, &model.NotFoundError{Kind: "expense", ID: fmt.Sprint(id)}
}

// Delete removes an expense by id. Deleting an absent id is a no-op,
// not an error.
func (s *Store) Delete(id int64) error {
	for i, e := range s.expenses {
		if e.ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return s.Save()
		}
	}
	return nil
}

// ImportStats reports the outcome of an ImportBatch.
type ImportStats struct {
	Added   int
	Skipped int
}

// ImportBatch appends every valid draft with a fresh id, skipping
// invalid ones, then persists once at the end.
func (s *Store) ImportBatch(drafts []model.Draft) (ImportStats, error) {
	var st ImportStats
	now := s.now()
	for _, d := range drafts {
		d = normalizeDraft(d)
		if validateDraft(d) != nil {
			st.Skipped++
			continue
		}
		s.expenses = append(s.expenses, s.materialize(d, now))
		st.Added++
	}
	if st.Added == 0 {
		return st, nil
	}
	return st, s.Save()
}

// SetBudget sets the budget for a canonical month. Amount must be
// strictly positive.
func (s *Store) SetBudget(month string, amount float64) error {
	month = strings.ToLower(strings.TrimSpace(month))
	if !model.IsMonth(month) {
		return &model.ValidationError{Msg: "select a valid month"}
	}
	if amount <= 0 {
		return &model.ValidationError{Msg: "enter a budget amount greater than zero"}
	}
	s.budgets[month] = amount
	return s.Save()
}

// ClearBudget removes the budget for a month. Clearing an unset month
// is a no-op.
func (s *Store) ClearBudget(month string) error {
	month = strings.ToLower(strings.TrimSpace(month))
	if _, ok := s.budgets[month]; !ok {
		return nil
	}
	delete(s.budgets, month)
	return s.Save()
}

// AddCustomCategory creates a custom category and persists it.
func (s *Store) AddCustomCategory(name string) (model.Category, error) {
	c, err := s.registry.AddCustom(name)
	if err != nil {
		return model.Category{}, err
	}
	return c, s.Save()
}

// RemoveCustomCategory deletes a custom category. Removing an absent
// id is a no-op. Expenses referencing the removed category keep their
// raw identifier.
func (s *Store) RemoveCustomCategory(id string) error {
	if !s.registry.RemoveCustom(id) {
		return nil
	}
	return s.Save()
}

// Replace swaps in a full ledger state, used by backup restore.
func (s *Store) Replace(expenses []model.Expense, budgets map[string]float64, custom []model.Category) error {
	s.expenses = append([]model.Expense(nil), expenses...)
	s.budgets = make(map[string]float64, len(budgets))
	for k, v := range budgets {
		s.budgets[k] = v
	}
	s.registry = category.New(custom)
	s.lastID = 0
	for _, e := range s.expenses {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
	return s.Save()
}

func (s *Store) materialize(d model.Draft, now time.Time) model.Expense {
	return model.Expense{
		ID:       s.nextID(now),
		Item:     d.Item,
		Category: d.Category,
		Price:    d.Price,
		Date:     d.Date,
		Month:    d.Month,
		Remarks:  d.Remarks,
		Created:  now,
		Updated:  now,
	}
}

// nextID assigns millisecond timestamps, bumped monotonically so rapid
// inserts within the same millisecond stay unique.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func normalizeDraft(d model.Draft) model.Draft {
	d.Item = strings.TrimSpace(d.Item)
	d.Category = strings.ToLower(strings.TrimSpace(d.Category))
	d.Month = strings.ToLower(strings.TrimSpace(d.Month))
	d.Remarks = strings.TrimSpace(d.Remarks)
	return d
}

func validateDraft(d model.Draft) error {
	if d.Item == "" {
		return &model.ValidationError{Msg: "enter an item name"}
	}
	if d.Price <= 0 || math.IsNaN(d.Price) || math.IsInf(d.Price, 0) {
		return &model.ValidationError{Msg: "enter a price greater than zero"}
	}
	if !model.IsMonth(d.Month) {
		return &model.ValidationError{Msg: "select a valid month"}
	}
	return nil
}
