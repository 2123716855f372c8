package ledger

import (
	"errors"
	"testing"
	"time"

	"kharch/internal/model"
)

// fakeGateway is an in-memory Gateway with injectable write failures.
type fakeGateway struct {
	blobs   map[string][]byte
	failSet bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{blobs: map[string][]byte{}}
}

func (g *fakeGateway) Get(key string) ([]byte, bool, error) {
	b, ok := g.blobs[key]
	return b, ok, nil
}

func (g *fakeGateway) Set(key string, blob []byte) error {
	if g.failSet {
		return errors.New("disk full")
	}
	g.blobs[key] = blob
	return nil
}

func newTestStore(t *testing.T) (*Store, *fakeGateway) {
	t.Helper()
	gw := newFakeGateway()
	s := NewStore(gw)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s, gw
}

func draft(item string, price float64, month string) model.Draft {
	return model.Draft{Item: item, Category: "food", Price: price, Month: month}
}

func TestAddAndGet(t *testing.T) {
	s, _ := newTestStore(t)

	e, err := s.Add(draft("Milk", 30, "january"))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if e.ID == 0 {
		t.Error("expected a nonzero id")
	}
	if e.Created.IsZero() || e.Updated.IsZero() {
		t.Error("timestamps not set")
	}

	got, err := s.Get(e.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Item != "Milk" || got.Price != 30 {
		t.Errorf("Get = %+v", got)
	}
}

func TestAddValidation(t *testing.T) {
	s, _ := newTestStore(t)

	tests := []struct {
		name string
		d    model.Draft
	}{
		{"empty item", draft("  ", 10, "january")},
		{"zero price", draft("Milk", 0, "january")},
		{"negative price", draft("Milk", -5, "january")},
		{"bad month", draft("Milk", 10, "smarch")},
		{"empty month", draft("Milk", 10, "")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Add(tt.d)
			var verr *model.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("err = %v, want ValidationError", err)
			}
		})
	}
	if len(s.Expenses()) != 0 {
		t.Error("invalid drafts must not be appended")
	}
}

func TestAddNormalizes(t *testing.T) {
	s, _ := newTestStore(t)

	e, err := s.Add(model.Draft{Item: " Chai ", Category: " Food ", Price: 12, Month: " JANUARY "})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if e.Item != "Chai" || e.Category != "food" || e.Month != "january" {
		t.Errorf("normalized = %+v", e)
	}
}

func TestIDsUniqueAndIncreasing(t *testing.T) {
	s, _ := newTestStore(t)
	fixed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	var last int64
	for i := 0; i < 20; i++ {
		e, err := s.Add(draft("x", 1, "march"))
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if e.ID <= last {
			t.Fatalf("id %d not greater than previous %d", e.ID, last)
		}
		last = e.ID
	}
}

func TestUpdatePreservesIdentity(t *testing.T) {
	s, _ := newTestStore(t)

	e, _ := s.Add(draft("Milk", 30, "january"))
	created := e.Created

	updated, err := s.Update(e.ID, draft("Bread", 45, "february"))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != e.ID {
		t.Error("id must survive update")
	}
	if !updated.Created.Equal(created) {
		t.Error("created timestamp must survive update")
	}
	if updated.Item != "Bread" || updated.Month != "february" {
		t.Errorf("fields not replaced: %+v", updated)
	}
}

func TestUpdateMissing(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Update(12345, draft("x", 1, "january"))
	var nf *model.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	s, _ := newTestStore(t)

	e, _ := s.Add(draft("Milk", 30, "january"))
	if err := s.Delete(e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(e.ID); err != nil {
		t.Errorf("second Delete = %v, want nil", err)
	}
	if len(s.Expenses()) != 0 {
		t.Error("expense not removed")
	}
}

func TestImportBatchSkipsInvalid(t *testing.T) {
	s, _ := newTestStore(t)

	st, err := s.ImportBatch([]model.Draft{
		draft("Milk", 30, "january"),
		draft("", 30, "january"),
		draft("Rent", 5000, "january"),
		draft("Bad", -1, "january"),
	})
	if err != nil {
		t.Fatalf("ImportBatch: %v", err)
	}
	if st.Added != 2 || st.Skipped != 2 {
		t.Errorf("stats = %+v, want 2 added 2 skipped", st)
	}

	seen := map[int64]bool{}
	for _, e := range s.Expenses() {
		if seen[e.ID] {
			t.Fatalf("duplicate id %d", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestSetBudgetValidation(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.SetBudget("january", 1000); err != nil {
		t.Fatalf("SetBudget: %v", err)
	}
	if b, ok := s.Budget("january"); !ok || b != 1000 {
		t.Errorf("Budget(january) = %v, %v", b, ok)
	}

	var verr *model.ValidationError
	if err := s.SetBudget("smarch", 100); !errors.As(err, &verr) {
		t.Errorf("bad month err = %v", err)
	}
	if err := s.SetBudget("january", 0); !errors.As(err, &verr) {
		t.Errorf("zero amount err = %v", err)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	gw := newFakeGateway()
	s := NewStore(gw)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	e, _ := s.Add(draft("Milk", 30, "january"))
	if err := s.SetBudget("january", 500); err != nil {
		t.Fatalf("SetBudget: %v", err)
	}
	if _, err := s.AddCustomCategory("Pets"); err != nil {
		t.Fatalf("AddCustomCategory: %v", err)
	}

	// Rehydrate from the same blobs
	s2 := NewStore(gw)
	if err := s2.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	got, err := s2.Get(e.ID)
	if err != nil {
		t.Fatalf("Get after reload: %v", err)
	}
	if got.Item != "Milk" {
		t.Errorf("reloaded = %+v", got)
	}
	if b, ok := s2.Budget("january"); !ok || b != 500 {
		t.Errorf("reloaded budget = %v, %v", b, ok)
	}
	if len(s2.Categories().Custom()) != 1 {
		t.Errorf("reloaded custom categories = %v", s2.Categories().Custom())
	}

	// New ids must not collide with reloaded ones
	e2, _ := s2.Add(draft("Bread", 45, "january"))
	if e2.ID <= got.ID && e2.ID == got.ID {
		t.Errorf("id collision after reload: %d", e2.ID)
	}
}

func TestPersistenceFailureKeepsMutation(t *testing.T) {
	s, gw := newTestStore(t)
	gw.failSet = true

	e, err := s.Add(draft("Milk", 30, "january"))
	var pe *model.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want PersistenceError", err)
	}

	// The in-memory ledger keeps the expense despite the failed write.
	if _, err := s.Get(e.ID); err != nil {
		t.Errorf("expense rolled back on persistence failure: %v", err)
	}
}
