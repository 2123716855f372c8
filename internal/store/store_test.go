package store

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "data", "kharch.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestGetMissingKey(t *testing.T) {
	db := openTestDB(t)

	blob, ok, err := db.Get("expenses")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok || blob != nil {
		t.Errorf("missing key: got %v, %v", blob, ok)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	db := openTestDB(t)

	want := []byte(`[{"id":1}]`)
	if err := db.Set("expenses", want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := db.Get("expenses")
	if err != nil || !ok {
		t.Fatalf("Get: %v, ok=%v", err, ok)
	}
	if string(got) != string(want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSetReplaces(t *testing.T) {
	db := openTestDB(t)

	if err := db.Set("budgets", []byte(`{"january":100}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Set("budgets", []byte(`{"january":200}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, _, err := db.Get("budgets")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"january":200}` {
		t.Errorf("got %q", got)
	}

	keys, err := db.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != "budgets" {
		t.Errorf("keys = %v", keys)
	}
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kharch.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := db.Set("expenses", []byte("[]")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db2.Close()

	_, ok, err := db2.Get("expenses")
	if err != nil || !ok {
		t.Errorf("Get after reopen: %v, ok=%v", err, ok)
	}
}
