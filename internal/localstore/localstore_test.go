package localstore

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cockroachdb/pebble"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSetThenGetRoundTrip(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "db"))

	want := []int{7, 3}
	if err := store.SetInts(KeyFavoritePostIDs, want); err != nil {
		t.Fatalf("SetInts returned error: %v", err)
	}
	got := store.GetInts(KeyFavoritePostIDs)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GetInts = %v, want %v", got, want)
	}
}

func TestGetMissingKeyYieldsDefault(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "db"))

	if got := store.GetInts("never-written"); got != nil {
		t.Fatalf("GetInts = %v, want nil", got)
	}
}

func TestGetCorruptEntryYieldsDefault(t *testing.T) {
	store := openTestStore(t, filepath.Join(t.TempDir(), "db"))

	if err := store.db.Set([]byte(KeyFavoritePostIDs), []byte("{not json"), pebble.Sync); err != nil {
		t.Fatalf("raw Set returned error: %v", err)
	}
	if got := store.GetInts(KeyFavoritePostIDs); got != nil {
		t.Fatalf("GetInts = %v, want nil for corrupt entry", got)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := store.SetInts(KeyFavoritePostIDs, []int{7, 3}); err != nil {
		t.Fatalf("SetInts returned error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	reopened := openTestStore(t, path)
	got := reopened.GetInts(KeyFavoritePostIDs)
	if !reflect.DeepEqual(got, []int{7, 3}) {
		t.Fatalf("GetInts after reopen = %v, want [7 3]", got)
	}
}

func TestNilStoreIsSafe(t *testing.T) {
	var store *Store
	if got := store.GetInts(KeyFavoritePostIDs); got != nil {
		t.Fatalf("GetInts on nil store = %v, want nil", got)
	}
	if err := store.SetInts(KeyFavoritePostIDs, []int{1}); err == nil {
		t.Fatalf("SetInts on nil store returned nil error, want error")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close on nil store returned error: %v", err)
	}
}
