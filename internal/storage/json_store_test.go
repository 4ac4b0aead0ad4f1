package storage_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"stridelog/internal/storage"
	"stridelog/internal/testutil"
)

func newStore(t *testing.T) (*storage.JSONStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewJSONStore(dir)
	if err != nil {
		t.Fatalf("failed to create json store: %v", err)
	}
	return store, dir
}

func TestJSONStoreRecords(t *testing.T) {
	t.Run("fresh_store_loads_empty", func(t *testing.T) {
		store, _ := newStore(t)

		records, err := store.LoadRecords()
		testutil.AssertNoError(t, err)
		if records == nil {
			t.Fatal("expected empty mapping, got nil")
		}
		if len(records) != 0 {
			t.Errorf("expected no records, got %d", len(records))
		}
	})

	t.Run("round_trip", func(t *testing.T) {
		store, _ := newStore(t)
		want := testutil.RecordMap(
			testutil.Record(time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)),
			testutil.Record(time.Date(2024, 3, 2, 21, 15, 42, 0, time.UTC)),
		)

		testutil.AssertNoError(t, store.SaveRecords(want))

		got, err := store.LoadRecords()
		testutil.AssertNoError(t, err)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
		}
	})

	t.Run("save_replaces_previous_mapping", func(t *testing.T) {
		store, _ := newStore(t)
		first := testutil.Record(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
		second := testutil.Record(time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC))

		testutil.AssertNoError(t, store.SaveRecords(testutil.RecordMap(first, second)))
		testutil.AssertNoError(t, store.SaveRecords(testutil.RecordMap(second)))

		got, err := store.LoadRecords()
		testutil.AssertNoError(t, err)
		if len(got) != 1 {
			t.Fatalf("expected replaced mapping with 1 record, got %d", len(got))
		}
		if _, ok := got[first.Day]; ok {
			t.Error("record from replaced mapping is still present")
		}
	})

	t.Run("corrupt_file_fails_load", func(t *testing.T) {
		store, dir := newStore(t)
		if err := os.WriteFile(filepath.Join(dir, "records.json"), []byte("{not json"), 0o600); err != nil {
			t.Fatalf("failed to plant corrupt file: %v", err)
		}

		_, err := store.LoadRecords()
		testutil.AssertAppError(t, err, "CORRUPT_STORE")
	})

	t.Run("corrupt_structure_fails_load", func(t *testing.T) {
		store, dir := newStore(t)
		// Valid JSON, wrong shape: an array instead of a day-keyed object.
		if err := os.WriteFile(filepath.Join(dir, "records.json"), []byte(`[1, 2, 3]`), 0o600); err != nil {
			t.Fatalf("failed to plant corrupt file: %v", err)
		}

		_, err := store.LoadRecords()
		testutil.AssertAppError(t, err, "CORRUPT_STORE")
	})

	t.Run("unreadable_file_is_not_corruption", func(t *testing.T) {
		store, dir := newStore(t)
		// A directory in place of the file makes the read itself fail
		// without implying anything about the stored contents.
		if err := os.Mkdir(filepath.Join(dir, "records.json"), 0o700); err != nil {
			t.Fatalf("failed to plant unreadable records file: %v", err)
		}

		_, err := store.LoadRecords()
		testutil.AssertAppError(t, err, "STORAGE_READ_FAILED")
	})

	t.Run("no_temp_files_left_behind", func(t *testing.T) {
		store, dir := newStore(t)
		record := testutil.Record(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
		testutil.AssertNoError(t, store.SaveRecords(testutil.RecordMap(record)))

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("failed to read data dir: %v", err)
		}
		for _, e := range entries {
			if e.Name() != "records.json" {
				t.Errorf("unexpected file in data dir: %s", e.Name())
			}
		}
	})
}

func TestJSONStoreCredential(t *testing.T) {
	t.Run("not_set", func(t *testing.T) {
		store, _ := newStore(t)
		_, err := store.LoadCredential()
		testutil.AssertAppError(t, err, "CREDENTIAL_NOT_SET")
	})

	t.Run("round_trip", func(t *testing.T) {
		store, _ := newStore(t)
		testutil.AssertNoError(t, store.SaveCredential("$2a$10$somebcrypthash"))

		got, err := store.LoadCredential()
		testutil.AssertNoError(t, err)
		if got != "$2a$10$somebcrypthash" {
			t.Errorf("expected stored hash back, got %q", got)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		store, _ := newStore(t)
		testutil.AssertNoError(t, store.SaveCredential("old"))
		testutil.AssertNoError(t, store.SaveCredential("new"))

		got, err := store.LoadCredential()
		testutil.AssertNoError(t, err)
		if got != "new" {
			t.Errorf("expected overwritten hash, got %q", got)
		}
	})

	t.Run("corrupt_file", func(t *testing.T) {
		store, dir := newStore(t)
		if err := os.WriteFile(filepath.Join(dir, "credential.json"), []byte("???"), 0o600); err != nil {
			t.Fatalf("failed to plant corrupt file: %v", err)
		}

		_, err := store.LoadCredential()
		testutil.AssertAppError(t, err, "CORRUPT_STORE")
	})

	t.Run("unreadable_file_is_not_corruption", func(t *testing.T) {
		store, dir := newStore(t)
		if err := os.Mkdir(filepath.Join(dir, "credential.json"), 0o700); err != nil {
			t.Fatalf("failed to plant unreadable credential file: %v", err)
		}

		_, err := store.LoadCredential()
		testutil.AssertAppError(t, err, "STORAGE_READ_FAILED")
	})
}
