package storage_test

import (
	"reflect"
	"testing"
	"time"

	"stridelog/internal/models"
	"stridelog/internal/storage"
	"stridelog/internal/testutil"
)

func TestGormStoreRecords(t *testing.T) {
	t.Run("fresh_store_loads_empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := storage.NewGormStore(db)

		records, err := store.LoadRecords()
		testutil.AssertNoError(t, err)
		if len(records) != 0 {
			t.Errorf("expected no records, got %d", len(records))
		}
	})

	t.Run("round_trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := storage.NewGormStore(db)

		want := testutil.RecordMap(
			testutil.Record(time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)),
			testutil.Record(time.Date(2024, 3, 2, 21, 15, 42, 0, time.UTC)),
		)
		testutil.AssertNoError(t, store.SaveRecords(want))

		got, err := store.LoadRecords()
		testutil.AssertNoError(t, err)

		if len(got) != len(want) {
			t.Fatalf("expected %d records, got %d", len(want), len(got))
		}
		for day, w := range want {
			g, ok := got[day]
			if !ok {
				t.Errorf("missing record for %s", day)
				continue
			}
			// Compare timestamps separately: the driver may change the
			// location representation without changing the instant.
			if !g.RecordedAt.Equal(w.RecordedAt) {
				t.Errorf("day %s: expected timestamp %v, got %v", day, w.RecordedAt, g.RecordedAt)
			}
			g.RecordedAt = w.RecordedAt
			if !reflect.DeepEqual(g, w) {
				t.Errorf("day %s mismatch:\n got %+v\nwant %+v", day, g, w)
			}
		}
	})

	t.Run("save_replaces_previous_mapping", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := storage.NewGormStore(db)

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

	t.Run("save_empty_mapping_clears_table", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := storage.NewGormStore(db)

		record := testutil.Record(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
		testutil.AssertNoError(t, store.SaveRecords(testutil.RecordMap(record)))
		testutil.AssertNoError(t, store.SaveRecords(map[string]models.ActivityRecord{}))

		got, err := store.LoadRecords()
		testutil.AssertNoError(t, err)
		if len(got) != 0 {
			t.Errorf("expected cleared table, got %d records", len(got))
		}
	})
}

func TestGormStoreCredential(t *testing.T) {
	t.Run("not_set", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := storage.NewGormStore(db)

		_, err := store.LoadCredential()
		testutil.AssertAppError(t, err, "CREDENTIAL_NOT_SET")
	})

	t.Run("set_and_load", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := storage.NewGormStore(db)

		testutil.AssertNoError(t, store.SaveCredential("$2a$10$somebcrypthash"))

		got, err := store.LoadCredential()
		testutil.AssertNoError(t, err)
		if got != "$2a$10$somebcrypthash" {
			t.Errorf("expected stored hash back, got %q", got)
		}
	})

	t.Run("update_keeps_single_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := storage.NewGormStore(db)

		testutil.AssertNoError(t, store.SaveCredential("old"))
		testutil.AssertNoError(t, store.SaveCredential("new"))

		got, err := store.LoadCredential()
		testutil.AssertNoError(t, err)
		if got != "new" {
			t.Errorf("expected updated hash, got %q", got)
		}

		var count int64
		if err := db.Model(&models.Credential{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count credentials: %v", err)
		}
		if count != 1 {
			t.Errorf("expected a single credential row, got %d", count)
		}
	})
}
