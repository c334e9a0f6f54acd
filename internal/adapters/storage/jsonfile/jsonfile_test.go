package jsonfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"menucard/internal/adapters/storage/jsonfile"
)

type record struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

func newTestCollection(t *testing.T, initial string) *jsonfile.Collection[record] {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte(initial), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return jsonfile.New[record](path)
}

// TestCollection_LoadMutateRoundTrip tests that records written by Mutate
// come back from Load in the same order.
func TestCollection_LoadMutateRoundTrip(t *testing.T) {
	coll := newTestCollection(t, "[]")

	err := coll.Mutate(func(records []record) ([]record, error) {
		return append(records,
			record{ID: "1", Value: "first"},
			record{ID: "2", Value: "second"},
		), nil
	})
	if err != nil {
		t.Fatalf("Mutate failed: %v", err)
	}

	records, err := coll.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != "1" || records[1].ID != "2" {
		t.Errorf("order not preserved: %+v", records)
	}
}

// TestCollection_MutateErrorLeavesFileUnchanged tests that a mutation error
// aborts the write.
func TestCollection_MutateErrorLeavesFileUnchanged(t *testing.T) {
	coll := newTestCollection(t, `[{"id":"1","value":"keep"}]`)

	wantErr := errors.New("boom")
	err := coll.Mutate(func(records []record) ([]record, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Mutate error = %v, want %v", err, wantErr)
	}

	records, err := coll.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 1 || records[0].Value != "keep" {
		t.Errorf("file changed despite aborted mutation: %+v", records)
	}
}

// TestCollection_ParseFailureIsWrapped tests that malformed JSON surfaces
// as an error naming the file.
func TestCollection_ParseFailureIsWrapped(t *testing.T) {
	coll := newTestCollection(t, "not json at all")

	_, err := coll.Load()
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
	if !strings.Contains(err.Error(), "records.json") {
		t.Errorf("error does not name the file: %v", err)
	}
}

// TestCollection_MissingFileErrors tests that a missing backing file is an
// error, not an empty collection.
func TestCollection_MissingFileErrors(t *testing.T) {
	coll := jsonfile.New[record](filepath.Join(t.TempDir(), "absent.json"))

	if _, err := coll.Load(); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

// TestCollection_ConcurrentMutateLosesNoUpdates tests that overlapping
// read-modify-write cycles cannot discard each other's appends.
func TestCollection_ConcurrentMutateLosesNoUpdates(t *testing.T) {
	coll := newTestCollection(t, "[]")

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			err := coll.Mutate(func(records []record) ([]record, error) {
				return append(records, record{ID: string(rune('a' + n%26)), Value: "v"}), nil
			})
			if err != nil {
				t.Errorf("Mutate failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	records, err := coll.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != writers {
		t.Errorf("got %d records, want %d (lost updates)", len(records), writers)
	}
}

// TestCollection_SaveIsPrettyPrinted tests the on-disk format stays a
// readable indented array.
func TestCollection_SaveIsPrettyPrinted(t *testing.T) {
	coll := newTestCollection(t, "[]")

	if err := coll.Mutate(func(records []record) ([]record, error) {
		return append(records, record{ID: "1", Value: "v"}), nil
	}); err != nil {
		t.Fatalf("Mutate failed: %v", err)
	}

	raw, err := os.ReadFile(coll.Path())
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if !strings.Contains(string(raw), "\n  {") {
		t.Errorf("document is not pretty-printed:\n%s", raw)
	}
}
