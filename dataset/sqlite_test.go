package dataset

import (
	"context"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(":memory:")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	runID, err := store.BeginRun(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runID == "" {
		t.Fatal("run id is empty")
	}

	record := sampleRecord(t, "hard")
	if err := store.SaveRecord(ctx, runID, "maps/hard/a.osu", record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.SaveRecord(ctx, runID, "maps/hard/b.osu", record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, err := store.RecordCount(ctx, runID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("record count = %d, want 2", count)
	}

	// Records are grouped per run: a fresh run sees none of them.
	otherRun, err := store.BeginRun(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count, err = store.RecordCount(ctx, otherRun)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Fatalf("record count for fresh run = %d, want 0", count)
	}
}
