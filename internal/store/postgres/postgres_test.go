package postgres

import (
	"bytes"
	"context"
	"os"
	"testing"

	"salestracker/backend/internal/store/local"
)

// Integration test; runs only when TEST_DATABASE_URL points at a
// disposable database.
func TestSlotsRoundTrip(t *testing.T) {
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	slots, err := New(ctx, databaseURL)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer slots.Close()

	// Absent slot reads back empty.
	doc, err := slots.Load(ctx, "test-absent-slot")
	if err != nil {
		t.Fatalf("load absent: %v", err)
	}
	if doc != nil {
		t.Fatalf("absent slot: got %q", doc)
	}

	payload := []byte(`[{"id":"sale-1"}]`)
	if err := slots.Save(ctx, "test-roundtrip-slot", payload); err != nil {
		t.Fatalf("save: %v", err)
	}
	doc, err = slots.Load(ctx, "test-roundtrip-slot")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bytes.Equal(doc, payload) {
		t.Fatalf("round trip: got %q", doc)
	}

	// Upsert replaces, never duplicates.
	replaced := []byte(`[]`)
	if err := slots.Save(ctx, "test-roundtrip-slot", replaced); err != nil {
		t.Fatalf("resave: %v", err)
	}
	doc, _ = slots.Load(ctx, "test-roundtrip-slot")
	if !bytes.Equal(doc, replaced) {
		t.Fatalf("upsert: got %q", doc)
	}

	// The medium has to satisfy the store's contract.
	var _ local.SlotStore = slots
}
