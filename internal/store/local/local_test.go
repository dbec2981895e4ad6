package local

import (
	"context"
	"errors"
	"testing"
	"time"

	"salestracker/backend/internal/domain"
	"salestracker/backend/internal/store"
)

func newMemoryStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(context.Background(), NewMemorySlots())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestAbsentSlotsYieldEmptyCollections(t *testing.T) {
	s := newMemoryStore(t)

	sales, err := s.ListSales(context.Background())
	if err != nil {
		t.Fatalf("list sales: %v", err)
	}
	if len(sales) != 0 {
		t.Fatalf("expected empty ledger, got %d sales", len(sales))
	}

	settings, err := s.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if settings.AppName != "" || settings.IsSetup {
		t.Fatalf("expected zero settings, got %+v", settings)
	}
}

func TestCreateSalePrependsNewestFirst(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()

	if _, err := s.CreateSale(ctx, domain.Sale{ID: "sale-1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.CreateSale(ctx, domain.Sale{ID: "sale-2"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	sales, _ := s.ListSales(ctx)
	if sales[0].ID != "sale-2" || sales[1].ID != "sale-1" {
		t.Fatalf("expected newest first, got %s then %s", sales[0].ID, sales[1].ID)
	}
}

func TestBulkCreateSalesAppends(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()

	if _, err := s.CreateSale(ctx, domain.Sale{ID: "sale-1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.BulkCreateSales(ctx, []domain.Sale{{ID: "imported-1"}, {ID: "imported-2"}}); err != nil {
		t.Fatalf("bulk create: %v", err)
	}

	sales, _ := s.ListSales(ctx)
	if len(sales) != 3 {
		t.Fatalf("expected 3 sales, got %d", len(sales))
	}
	if sales[2].ID != "imported-2" {
		t.Fatalf("bulk records must append at the end, got %s", sales[2].ID)
	}
}

func TestCreateSaleWithoutIDRejected(t *testing.T) {
	s := newMemoryStore(t)

	if _, err := s.CreateSale(context.Background(), domain.Sale{}); !errors.Is(err, store.ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
}

func TestGetUpdateDeleteNotFound(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()

	if _, err := s.GetSaleByID(ctx, "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("get: expected ErrNotFound, got %v", err)
	}
	if _, err := s.UpdateSale(ctx, domain.Sale{ID: "nope"}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("update: expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteCustomer(ctx, "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("delete customer: expected ErrNotFound, got %v", err)
	}
}

func TestListReturnsCopies(t *testing.T) {
	s := newMemoryStore(t)
	ctx := context.Background()

	if _, err := s.CreateSale(ctx, domain.Sale{ID: "sale-1", CustomerName: "Ravi"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	sales, _ := s.ListSales(ctx)
	sales[0].CustomerName = "mutated"

	again, _ := s.ListSales(ctx)
	if again[0].CustomerName != "Ravi" {
		t.Fatalf("list must return copies, store saw %q", again[0].CustomerName)
	}
}

func TestFileSlotsRoundTrip(t *testing.T) {
	dir := t.TempDir()

	slots, err := NewFileSlots(dir)
	if err != nil {
		t.Fatalf("new file slots: %v", err)
	}

	first, err := New(context.Background(), slots)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()
	if _, err := first.CreateSale(ctx, domain.Sale{ID: "sale-1", CustomerName: "Ravi", SellingPrice: 1200, CreatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := first.SaveSettings(ctx, domain.Settings{AppName: "My Shop", IsSetup: true}); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	// A fresh store over the same directory sees everything.
	reopened, err := New(ctx, slots)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	sales, _ := reopened.ListSales(ctx)
	if len(sales) != 1 || sales[0].CustomerName != "Ravi" {
		t.Fatalf("reopened sales: %+v", sales)
	}
	settings, _ := reopened.GetSettings(ctx)
	if settings.AppName != "My Shop" || !settings.IsSetup {
		t.Fatalf("reopened settings: %+v", settings)
	}
}

// failingSlots simulates an unavailable persistence medium.
type failingSlots struct{}

func (failingSlots) Load(_ context.Context, _ string) ([]byte, error) { return nil, nil }
func (failingSlots) Save(_ context.Context, _ string, _ []byte) error {
	return errors.New("disk full")
}

func TestMediumFailureKeepsMutationInMemory(t *testing.T) {
	s, err := New(context.Background(), failingSlots{})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	_, err = s.CreateSale(ctx, domain.Sale{ID: "sale-1"})
	if !errors.Is(err, store.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}

	sales, _ := s.ListSales(ctx)
	if len(sales) != 1 {
		t.Fatalf("mutation must survive in memory, got %d sales", len(sales))
	}
}
