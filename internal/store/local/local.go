// Package local implements the durable record store over four named
// key-value slots, one JSON document per collection. Every mutation
// rewrites the full collection document, which keeps each operation
// atomic per collection without cross-collection transactions.
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"salestracker/backend/internal/domain"
	"salestracker/backend/internal/store"
)

const (
	slotSales     = "sales-tracker-sales"
	slotCustomers = "sales-tracker-customers"
	slotPurchases = "sales-tracker-purchases"
	slotSettings  = "sales-tracker-settings"
)

// SlotStore is the persistence medium: a named slot holds one document.
// Load returns (nil, nil) for an absent slot.
type SlotStore interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, doc []byte) error
}

type Store struct {
	mu        sync.RWMutex
	slots     SlotStore
	sales     []domain.Sale
	customers []domain.Customer
	purchases []domain.Purchase
	settings  domain.Settings
}

// New loads all four slots. Absent slots yield empty collections and
// default settings, never an error.
func New(ctx context.Context, slots SlotStore) (*Store, error) {
	s := &Store{slots: slots}

	if err := loadSlot(ctx, slots, slotSales, &s.sales); err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	if err := loadSlot(ctx, slots, slotCustomers, &s.customers); err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	if err := loadSlot(ctx, slots, slotPurchases, &s.purchases); err != nil {
		return nil, fmt.Errorf("load purchases: %w", err)
	}
	if err := loadSlot(ctx, slots, slotSettings, &s.settings); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	return s, nil
}

func loadSlot(ctx context.Context, slots SlotStore, name string, dest any) error {
	doc, err := slots.Load(ctx, name)
	if err != nil {
		return err
	}
	if len(doc) == 0 {
		return nil
	}
	return json.Unmarshal(doc, dest)
}

// saveSlot encodes the collection and hands it to the medium. A medium
// failure comes back wrapping store.ErrStorage; the caller has already
// applied the mutation in memory, so nothing is lost for the session.
func (s *Store) saveSlot(ctx context.Context, name string, value any) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := s.slots.Save(ctx, name, doc); err != nil {
		return fmt.Errorf("%w: %s: %v", store.ErrStorage, name, err)
	}
	return nil
}

func (s *Store) ListSales(_ context.Context) ([]domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sales := make([]domain.Sale, len(s.sales))
	copy(sales, s.sales)
	return sales, nil
}

func (s *Store) GetSaleByID(_ context.Context, id string) (*domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.sales {
		if s.sales[i].ID == id {
			sale := s.sales[i]
			return &sale, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) CreateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error) {
	if sale.ID == "" {
		return nil, store.ErrInvalidRecord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Newest first, like the ledger view expects.
	s.sales = append([]domain.Sale{sale}, s.sales...)
	created := sale
	return &created, s.saveSlot(ctx, slotSales, s.sales)
}

func (s *Store) UpdateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sales {
		if s.sales[i].ID == sale.ID {
			s.sales[i] = sale
			updated := sale
			return &updated, s.saveSlot(ctx, slotSales, s.sales)
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) DeleteSale(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sales {
		if s.sales[i].ID == id {
			s.sales = append(s.sales[:i], s.sales[i+1:]...)
			return s.saveSlot(ctx, slotSales, s.sales)
		}
	}
	return store.ErrNotFound
}

func (s *Store) BulkCreateSales(ctx context.Context, sales []domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sales = append(s.sales, sales...)
	return s.saveSlot(ctx, slotSales, s.sales)
}

func (s *Store) ListCustomers(_ context.Context) ([]domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := make([]domain.Customer, len(s.customers))
	copy(customers, s.customers)
	return customers, nil
}

func (s *Store) GetCustomerByID(_ context.Context, id string) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			customer := s.customers[i]
			return &customer, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) CreateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	if customer.ID == "" {
		return nil, store.ErrInvalidRecord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = append(s.customers, customer)
	created := customer
	return &created, s.saveSlot(ctx, slotCustomers, s.customers)
}

func (s *Store) UpdateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == customer.ID {
			s.customers[i] = customer
			updated := customer
			return &updated, s.saveSlot(ctx, slotCustomers, s.customers)
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return s.saveSlot(ctx, slotCustomers, s.customers)
		}
	}
	return store.ErrNotFound
}

func (s *Store) DeleteAllCustomers(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = nil
	return s.saveSlot(ctx, slotCustomers, []domain.Customer{})
}

func (s *Store) ListPurchases(_ context.Context) ([]domain.Purchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	purchases := make([]domain.Purchase, len(s.purchases))
	copy(purchases, s.purchases)
	return purchases, nil
}

func (s *Store) CreatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
	if purchase.ID == "" {
		return nil, store.ErrInvalidRecord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.purchases = append([]domain.Purchase{purchase}, s.purchases...)
	created := purchase
	return &created, s.saveSlot(ctx, slotPurchases, s.purchases)
}

func (s *Store) BulkCreatePurchases(ctx context.Context, purchases []domain.Purchase) error {
	if len(purchases) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.purchases = append(s.purchases, purchases...)
	return s.saveSlot(ctx, slotPurchases, s.purchases)
}

func (s *Store) GetSettings(_ context.Context) (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
	return s.saveSlot(ctx, slotSettings, settings)
}
