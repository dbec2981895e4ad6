package store

import (
	"context"
	"errors"

	"salestracker/backend/internal/domain"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidRecord = errors.New("invalid record")

	// ErrStorage means the persistence medium rejected a write. The
	// in-memory state keeps the mutation; callers surface a warning
	// instead of dropping data.
	ErrStorage = errors.New("storage unavailable")

	// ErrImport means a spreadsheet could not be read. No partial
	// records are ever committed under this error.
	ErrImport = errors.New("import failed")
)

type Repository interface {
	ListSales(ctx context.Context) ([]domain.Sale, error)
	GetSaleByID(ctx context.Context, id string) (*domain.Sale, error)
	CreateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error)
	UpdateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error)
	DeleteSale(ctx context.Context, id string) error
	BulkCreateSales(ctx context.Context, sales []domain.Sale) error

	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	DeleteAllCustomers(ctx context.Context) error

	ListPurchases(ctx context.Context) ([]domain.Purchase, error)
	CreatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error)
	BulkCreatePurchases(ctx context.Context, purchases []domain.Purchase) error

	GetSettings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
}
