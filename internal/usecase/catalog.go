package usecase

import (
	"context"
	"fmt"
	"strings"

	"barbacoa-pos/internal/domain"
	"barbacoa-pos/internal/money"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

// ProductInput is a new catalog product.
type ProductInput struct {
	Name     string
	Category string
	Price    decimal.Decimal
	Active   bool
}

// CatalogUseCase maintains the products and waitstaff the register picks from.
type CatalogUseCase struct {
	products ProductRepository
	waiters  WaiterRepository
}

// NewCatalogUseCase creates a new instance of the usecase.
func NewCatalogUseCase(products ProductRepository, waiters WaiterRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, waiters: waiters}
}

// Products lists the catalog ordered by category. activeOnly hides retired products.
func (uc *CatalogUseCase) Products(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	products, err := uc.products.ListProducts(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	return products, nil
}

// CreateProduct validates and persists a product.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	name, err := requireText(in.Name, "name")
	if err != nil {
		return nil, err
	}
	category, err := requireText(in.Category, "category")
	if err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must be >= 0", domain.ErrInvalidAmount)
	}

	product := &domain.Product{Name: name, Category: category, Price: money.Round2(in.Price), Active: in.Active}
	if err := uc.products.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	log.Infof("[Catalog] Product %d created: %s %s", product.ID, product.Name, product.Price)
	return product, nil
}

// UpdateProduct applies the non-nil fields of changes to product id.
func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, id int64, changes domain.ProductChanges) (*domain.Product, error) {
	if changes.Empty() {
		return nil, domain.ErrNoChanges
	}
	if changes.Name != nil {
		name, err := requireText(*changes.Name, "name")
		if err != nil {
			return nil, err
		}
		changes.Name = &name
	}
	if changes.Category != nil {
		category, err := requireText(*changes.Category, "category")
		if err != nil {
			return nil, err
		}
		changes.Category = &category
	}
	if changes.Price != nil {
		if changes.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must be >= 0", domain.ErrInvalidAmount)
		}
		price := money.Round2(*changes.Price)
		changes.Price = &price
	}

	product, err := uc.products.UpdateProduct(ctx, id, changes)
	if err != nil {
		return nil, fmt.Errorf("could not update product %d: %w", id, err)
	}
	log.Infof("[Catalog] Product %d updated", id)
	return product, nil
}

// Waiters lists the waitstaff ordered by name. activeOnly hides inactive staff.
func (uc *CatalogUseCase) Waiters(ctx context.Context, activeOnly bool) ([]domain.Waiter, error) {
	waiters, err := uc.waiters.ListWaiters(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("could not list waiters: %w", err)
	}
	return waiters, nil
}

// CreateWaiter persists an active waiter.
func (uc *CatalogUseCase) CreateWaiter(ctx context.Context, name string) (*domain.Waiter, error) {
	name, err := requireText(name, "name")
	if err != nil {
		return nil, err
	}

	waiter := &domain.Waiter{ID: uuid.New(), Name: name, Active: true}
	if err := uc.waiters.CreateWaiter(ctx, waiter); err != nil {
		return nil, fmt.Errorf("could not create waiter: %w", err)
	}
	log.Infof("[Catalog] Waiter %s created: %s", waiter.ID, waiter.Name)
	return waiter, nil
}

// UpdateWaiter applies the non-nil fields of changes to waiter id.
func (uc *CatalogUseCase) UpdateWaiter(ctx context.Context, id uuid.UUID, changes domain.WaiterChanges) (*domain.Waiter, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: waiter id", domain.ErrMissingField)
	}
	if changes.Empty() {
		return nil, domain.ErrNoChanges
	}
	if changes.Name != nil {
		name, err := requireText(*changes.Name, "name")
		if err != nil {
			return nil, err
		}
		changes.Name = &name
	}

	waiter, err := uc.waiters.UpdateWaiter(ctx, id, changes)
	if err != nil {
		return nil, fmt.Errorf("could not update waiter %s: %w", id, err)
	}
	log.Infof("[Catalog] Waiter %s updated", id)
	return waiter, nil
}

func requireText(raw, field string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrMissingField, field)
	}
	return v, nil
}
