package usecase

import (
	"context"
	"strings"

	"shopsync/internal/domain/entity"
	"shopsync/internal/domain/repository"
)

type CatalogUseCase struct {
	products repository.ProductRemote
}

func NewCatalogUseCase(products repository.ProductRemote) *CatalogUseCase {
	return &CatalogUseCase{
		products: products,
	}
}

// SearchOptions narrow a fetched product page client-side. A zero MaxPrice
// means no upper bound.
type SearchOptions struct {
	Keyword  string
	Category string
	MinPrice float64
	MaxPrice float64
}

func (u *CatalogUseCase) List(ctx context.Context, query repository.ProductQuery) ([]entity.Product, int64, error) {
	return u.products.List(ctx, query)
}

func (u *CatalogUseCase) GetByID(ctx context.Context, productID string) (*entity.Product, error) {
	return u.products.GetByID(ctx, productID)
}

// Search fetches a page from the catalog and filters it locally.
func (u *CatalogUseCase) Search(ctx context.Context, query repository.ProductQuery, opts SearchOptions) ([]entity.Product, error) {
	items, _, err := u.products.List(ctx, query)
	if err != nil {
		return nil, err
	}
	return FilterProducts(items, opts), nil
}

// FilterProducts applies keyword, category and price-range filters to an
// already fetched product list.
func FilterProducts(items []entity.Product, opts SearchOptions) []entity.Product {
	keyword := strings.ToLower(strings.TrimSpace(opts.Keyword))
	category := strings.ToLower(strings.TrimSpace(opts.Category))

	var out []entity.Product
	for _, p := range items {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(p.Title), keyword) &&
			!strings.Contains(strings.ToLower(p.Description), keyword) {
			continue
		}
		if category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		if p.Price < opts.MinPrice {
			continue
		}
		if opts.MaxPrice > 0 && p.Price > opts.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}
