package port

import (
	"context"

	"github.com/shopkit/cartsim/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// CatalogPort reads the product catalog. Implementations hand out live
// product pointers, so stock reserved through one lookup is visible to
// every later lookup of the same product.
type CatalogPort interface {
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	Search(ctx context.Context, keyword string) ([]*domain.Product, error)
}
