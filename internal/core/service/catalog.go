package service

import (
	"context"

	"github.com/shopkit/cartsim/internal/core/domain"
	"github.com/shopkit/cartsim/internal/core/logger"
	"github.com/shopkit/cartsim/internal/core/port"
)

type CatalogService struct {
	catalog port.CatalogPort
}

func NewCatalogService(catalog port.CatalogPort) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListByKind returns the catalog partitioned for display, physical products
// first, each partition in catalog order.
func (s *CatalogService) ListByKind(ctx context.Context) (physical, digital []*domain.Product, err error) {
	products, err := s.catalog.GetAll(ctx)
	if err != nil {
		logger.Error(ctx, "catalog: list failed", err, nil)
		return nil, nil, err
	}

	for _, product := range products {
		switch product.Kind {
		case domain.ProductKindPhysical:
			physical = append(physical, product)
		case domain.ProductKindDigital:
			digital = append(digital, product)
		}
	}
	return physical, digital, nil
}

// Search matches the keyword case-insensitively against product names and
// returns the hits in catalog order.
func (s *CatalogService) Search(ctx context.Context, keyword string) ([]*domain.Product, error) {
	matches, err := s.catalog.Search(ctx, keyword)
	if err != nil {
		logger.Error(ctx, "catalog: search failed", err, map[string]any{
			"keyword": keyword,
		})
		return nil, err
	}

	logger.Debug(ctx, "catalog search", map[string]any{
		"keyword": keyword,
		"matches": len(matches),
	})
	return matches, nil
}
