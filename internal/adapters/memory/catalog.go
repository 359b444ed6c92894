package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopkit/cartsim/internal/core/domain"
	"github.com/shopkit/cartsim/internal/core/serviceerrors"
)

// Catalog is the in-memory CatalogPort implementation. Products are stored
// once at construction and handed out by pointer, so stock reserved by the
// cart is reflected in every later read. The set of products never changes
// after construction; only each product's stock does. Iteration follows
// seed order.
type Catalog struct {
	products map[domain.ID]*domain.Product
	order    []domain.ID
}

func NewCatalog(products ...*domain.Product) *Catalog {
	c := &Catalog{
		products: make(map[domain.ID]*domain.Product, len(products)),
		order:    make([]domain.ID, 0, len(products)),
	}
	for _, product := range products {
		if _, ok := c.products[product.ID]; ok {
			continue
		}
		c.products[product.ID] = product
		c.order = append(c.order, product.ID)
	}
	return c
}

func (c *Catalog) GetByID(_ context.Context, id domain.ID) (*domain.Product, error) {
	product, ok := c.products[id]
	if !ok {
		return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("product '%s' not found", id))
	}
	return product, nil
}

func (c *Catalog) GetAll(_ context.Context) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0, len(c.order))
	for _, id := range c.order {
		products = append(products, c.products[id])
	}
	return products, nil
}

func (c *Catalog) Search(_ context.Context, keyword string) ([]*domain.Product, error) {
	needle := strings.ToLower(keyword)

	var matches []*domain.Product
	for _, id := range c.order {
		product := c.products[id]
		if strings.Contains(strings.ToLower(product.Name), needle) {
			matches = append(matches, product)
		}
	}
	return matches, nil
}
