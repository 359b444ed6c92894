package service

import (
	"context"
	"fmt"

	"github.com/shopkit/cartsim/internal/core/domain"
	"github.com/shopkit/cartsim/internal/core/dto"
	"github.com/shopkit/cartsim/internal/core/logger"
	"github.com/shopkit/cartsim/internal/core/port"
	"github.com/shopkit/cartsim/internal/core/serviceerrors"
)

// CartService holds the cart state for one session. A product is either
// absent or present as a single line; lines keep the order in which products
// were first added. Every unit held by a line has already been reserved out
// of the catalog's stock.
type CartService struct {
	catalog port.CatalogPort
	items   map[domain.ID]*domain.CartItem
	order   []domain.ID
}

func NewCartService(catalog port.CatalogPort) *CartService {
	return &CartService{
		catalog: catalog,
		items:   make(map[domain.ID]*domain.CartItem),
	}
}

// AddItem reserves quantity units of the product and merges them into the
// cart. Reservation and the line update are one step: on any failure nothing
// has changed.
func (s *CartService) AddItem(ctx context.Context, productID domain.ID, quantity int) error {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		logger.Warn(ctx, "cart: add item, product lookup failed", map[string]any{
			"product_id": productID,
		})
		return err
	}

	if quantity <= 0 {
		return serviceerrors.NewInvalidRequestError("quantity must be greater than zero")
	}

	if !product.Reserve(quantity) {
		return serviceerrors.NewInsufficientStockError(
			fmt.Sprintf("not enough stock for '%s', available: %d", product.Name, product.Stock))
	}

	if item, ok := s.items[productID]; ok {
		// stock already reserved above, only the line moves
		item.SetQuantity(item.Quantity + quantity)
	} else {
		s.items[productID] = domain.NewCartItem(product, quantity)
		s.order = append(s.order, productID)
	}

	logger.Info(ctx, "Item added to cart", map[string]any{
		"product_id": productID,
		"quantity":   quantity,
	})
	return nil
}

// RemoveItem releases the full held quantity back to the catalog and drops
// the line.
func (s *CartService) RemoveItem(ctx context.Context, productID domain.ID) error {
	item, ok := s.items[productID]
	if !ok {
		return serviceerrors.NewNotFoundError(fmt.Sprintf("product '%s' is not in the cart", productID))
	}

	item.Product.Release(item.Quantity)
	delete(s.items, productID)
	s.dropFromOrder(productID)

	logger.Info(ctx, "Item removed from cart", map[string]any{
		"product_id": productID,
		"released":   item.Quantity,
	})
	return nil
}

// UpdateQuantity moves a line to newQuantity, reserving or releasing the
// difference. A failed reservation leaves cart and catalog untouched.
// newQuantity of zero is accepted and keeps the line in the cart at
// quantity zero; use RemoveItem to drop the line.
func (s *CartService) UpdateQuantity(ctx context.Context, productID domain.ID, newQuantity int) error {
	item, ok := s.items[productID]
	if !ok {
		return serviceerrors.NewNotFoundError(fmt.Sprintf("product '%s' is not in the cart", productID))
	}

	if newQuantity < 0 {
		return serviceerrors.NewInvalidRequestError("quantity cannot be negative")
	}

	delta := newQuantity - item.Quantity
	if delta > 0 {
		if !item.Product.Reserve(delta) {
			return serviceerrors.NewInsufficientStockError(
				fmt.Sprintf("not enough stock for '%s', available: %d", item.Product.Name, item.Product.Stock))
		}
	} else {
		item.Product.Release(-delta)
	}
	item.SetQuantity(newQuantity)

	logger.Info(ctx, "Cart quantity updated", map[string]any{
		"product_id": productID,
		"quantity":   newQuantity,
	})
	return nil
}

// EmptyCart releases every held unit back to the catalog and clears all
// lines. It never fails.
func (s *CartService) EmptyCart(ctx context.Context) {
	for _, item := range s.items {
		item.Product.Release(item.Quantity)
	}
	s.items = make(map[domain.ID]*domain.CartItem)
	s.order = nil

	logger.Info(ctx, "Cart emptied", nil)
}

// Items returns the cart lines in display order.
func (s *CartService) Items() []*domain.CartItem {
	items := make([]*domain.CartItem, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id])
	}
	return items
}

func (s *CartService) IsEmpty() bool {
	return len(s.items) == 0
}

// Total sums the line subtotals. Always recomputed, nothing is cached.
func (s *CartService) Total() domain.Amount {
	total := domain.ZeroAmount()
	for _, item := range s.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (s *CartService) Tax() domain.Amount {
	return s.Total().Tax()
}

func (s *CartService) GrandTotal() domain.Amount {
	total := s.Total()
	return total.Add(total.Tax())
}

// View snapshots the cart for display.
func (s *CartService) View() *dto.CartView {
	return &dto.CartView{
		Lines:      s.lines(),
		Subtotal:   s.Total(),
		Tax:        s.Tax(),
		GrandTotal: s.GrandTotal(),
	}
}

// Checkout settles the cart as a completed sale. The lines are cleared but
// the reserved stock is NOT released: the units are sold. Contrast with
// EmptyCart, which returns stock to the catalog.
func (s *CartService) Checkout(ctx context.Context) (*dto.Receipt, error) {
	if len(s.items) == 0 {
		return nil, serviceerrors.NewUnprocessableEntityError("cart is empty, nothing to check out")
	}

	receipt := &dto.Receipt{
		Lines:      s.lines(),
		Subtotal:   s.Total(),
		Tax:        s.Tax(),
		GrandTotal: s.GrandTotal(),
	}

	s.items = make(map[domain.ID]*domain.CartItem)
	s.order = nil

	logger.Info(ctx, "Checkout completed", map[string]any{
		"lines":       len(receipt.Lines),
		"grand_total": receipt.GrandTotal.String(),
	})
	return receipt, nil
}

func (s *CartService) lines() []dto.CartLine {
	lines := make([]dto.CartLine, 0, len(s.order))
	for _, id := range s.order {
		item := s.items[id]
		lines = append(lines, dto.CartLine{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.Product.Price,
			Subtotal:    item.Subtotal(),
		})
	}
	return lines
}

func (s *CartService) dropFromOrder(productID domain.ID) {
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
