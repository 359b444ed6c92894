package domain

// CartItem is one cart line: a reference into the catalog plus the quantity
// held for it. The product is shared with the catalog, not copied, so the
// line always sees current stock. Subtotals are derived, never stored.
type CartItem struct {
	Product  *Product
	Quantity int
}

func NewCartItem(product *Product, quantity int) *CartItem {
	return &CartItem{
		Product:  product,
		Quantity: quantity,
	}
}

func (i *CartItem) Subtotal() Amount {
	return i.Product.Price.Multiply(i.Quantity)
}

// SetQuantity assigns a new quantity. Negative values are silently ignored;
// callers are expected to validate before reaching this point.
func (i *CartItem) SetQuantity(value int) {
	if value < 0 {
		return
	}
	i.Quantity = value
}
