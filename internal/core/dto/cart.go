package dto

import "github.com/shopkit/cartsim/internal/core/domain"

// CartLine is one cart line as shown to the front end.
type CartLine struct {
	ProductID   domain.ID
	ProductName string
	Quantity    int
	UnitPrice   domain.Amount
	Subtotal    domain.Amount
}

// CartView is a snapshot of the cart contents with derived totals.
type CartView struct {
	Lines      []CartLine
	Subtotal   domain.Amount
	Tax        domain.Amount
	GrandTotal domain.Amount
}

// Receipt is handed to the front end after a successful checkout. The lines
// it lists are gone from the cart by the time the caller sees it.
type Receipt struct {
	Lines      []CartLine
	Subtotal   domain.Amount
	Tax        domain.Amount
	GrandTotal domain.Amount
}
