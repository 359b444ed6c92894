package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopkit/cartsim/internal/core/domain"
	"github.com/shopkit/cartsim/internal/core/logger"
	"github.com/shopkit/cartsim/internal/core/service"
)

const menu = `
1. View All Products
2. Search Product by Name
3. Add to Cart
4. View Cart
5. Update Quantity
6. Remove Item
7. Empty Cart
8. Checkout
9. Exit
`

// Session drives the interactive menu for one user. The cart and catalog
// services are injected; the session only translates input into service
// calls and renders the results. Quantity input that does not parse as an
// integer is rejected here and never reaches the core.
type Session struct {
	id      uuid.UUID
	cart    *service.CartService
	catalog *service.CatalogService
	in      *bufio.Scanner
	out     io.Writer
}

func NewSession(cart *service.CartService, catalog *service.CatalogService, in io.Reader, out io.Writer) *Session {
	return &Session{
		id:      uuid.New(),
		cart:    cart,
		catalog: catalog,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops over the menu until the user exits, input ends, or the context
// is cancelled.
func (s *Session) Run(ctx context.Context) {
	logger.Info(ctx, "Console session started", map[string]any{"session_id": s.id.String()})

	for ctx.Err() == nil {
		fmt.Fprint(s.out, menu)
		choice, ok := s.prompt("Select an option: ")
		if !ok {
			break
		}

		switch choice {
		case "1":
			s.viewProducts(ctx)
		case "2":
			s.searchProducts(ctx)
		case "3":
			s.addToCart(ctx)
		case "4":
			s.viewCart()
		case "5":
			s.updateQuantity(ctx)
		case "6":
			s.removeItem(ctx)
		case "7":
			s.emptyCart(ctx)
		case "8":
			s.checkout(ctx)
		case "9":
			fmt.Fprintln(s.out, "Thank you! Exiting...")
			logger.Info(ctx, "Console session ended", map[string]any{"session_id": s.id.String()})
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice.")
		}
	}

	logger.Info(ctx, "Console session ended", map[string]any{"session_id": s.id.String()})
}

func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) promptInt(label string) (int, bool) {
	raw, ok := s.prompt(label)
	if !ok {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid quantity.")
		return 0, false
	}
	return value, true
}

func (s *Session) viewProducts(ctx context.Context) {
	physical, digital, err := s.catalog.ListByKind(ctx)
	if err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}

	fmt.Fprintln(s.out, "\n--- Physical Products ---")
	for _, product := range physical {
		fmt.Fprintln(s.out, product.Describe())
	}
	fmt.Fprintln(s.out, "\n--- Digital Products ---")
	for _, product := range digital {
		fmt.Fprintln(s.out, product.Describe())
	}
	fmt.Fprintln(s.out)
}

func (s *Session) searchProducts(ctx context.Context) {
	keyword, ok := s.prompt("Enter keyword to search: ")
	if !ok {
		return
	}

	matches, err := s.catalog.Search(ctx, keyword)
	if err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}

	fmt.Fprintf(s.out, "\nSearch Results for '%s':\n", keyword)
	if len(matches) == 0 {
		fmt.Fprintln(s.out, "No products found.")
		return
	}
	for _, product := range matches {
		fmt.Fprintln(s.out, product.Describe())
	}
}

func (s *Session) addToCart(ctx context.Context) {
	productID, ok := s.prompt("Enter product ID: ")
	if !ok {
		return
	}
	quantity, ok := s.promptInt("Enter quantity: ")
	if !ok {
		return
	}

	if err := s.cart.AddItem(ctx, domain.ID(productID), quantity); err != nil {
		fmt.Fprintln(s.out, err.Error())
		fmt.Fprintln(s.out, "Failed to add item.")
		return
	}
	fmt.Fprintf(s.out, "%d x '%s' added to cart.\n", quantity, productID)
}

func (s *Session) viewCart() {
	writeCartView(s.out, s.cart.View())
}

func (s *Session) updateQuantity(ctx context.Context) {
	productID, ok := s.prompt("Enter product ID to update: ")
	if !ok {
		return
	}
	quantity, ok := s.promptInt("Enter new quantity: ")
	if !ok {
		return
	}

	if err := s.cart.UpdateQuantity(ctx, domain.ID(productID), quantity); err != nil {
		fmt.Fprintln(s.out, err.Error())
		fmt.Fprintln(s.out, "Update failed.")
		return
	}
	fmt.Fprintf(s.out, "Updated '%s' to quantity %d.\n", productID, quantity)
}

func (s *Session) removeItem(ctx context.Context) {
	productID, ok := s.prompt("Enter product ID to remove: ")
	if !ok {
		return
	}

	if err := s.cart.RemoveItem(ctx, domain.ID(productID)); err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}
	fmt.Fprintf(s.out, "Removed '%s' from cart.\n", productID)
}

func (s *Session) emptyCart(ctx context.Context) {
	s.cart.EmptyCart(ctx)
	fmt.Fprintln(s.out, "Cart emptied.")
}

func (s *Session) checkout(ctx context.Context) {
	receipt, err := s.cart.Checkout(ctx)
	if err != nil {
		fmt.Fprintln(s.out, "\n--- Checkout Summary ---")
		fmt.Fprintln(s.out, err.Error())
		return
	}
	writeReceipt(s.out, receipt)
}
