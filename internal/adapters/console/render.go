package console

import (
	"fmt"
	"io"

	"github.com/shopkit/cartsim/internal/core/dto"
)

// Rendering is the only place amounts get rounded, to two decimals.

func writeCartLines(w io.Writer, lines []dto.CartLine) {
	for _, line := range lines {
		fmt.Fprintf(w, "Item: %s, Quantity: %d, Price: $%s, Subtotal: $%s\n",
			line.ProductName, line.Quantity, line.UnitPrice, line.Subtotal.Display())
	}
}

func writeCartView(w io.Writer, view *dto.CartView) {
	fmt.Fprintln(w, "\n--- Shopping Cart ---")
	if len(view.Lines) == 0 {
		fmt.Fprintln(w, "Cart is empty.")
	}
	writeCartLines(w, view.Lines)
	fmt.Fprintf(w, "Subtotal: $%s\n", view.Subtotal.Display())
	fmt.Fprintf(w, "Tax (8%%): $%s\n", view.Tax.Display())
	fmt.Fprintf(w, "Total: $%s\n\n", view.GrandTotal.Display())
}

func writeReceipt(w io.Writer, receipt *dto.Receipt) {
	fmt.Fprintln(w, "\n--- Checkout Summary ---")
	writeCartLines(w, receipt.Lines)
	fmt.Fprintf(w, "Subtotal: $%s\n", receipt.Subtotal.Display())
	fmt.Fprintf(w, "Tax: $%s\n", receipt.Tax.Display())
	fmt.Fprintf(w, "Grand Total: $%s\n", receipt.GrandTotal.Display())
	fmt.Fprintln(w, "Thank you for your purchase!")
}
