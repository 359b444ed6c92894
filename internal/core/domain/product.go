package domain

import "fmt"

type ProductKind string

const (
	ProductKindPhysical ProductKind = "physical"
	ProductKindDigital  ProductKind = "digital"
)

func (k ProductKind) IsValid() bool {
	return k == ProductKindPhysical || k == ProductKindDigital
}

// Product is one catalog entry. Identity, name and price are fixed at
// construction; Stock moves only through Reserve and Release.
type Product struct {
	ID    ID
	Name  string
	Price Amount
	Stock int
	Kind  ProductKind

	// Variant fields, display only.
	Weight       float64
	DownloadLink string
}

func NewPhysicalProduct(id ID, name string, price Amount, stock int, weight float64) *Product {
	return &Product{
		ID:     id,
		Name:   name,
		Price:  price,
		Stock:  stock,
		Kind:   ProductKindPhysical,
		Weight: weight,
	}
}

func NewDigitalProduct(id ID, name string, price Amount, stock int, downloadLink string) *Product {
	return &Product{
		ID:           id,
		Name:         name,
		Price:        price,
		Stock:        stock,
		Kind:         ProductKindDigital,
		DownloadLink: downloadLink,
	}
}

// Reserve takes amount units out of the available stock. It fails without
// side effect when amount is not positive or exceeds the available stock,
// so Stock can never go negative.
func (p *Product) Reserve(amount int) bool {
	if amount <= 0 || amount > p.Stock {
		return false
	}
	p.Stock -= amount
	return true
}

// Release returns amount units to the available stock. There is no upper
// bound: the catalog models restocks, not a capacity ceiling.
func (p *Product) Release(amount int) {
	if amount <= 0 {
		return
	}
	p.Stock += amount
}

// Describe renders the product for display, including the variant field.
func (p *Product) Describe() string {
	switch p.Kind {
	case ProductKindPhysical:
		return fmt.Sprintf("[Physical] ID: %s, Name: %s, Price: $%s, Stock: %d, Weight: %.1fkg",
			p.ID, p.Name, p.Price, p.Stock, p.Weight)
	case ProductKindDigital:
		return fmt.Sprintf("[Digital] ID: %s, Name: %s, Price: $%s, Download Link: %s",
			p.ID, p.Name, p.Price, p.DownloadLink)
	}
	return fmt.Sprintf("ID: %s, Name: %s, Price: $%s, Stock: %d", p.ID, p.Name, p.Price, p.Stock)
}
