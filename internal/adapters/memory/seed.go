package memory

import "github.com/shopkit/cartsim/internal/core/domain"

// SampleProducts is the fixed ten-record catalog seed used by the console
// front end.
func SampleProducts() []*domain.Product {
	return []*domain.Product{
		domain.NewPhysicalProduct("P001", "Laptop", domain.MustAmount("999.99"), 10, 2.5),
		domain.NewPhysicalProduct("P002", "Smartphone", domain.MustAmount("499.99"), 20, 0.3),
		domain.NewPhysicalProduct("P003", "Headphones", domain.MustAmount("89.99"), 15, 0.2),
		domain.NewPhysicalProduct("P004", "Keyboard", domain.MustAmount("49.99"), 30, 0.8),
		domain.NewPhysicalProduct("P005", "Monitor", domain.MustAmount("179.99"), 12, 4.0),
		domain.NewDigitalProduct("D001", "Antivirus Software", domain.MustAmount("29.99"), 100, "https://download.com/antivirus"),
		domain.NewDigitalProduct("D002", "Photo Editor", domain.MustAmount("59.99"), 100, "https://download.com/photoeditor"),
		domain.NewDigitalProduct("D003", "Music Album", domain.MustAmount("9.99"), 200, "https://download.com/music"),
		domain.NewDigitalProduct("D004", "E-book", domain.MustAmount("14.99"), 150, "https://download.com/ebook"),
		domain.NewDigitalProduct("D005", "Online Course", domain.MustAmount("199.99"), 50, "https://download.com/course"),
	}
}
