package domain

import (
	"strings"
	"testing"
)

func TestNewPhysicalProduct(t *testing.T) {
	p := NewPhysicalProduct("P001", "Laptop", MustAmount("999.99"), 10, 2.5)

	if p.ID != "P001" {
		t.Fatalf("expected ID 'P001', got %q", p.ID)
	}
	if p.Name != "Laptop" {
		t.Fatalf("expected name 'Laptop', got %q", p.Name)
	}
	if !p.Price.Equal(MustAmount("999.99")) {
		t.Fatalf("expected price 999.99, got %s", p.Price)
	}
	if p.Stock != 10 {
		t.Fatalf("expected stock 10, got %d", p.Stock)
	}
	if p.Kind != ProductKindPhysical {
		t.Fatalf("expected physical kind, got %q", p.Kind)
	}
	if p.Weight != 2.5 {
		t.Fatalf("expected weight 2.5, got %v", p.Weight)
	}
}

func TestNewDigitalProduct(t *testing.T) {
	p := NewDigitalProduct("D001", "Antivirus Software", MustAmount("29.99"), 100, "https://download.com/antivirus")

	if p.Kind != ProductKindDigital {
		t.Fatalf("expected digital kind, got %q", p.Kind)
	}
	if p.DownloadLink != "https://download.com/antivirus" {
		t.Fatalf("unexpected download link %q", p.DownloadLink)
	}
}

func TestProductKind_IsValid(t *testing.T) {
	tests := []struct {
		name string
		kind ProductKind
		want bool
	}{
		{"physical", ProductKindPhysical, true},
		{"digital", ProductKindDigital, true},
		{"empty", ProductKind(""), false},
		{"unknown", ProductKind("virtual"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestProduct_Reserve(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		amount    int
		want      bool
		wantStock int
	}{
		{"partial reservation", 10, 3, true, 7},
		{"entire stock", 10, 10, true, 0},
		{"exceeds stock", 10, 11, false, 10},
		{"zero amount", 10, 0, false, 10},
		{"negative amount", 10, -1, false, 10},
		{"empty stock", 0, 1, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPhysicalProduct("P001", "Laptop", MustAmount("999.99"), tt.stock, 2.5)
			if got := p.Reserve(tt.amount); got != tt.want {
				t.Fatalf("Reserve(%d) = %v, want %v", tt.amount, got, tt.want)
			}
			if p.Stock != tt.wantStock {
				t.Fatalf("stock after Reserve(%d) = %d, want %d", tt.amount, p.Stock, tt.wantStock)
			}
			if p.Stock < 0 {
				t.Fatal("stock went negative")
			}
		})
	}
}

func TestProduct_Release(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		amount    int
		wantStock int
	}{
		{"simple release", 7, 3, 10},
		{"no capacity ceiling", 10, 1000, 1010},
		{"zero ignored", 10, 0, 10},
		{"negative ignored", 10, -5, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewDigitalProduct("D001", "E-book", MustAmount("14.99"), tt.stock, "https://download.com/ebook")
			p.Release(tt.amount)
			if p.Stock != tt.wantStock {
				t.Fatalf("stock after Release(%d) = %d, want %d", tt.amount, p.Stock, tt.wantStock)
			}
		})
	}
}

func TestProduct_Describe(t *testing.T) {
	t.Run("physical shows weight", func(t *testing.T) {
		p := NewPhysicalProduct("P001", "Laptop", MustAmount("999.99"), 10, 2.5)
		got := p.Describe()
		want := "[Physical] ID: P001, Name: Laptop, Price: $999.99, Stock: 10, Weight: 2.5kg"
		if got != want {
			t.Fatalf("Describe() = %q, want %q", got, want)
		}
	})

	t.Run("digital shows download link", func(t *testing.T) {
		p := NewDigitalProduct("D003", "Music Album", MustAmount("9.99"), 200, "https://download.com/music")
		got := p.Describe()
		want := "[Digital] ID: D003, Name: Music Album, Price: $9.99, Download Link: https://download.com/music"
		if got != want {
			t.Fatalf("Describe() = %q, want %q", got, want)
		}
	})

	t.Run("digital hides stock", func(t *testing.T) {
		p := NewDigitalProduct("D001", "Antivirus Software", MustAmount("29.99"), 100, "https://download.com/antivirus")
		if strings.Contains(p.Describe(), "Stock") {
			t.Fatalf("digital description should not mention stock: %q", p.Describe())
		}
	})
}
