package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

type ID string

// TaxRate is the flat rate applied to the cart subtotal at checkout.
var TaxRate = decimal.New(8, -2)

// Amount is an exact monetary value. Arithmetic is never rounded; rounding
// to two decimals is a display concern only.
type Amount struct {
	dec decimal.Decimal
}

func NewAmount(value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, err
	}
	if d.IsNegative() {
		return Amount{}, errors.New("amount cannot be negative")
	}
	return Amount{dec: d}, nil
}

// MustAmount is for static seed data and tests.
func MustAmount(value string) Amount {
	a, err := NewAmount(value)
	if err != nil {
		panic(err)
	}
	return a
}

func ZeroAmount() Amount {
	return Amount{dec: decimal.Zero}
}

func (a Amount) Add(b Amount) Amount {
	return Amount{dec: a.dec.Add(b.dec)}
}

func (a Amount) Multiply(quantity int) Amount {
	return Amount{dec: a.dec.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Tax returns the tax owed on this amount, unrounded.
func (a Amount) Tax() Amount {
	return Amount{dec: a.dec.Mul(TaxRate)}
}

func (a Amount) Equal(b Amount) bool {
	return a.dec.Equal(b.dec)
}

func (a Amount) IsZero() bool {
	return a.dec.IsZero()
}

func (a Amount) String() string {
	return a.dec.String()
}

// Display renders the amount with exactly two decimal places.
func (a Amount) Display() string {
	return a.dec.StringFixed(2)
}
