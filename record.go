package stockman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Record is one stock line as read from a CSV file.
//
// There is no identity beyond its position in the consolidated table:
// the same record appearing in two files yields two entries.
type Record struct {
	Name     string
	Quantity int64
	Price    Price
	Category string
}

// Price is a non-negative monetary value.
//
// It wraps a decimal to keep arithmetic exact: summing and averaging
// prices for the report must round-trip through CSV without float
// noise.
type Price struct {
	value decimal.Decimal
}

// P creates a Price from a float constant. Mostly useful in tests.
func P(v float64) Price { return Price{value: decimal.NewFromFloat(v)} }

// ParsePrice parses a price from its CSV cell representation.
// It rejects negative values and anything that is not a number.
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if d.IsNegative() {
		return Price{}, fmt.Errorf("invalid price %q: cannot be negative", s)
	}
	return Price{value: d}, nil
}

// ParseQuantity parses a quantity from its CSV cell representation.
// A quantity is a non-negative integer.
func ParseQuantity(s string) (int64, error) {
	q, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: not an integer", s)
	}
	if q < 0 {
		return 0, fmt.Errorf("invalid quantity %q: cannot be negative", s)
	}
	return q, nil
}

func (p Price) Equal(q Price) bool       { return p.value.Equal(q.value) }
func (p Price) LessThan(q Price) bool    { return p.value.LessThan(q.value) }
func (p Price) GreaterThan(q Price) bool { return p.value.GreaterThan(q.value) }
func (p Price) IsZero() bool             { return p.value.IsZero() }
func (p Price) IsPositive() bool         { return p.value.IsPositive() }

func (p Price) Add(q Price) Price { return Price{value: p.value.Add(q.value)} }

// Div divides the price by n. n must not be zero.
func (p Price) Div(n int64) Price {
	return Price{value: p.value.Div(decimal.NewFromInt(n))}
}

// Round returns the price rounded to 'places' decimal places.
func (p Price) Round(places int32) Price {
	return Price{value: p.value.Round(places)}
}

// String returns the plain decimal representation, the one written to
// CSV files.
func (p Price) String() string { return p.value.String() }

// Format renders the price for display. With an ISO 4217 currency code
// it uses the currency's own formatter (symbol, fraction digits,
// thousand separators); with the empty string it falls back to the
// plain decimal representation.
func (p Price) Format(currency string) string {
	if currency == "" {
		return p.String()
	}
	// to get a never nil currency we go through the money constructor
	cur := money.New(0, currency).Currency()
	minor := p.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}
