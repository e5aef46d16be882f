package stockman

import (
	"errors"
	"fmt"
)

// ErrUnknownColumn reports a search on a column that is not one of the
// four recognized fields.
var ErrUnknownColumn = errors.New("unknown column")

// Field identifies one of the four columns of a stock record.
//
// Searches address columns by name on the command line; ParseField maps
// those names onto this closed set so that a typo fails loudly instead
// of silently matching nothing.
type Field int

const (
	// FieldName is the 'name' column.
	FieldName Field = iota
	// FieldQuantity is the 'quantity' column.
	FieldQuantity
	// FieldPrice is the 'price' column.
	FieldPrice
	// FieldCategory is the 'category' column.
	FieldCategory
)

// Fields lists all recognized fields in CSV column order.
var Fields = []Field{FieldName, FieldQuantity, FieldPrice, FieldCategory}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldQuantity:
		return "quantity"
	case FieldPrice:
		return "price"
	case FieldCategory:
		return "category"
	default:
		return "unknown"
	}
}

// ParseField parses a column name into a Field.
func ParseField(s string) (Field, error) {
	switch s {
	case "name":
		return FieldName, nil
	case "quantity":
		return FieldQuantity, nil
	case "price":
		return FieldPrice, nil
	case "category":
		return FieldCategory, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected name, quantity, price or category)", ErrUnknownColumn, s)
	}
}
