package bookstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T int | int64 | float64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Number is the result of parsing a numeric cell of the inventory.
//
// It either holds a decimal value or is invalid. The zero value is invalid.
type Number struct {
	value decimal.Decimal
	valid bool
}

// missingValues are cell contents read as "no value" by spreadsheet tools,
// compared lower case.
var missingValues = map[string]bool{
	"nan":  true,
	"na":   true,
	"n/a":  true,
	"null": true,
	"none": true,
}

// N returns a valid Number.
func N[T int | int64 | float64 | decimal.Decimal](value T) Number {
	return Number{value: newDecimal(value), valid: true}
}

// ParseNumber parses a cell into a Number.
// Blank cells, missing value markers and anything that is not a decimal
// number produce an invalid Number.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" || missingValues[strings.ToLower(s)] {
		return Number{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Number{}
	}
	return Number{value: d, valid: true}
}

func (n Number) Valid() bool              { return n.valid }
func (n Number) Decimal() decimal.Decimal { return n.value }

// Whole returns the integer part of the number, truncated toward zero.
func (n Number) Whole() decimal.Decimal { return n.value.Truncate(0) }

// String returns the decimal representation, or "" if the number is invalid.
func (n Number) String() string {
	if !n.valid {
		return ""
	}
	return n.value.String()
}

// ParseAmount parses a count typed by the operator: a non negative integer.
func ParseAmount(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidAmount)
	}
	if v < 0 {
		return 0, fmt.Errorf("%q is negative: %w", s, ErrInvalidAmount)
	}
	return v, nil
}
