package bookstore

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Direction of a stock adjustment.
type Direction int

const (
	// NoChange leaves the stock as it is.
	NoChange Direction = iota
	// Increase adds to the stock, without ceiling.
	Increase
	// Decrease removes from the stock, down to zero.
	Decrease
)

func (d Direction) String() string {
	switch d {
	case Increase:
		return "increase"
	case Decrease:
		return "decrease"
	default:
		return "none"
	}
}

// ParseDirection reads the operator's choice: "i" to increase, "d" to
// decrease, case insensitive. Anything else is NoChange.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "i":
		return Increase
	case "d":
		return Decrease
	default:
		return NoChange
	}
}

// StockChange describes the outcome of a stock adjustment.
type StockChange struct {
	Direction  Direction
	Before     decimal.Decimal
	After      decimal.Decimal
	OutOfStock bool // a decrease reached or crossed zero
}

// Effective returns true if the change must be applied and persisted.
func (c StockChange) Effective() bool { return c.Direction != NoChange }

// AdjustStock computes the new stock from current, truncated to a whole
// number of copies. Counts are unbounded. A decrease is clamped at zero and
// flags the book as out of stock when it reaches zero.
func AdjustStock(current decimal.Decimal, dir Direction, amount int64) StockChange {
	current = current.Truncate(0)
	c := StockChange{Direction: dir, Before: current, After: current}
	switch dir {
	case Increase:
		c.After = current.Add(decimal.NewFromInt(amount))
	case Decrease:
		c.After = current.Sub(decimal.NewFromInt(amount))
		if !c.After.IsPositive() {
			c.After = decimal.Zero
			c.OutOfStock = true
		}
	}
	return c
}
