package bookstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrBookNotFound  = errors.New("book not found")
	ErrInvalidStock  = errors.New("invalid stock value")
	ErrInvalidPrice  = errors.New("invalid price")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Inventory is the list of books of the store, bound to the file it is
// persisted in.
//
// The Inventory is the single owner of the books: mutations happen in place
// and Save rewrites the whole file, so there is never a stale copy to reload.
// Books keep their insertion order and titles are not unique.
type Inventory struct {
	path    string
	columns []string // header, in file order
	books   []Book
}

// NewInventory creates an empty inventory that will be saved to path.
func NewInventory(path string) *Inventory {
	return &Inventory{
		path:    path,
		columns: slices.Clone(RequiredColumns),
		books:   make([]Book, 0),
	}
}

// Path returns the file the inventory is saved to.
func (inv *Inventory) Path() string { return inv.path }

// Len returns the number of books.
func (inv *Inventory) Len() int { return len(inv.books) }

// IsEmpty returns true if there are no books.
func (inv *Inventory) IsEmpty() bool { return len(inv.books) == 0 }

// Columns returns a copy of the column names in the order they are written.
func (inv *Inventory) Columns() []string { return slices.Clone(inv.columns) }

// Book returns the i-th book.
func (inv *Inventory) Book(i int) Book { return inv.books[i] }

// Books iterates over the books in insertion order.
func (inv *Inventory) Books() iter.Seq[Book] {
	return func(yield func(Book) bool) {
		for _, b := range inv.books {
			if !yield(b) {
				return
			}
		}
	}
}

// Add appends a book at the end of the inventory.
// Required columns missing from the header are appended to it.
func (inv *Inventory) Add(b Book) {
	for _, c := range RequiredColumns {
		if !slices.Contains(inv.columns, c) {
			inv.columns = append(inv.columns, c)
		}
	}
	inv.books = append(inv.books, b)
}

// Find returns the index of the first book whose title equals title,
// ignoring case.
func (inv *Inventory) Find(title string) (int, error) {
	for i, b := range inv.books {
		if strings.EqualFold(b.Title, title) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%q: %w", title, ErrBookNotFound)
}

// Stock returns the parsed stock of the i-th book.
func (inv *Inventory) Stock(i int) Number { return inv.books[i].Count() }

// SetStock replaces the stock of the i-th book with a whole number of copies.
// Negative values are stored as 0.
func (inv *Inventory) SetStock(i int, stock decimal.Decimal) {
	inv.books[i].Stock = decimal.Max(stock, decimal.Zero).Truncate(0).StringFixed(0)
}

// UpdateStock adjusts the stock of the first book matching title.
//
// The operation fails closed: if that book's stock is not a number, the
// inventory is left unchanged, even if another book has the same title.
// Nothing is changed either when dir is NoChange. The caller is responsible
// for saving the inventory when the returned change is effective.
func (inv *Inventory) UpdateStock(title string, dir Direction, amount int64) (StockChange, error) {
	i, err := inv.Find(title)
	if err != nil {
		return StockChange{}, err
	}
	stock := inv.Stock(i)
	if !stock.Valid() {
		return StockChange{}, fmt.Errorf("stock of %q is %q: %w", inv.books[i].Title, inv.books[i].Stock, ErrInvalidStock)
	}
	if amount < 0 {
		return StockChange{}, fmt.Errorf("%d is negative: %w", amount, ErrInvalidAmount)
	}
	change := AdjustStock(stock.Decimal(), dir, amount)
	if change.Effective() {
		inv.SetStock(i, change.After)
	}
	return change, nil
}

// JSON returns the inventory as a generic JSON value: a list of book objects
// as decoded by encoding/json.
func (inv *Inventory) JSON() (any, error) {
	raw, err := json.Marshal(inv.books)
	if err != nil {
		return nil, fmt.Errorf("could not marshal inventory: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("could not unmarshal inventory: %w", err)
	}
	return v, nil
}
