package bookstore

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// Columns every inventory file is expected to have.
const (
	ColumnTitle  = "Title"
	ColumnAuthor = "Author"
	ColumnGenre  = "Genre"
	ColumnCost   = "Cost"
	ColumnStock  = "Stock"
)

// RequiredColumns lists the known columns in the order used for new files.
var RequiredColumns = []string{ColumnTitle, ColumnAuthor, ColumnGenre, ColumnCost, ColumnStock}

// Book is one row of the inventory.
//
// Cost and Stock hold the raw cell text so that a malformed value is written
// back exactly as it was read. Use Price and Count to get their numeric value.
type Book struct {
	Title  string
	Author string
	Genre  string
	Cost   string
	Stock  string

	extra map[string]string // columns unknown to the bookstore, by header name
}

// Price returns the parsed Cost cell.
func (b Book) Price() Number { return ParseNumber(b.Cost) }

// Count returns the parsed Stock cell.
func (b Book) Count() Number { return ParseNumber(b.Stock) }

// Get returns the cell value of the column, or "" if the book has none.
func (b Book) Get(column string) string {
	switch column {
	case ColumnTitle:
		return b.Title
	case ColumnAuthor:
		return b.Author
	case ColumnGenre:
		return b.Genre
	case ColumnCost:
		return b.Cost
	case ColumnStock:
		return b.Stock
	default:
		return b.extra[column]
	}
}

// set sets the cell value of the column.
func (b *Book) set(column, value string) {
	switch column {
	case ColumnTitle:
		b.Title = value
	case ColumnAuthor:
		b.Author = value
	case ColumnGenre:
		b.Genre = value
	case ColumnCost:
		b.Cost = value
	case ColumnStock:
		b.Stock = value
	default:
		if b.extra == nil {
			b.extra = make(map[string]string)
		}
		b.extra[column] = value
	}
}

// Genres returns the labels packed in the Genre cell: comma separated,
// trimmed, empty labels dropped. Case is preserved.
func (b Book) Genres() []string {
	var labels []string
	for _, g := range strings.Split(b.Genre, ",") {
		if g = strings.TrimSpace(g); g != "" {
			labels = append(labels, g)
		}
	}
	return labels
}

// MarshalJSON renders the book as a JSON object.
// Cost and Stock are numbers, or null when the cell is invalid. Extra columns
// with a value follow as strings, sorted by name.
func (b Book) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append(ColumnTitle, b.Title)
	w.Append(ColumnAuthor, b.Author)
	w.Append(ColumnGenre, b.Genre)
	w.Append(ColumnCost, jsonNumber(b.Price()))
	w.Append(ColumnStock, jsonNumber(b.Count()))
	for _, k := range slices.Sorted(maps.Keys(b.extra)) {
		w.Optional(k, b.extra[k])
	}
	return w.MarshalJSON()
}

// jsonNumber returns the value to marshal for n: an exact json.Number or nil.
func jsonNumber(n Number) any {
	if !n.Valid() {
		return nil
	}
	return json.Number(n.String())
}
