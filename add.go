package bookstore

import (
	"fmt"
	"strconv"
	"strings"
)

// NewBook builds a book from the values typed by the operator.
//
// The price must be a non negative decimal number, otherwise ErrInvalidPrice
// is returned. The stock is more lenient: anything that is not an integer
// counts as 0, and negative counts are clamped to 0.
func NewBook(title, author, genre, price, stock string) (Book, error) {
	p := ParseNumber(price)
	if !p.Valid() {
		return Book{}, fmt.Errorf("%q: %w", price, ErrInvalidPrice)
	}
	if p.Decimal().IsNegative() {
		return Book{}, fmt.Errorf("%q is negative: %w", price, ErrInvalidPrice)
	}
	count, err := strconv.ParseInt(strings.TrimSpace(stock), 10, 64)
	if err != nil {
		count = 0
	}
	return Book{
		Title:  title,
		Author: author,
		Genre:  genre,
		Cost:   p.String(),
		Stock:  strconv.FormatInt(max(count, 0), 10),
	}, nil
}
