package bookstore

import (
	"errors"
	"testing"
)

func TestNewBook(t *testing.T) {
	testCases := []struct {
		name      string
		price     string
		stock     string
		wantErr   error
		wantCost  string
		wantStock string
	}{
		{name: "valid", price: "12.50", stock: "3", wantCost: "12.5", wantStock: "3"},
		{name: "invalid stock defaults to zero", price: "9", stock: "many", wantCost: "9", wantStock: "0"},
		{name: "fractional stock defaults to zero", price: "9", stock: "2.5", wantCost: "9", wantStock: "0"},
		{name: "negative stock is clamped", price: "9", stock: "-4", wantCost: "9", wantStock: "0"},
		{name: "invalid price", price: "cheap", stock: "3", wantErr: ErrInvalidPrice},
		{name: "empty price", price: "", stock: "3", wantErr: ErrInvalidPrice},
		{name: "negative price", price: "-1", stock: "3", wantErr: ErrInvalidPrice},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := NewBook("Dune", "Frank Herbert", "Sci-Fi", tc.price, tc.stock)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("NewBook() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBook() unexpected error: %v", err)
			}
			if b.Cost != tc.wantCost || b.Stock != tc.wantStock {
				t.Errorf("NewBook() Cost, Stock = %q, %q; want %q, %q", b.Cost, b.Stock, tc.wantCost, tc.wantStock)
			}
		})
	}
}
