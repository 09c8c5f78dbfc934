package bookstore

import (
	"strings"
	"testing"
)

// mustDecode is a helper for test to create an inventory from CSV text.
func mustDecode(t *testing.T, csv string) *Inventory {
	t.Helper()
	inv, err := DecodeInventory(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("DecodeInventory() unexpected error: %v", err)
	}
	return inv
}

// titles returns the titles of books, in order.
func titles(books []Book) []string {
	var ts []string
	for _, b := range books {
		ts = append(ts, b.Title)
	}
	return ts
}

const sampleCSV = `Title,Author,Genre,Cost,Stock
Dune,Frank Herbert,"Sci-Fi, Adventure",9.99,4
Emma,Jane Austen,Romance,7.50,0
Neuromancer,William Gibson,"Sci-Fi, Thriller",12.00,2
Persuasion,Jane Austen,Romance,bad,3
`
