package bookstore

// NewListing returns the first limit books of the inventory.
// A non positive limit is replaced by DefaultListingLimit.
func NewListing(inv *Inventory, limit int) *Listing {
	if limit <= 0 {
		limit = DefaultListingLimit
	}
	n := min(limit, inv.Len())
	books := make([]Book, n)
	copy(books, inv.books[:n])
	return &Listing{
		Books: books,
		Total: inv.Len(),
	}
}

// Shown returns the number of books in the listing.
func (l *Listing) Shown() int { return len(l.Books) }
