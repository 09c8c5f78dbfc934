package bookstore

// DefaultListingLimit is the number of books listed when no valid limit is given.
const DefaultListingLimit = 20

// Listing is the head of the inventory.
type Listing struct {
	Books []Book // the books shown, in inventory order
	Total int    // number of books in the inventory
}

// Summary holds the financial overview of the inventory.
//
// Only books with a valid Cost and Stock are accounted for, the others are
// counted in Skipped.
type Summary struct {
	Currency     string
	Titles       int   // number of valid books
	TotalValue   Money // sum of Cost x Stock
	AveragePrice Money // mean Cost, zero if there are no valid books
	Skipped      int
}

// GenreCount associates a genre label with a count.
type GenreCount struct {
	Genre string
	Count int
}

// GenreReport counts the distinct titles of each Genre cell value, the cell
// is not split into labels. Genres are sorted by decreasing count.
type GenreReport struct {
	Genres []GenreCount
}

// GenreDistribution counts the books tagged with each genre label, a book
// tagged "Sci-Fi, Thriller" counting once in each. Labels are in first seen
// order.
type GenreDistribution struct {
	Genres []GenreCount
}

// AuthorIndex lists all the books ordered by author.
type AuthorIndex struct {
	Books []Book
}

// AuthorGroup is the titles of one author.
type AuthorGroup struct {
	Author string
	Titles []string
}
