package renderer

import "github.com/etnz/bookstore"

// ListingMarkdown renders the listing as a markdown table followed by the
// count of shown books.
func ListingMarkdown(l *bookstore.Listing) string {
	partials := map[string]string{
		"listing_rows": "listing_rows.md",
	}
	return renderTemplate("listing", "listing.md", partials, l)
}
