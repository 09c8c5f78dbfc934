package bookstore

import (
	"slices"
	"strings"
)

// NewAuthorIndex returns all the books sorted by author.
// The sort is stable, books without an author come last.
func NewAuthorIndex(inv *Inventory) *AuthorIndex {
	books := slices.Clone(inv.books)
	slices.SortStableFunc(books, func(a, b Book) int {
		switch {
		case a.Author == b.Author:
			return 0
		case a.Author == "":
			return 1
		case b.Author == "":
			return -1
		}
		return strings.Compare(a.Author, b.Author)
	})
	return &AuthorIndex{Books: books}
}

// Groups returns the titles of each author, in index order.
func (x *AuthorIndex) Groups() []AuthorGroup {
	var groups []AuthorGroup
	for _, b := range x.Books {
		if n := len(groups); n > 0 && groups[n-1].Author == b.Author {
			groups[n-1].Titles = append(groups[n-1].Titles, b.Title)
			continue
		}
		groups = append(groups, AuthorGroup{Author: b.Author, Titles: []string{b.Title}})
	}
	return groups
}
