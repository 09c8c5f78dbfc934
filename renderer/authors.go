package renderer

import (
	"fmt"
	"strings"

	"github.com/disiqueira/gotree/v3"
	"github.com/etnz/bookstore"
)

// AuthorLines renders one line per book: Author - "Title".
func AuthorLines(x *bookstore.AuthorIndex) string {
	var b strings.Builder
	for _, book := range x.Books {
		fmt.Fprintf(&b, "%s - \"%s\"\n", book.Author, book.Title)
	}
	return b.String()
}

// AuthorTree renders the index as a tree of authors and their titles.
func AuthorTree(x *bookstore.AuthorIndex) string {
	root := gotree.New("Authors")
	for _, g := range x.Groups() {
		author := g.Author
		if author == "" {
			author = "(unknown)"
		}
		node := root.Add(author)
		for _, title := range g.Titles {
			node.Add(title)
		}
	}
	return root.Print()
}
