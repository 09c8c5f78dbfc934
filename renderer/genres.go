package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/bookstore"
	md "github.com/nao1215/markdown"
)

// GenresMarkdown renders the number of titles in each genre.
func GenresMarkdown(r *bookstore.GenreReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Titles by Genre")
	if len(r.Genres) == 0 {
		doc.PlainText("No data available.")
		return doc.String()
	}

	table := md.TableSet{
		Header:    []string{"Genre", "Number of Titles"},
	}
	for _, g := range r.Genres {
		table.Rows = append(table.Rows, []string{cell(g.Genre), fmt.Sprint(g.Count)})
	}
	doc.CustomTable(table, tableOptions)

	return doc.String()
}
