package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/bookstore"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the financial summary. The skipped books line only
// appears when some books were skipped.
func SummaryMarkdown(s *bookstore.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Summary Report")

	rows := [][]string{
		{"Total Titles", fmt.Sprint(s.Titles)},
		{"Total Value of the Books", s.TotalValue.String()},
		{"Average Price", s.AveragePrice.String()},
	}
	doc.CustomTable(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows:   rows,
	}, tableOptions)

	if s.Skipped > 0 {
		doc.PlainText(fmt.Sprintf("Skipped %d bad rows.", s.Skipped))
	}

	return doc.String()
}
