package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/bookstore"
	"github.com/mattn/go-runewidth"
)

const (
	chartTitle = "Number of Books in Each Genre"
	barWidth   = 4      // display columns per genre
	bar        = "██  " // barWidth wide
)

// BarChart draws the genre distribution as a vertical bar chart, one bar per
// genre with a height equal to its count. Genre labels are rotated: they are
// written top to bottom under their bar, wide runes taking their display width.
func BarChart(d *bookstore.GenreDistribution) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", chartTitle)

	top := d.Max()
	if top == 0 {
		b.WriteString("No genres to chart.\n")
		return b.String()
	}

	axis := len(fmt.Sprint(top))
	for level := top; level > 0; level-- {
		var line strings.Builder
		fmt.Fprintf(&line, "%*d │ ", axis, level)
		for _, g := range d.Genres {
			if g.Count >= level {
				line.WriteString(bar)
			} else {
				line.WriteString(strings.Repeat(" ", barWidth))
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s └%s\n", strings.Repeat(" ", axis), strings.Repeat("─", barWidth*len(d.Genres)+1))

	labels := make([][]rune, len(d.Genres))
	height := 0
	for i, g := range d.Genres {
		labels[i] = []rune(g.Genre)
		height = max(height, len(labels[i]))
	}
	for row := range height {
		var line strings.Builder
		line.WriteString(strings.Repeat(" ", axis+3))
		for _, label := range labels {
			char := ""
			if row < len(label) {
				char = string(label[row])
			}
			line.WriteString(runewidth.FillRight(char, barWidth))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}
	return b.String()
}
