package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const defaultWidth = 80

// printMarkdown renders md on the standard output.
func printMarkdown(md string) { renderMarkdown(os.Stdout, md) }

// renderMarkdown writes md to w. When w is a terminal the markdown is styled
// and wrapped to the terminal width, otherwise it is written as is.
func renderMarkdown(w io.Writer, md string) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(w, md)
		return
	}

	width := defaultWidth
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
		width = cols
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		slog.Debug("could not create markdown renderer", "err", err)
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		slog.Debug("could not render markdown", "err", err)
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
