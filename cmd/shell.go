package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/etnz/bookstore"
	"github.com/etnz/bookstore/renderer"
)

// shell runs the interactive flows of the application against one inventory.
//
// It owns the inventory for its whole life: mutations are applied in place
// and saved immediately, and undone when the save fails, so reports always
// reflect the file.
type shell struct {
	in   *bufio.Reader
	out  io.Writer
	inv  *bookstore.Inventory
	conf Config
}

func newShell(in io.Reader, out io.Writer, inv *bookstore.Inventory, conf Config) *shell {
	return &shell{in: bufio.NewReader(in), out: out, inv: inv, conf: conf}
}

func (s *shell) printf(format string, args ...any) { fmt.Fprintf(s.out, format, args...) }

// ask prints the question and reads one line of input, without the line
// ending. It returns io.EOF when the input is exhausted.
func (s *shell) ask(question string) (string, error) {
	s.printf("%s", question)
	line, err := s.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil // last line without a line ending
	}
	if err != nil {
		s.printf("\n")
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *shell) list(limit int) {
	renderMarkdown(s.out, renderer.ListingMarkdown(bookstore.NewListing(s.inv, limit)))
}

func (s *shell) summary() {
	renderMarkdown(s.out, renderer.SummaryMarkdown(bookstore.NewSummary(s.inv, s.conf.Currency)))
}

func (s *shell) genres() {
	renderMarkdown(s.out, renderer.GenresMarkdown(bookstore.NewGenreReport(s.inv)))
}

func (s *shell) authors(tree bool) {
	x := bookstore.NewAuthorIndex(s.inv)
	if tree {
		s.printf("%s", renderer.AuthorTree(x))
		return
	}
	s.printf("%s", renderer.AuthorLines(x))
}

func (s *shell) chart() {
	s.printf("%s", renderer.BarChart(bookstore.NewGenreDistribution(s.inv)))
}

// addBook asks for the details of a new book, adds it and saves the inventory.
func (s *shell) addBook() error {
	answer, err := s.ask("Add a new book? (Y/N): ")
	if err != nil {
		return err
	}
	if strings.ToUpper(strings.TrimSpace(answer)) != "Y" {
		return nil
	}

	title, err := s.ask("Enter book title: ")
	if err != nil {
		return err
	}
	author, err := s.ask("Enter author name: ")
	if err != nil {
		return err
	}
	genre, err := s.ask("Enter genre: ")
	if err != nil {
		return err
	}
	price, err := s.ask("Enter price: ")
	if err != nil {
		return err
	}
	if !bookstore.ParseNumber(price).Valid() {
		s.printf("Invalid price.\n")
		return nil
	}
	stock, err := s.ask("Enter stock: ")
	if err != nil {
		return err
	}
	return s.add(title, author, genre, price, stock)
}

// add creates the book, appends it to the inventory and saves it.
func (s *shell) add(title, author, genre, price, stock string) error {
	book, err := bookstore.NewBook(title, author, genre, price, stock)
	if errors.Is(err, bookstore.ErrInvalidPrice) {
		s.printf("Invalid price.\n")
		return nil
	}
	if err != nil {
		return err
	}
	err = s.inv.Apply(func(inv *bookstore.Inventory) error {
		inv.Add(book)
		return nil
	})
	if err != nil {
		return err
	}
	slog.Debug("book added", "title", book.Title, "file", s.inv.Path())
	s.printf("Added: %s\n", book.Title)
	return nil
}

// updateStock looks up the title, asks for the direction and amount of the
// change, applies it and saves the inventory.
func (s *shell) updateStock(title string) error {
	i, err := s.inv.Find(title)
	if errors.Is(err, bookstore.ErrBookNotFound) {
		s.printf("Book not found or no changes made.\n")
		return nil
	}
	stock := s.inv.Stock(i)
	if !stock.Valid() {
		s.printf("Invalid stock value. Skipping this book.\n")
		return nil
	}
	s.printf("Found: %s (Stock: %s)\n", s.inv.Book(i).Title, stock.Whole())

	answer, err := s.ask("Type 'i' to increase or 'd' to decrease stock: ")
	if err != nil {
		return err
	}
	dir := bookstore.ParseDirection(answer)
	if dir == bookstore.NoChange {
		s.printf("Book not found or no changes made.\n")
		return nil
	}

	answer, err = s.ask("Enter amount: ")
	if err != nil {
		return err
	}
	amount, err := bookstore.ParseAmount(answer)
	if err != nil {
		s.printf("Invalid amount. Aborting update.\n")
		return nil
	}
	return s.applyStock(title, dir, amount)
}

// applyStock changes the stock of the title and saves the inventory.
func (s *shell) applyStock(title string, dir bookstore.Direction, amount int64) error {
	if dir == bookstore.NoChange {
		s.printf("Book not found or no changes made.\n")
		return nil
	}
	var change bookstore.StockChange
	err := s.inv.Apply(func(inv *bookstore.Inventory) (err error) {
		change, err = inv.UpdateStock(title, dir, amount)
		return err
	})
	switch {
	case errors.Is(err, bookstore.ErrBookNotFound):
		s.printf("Book not found or no changes made.\n")
		return nil
	case errors.Is(err, bookstore.ErrInvalidStock):
		s.printf("Invalid stock value. Skipping this book.\n")
		return nil
	case err != nil:
		return err
	}
	if change.OutOfStock {
		s.printf("Book is out of stock\n")
	}
	slog.Debug("stock updated", "title", title, "direction", change.Direction, "before", change.Before, "after", change.After)
	s.printf("Stock updated\n")
	return nil
}

// menu runs the numbered menu until the operator exits or the input ends.
func (s *shell) menu() error {
	for {
		s.printf("\nBookstore System Menu:\n")
		s.printf("1. List of book titles and their respective details\n")
		s.printf("2. Summary report of titles, stock, and average price\n")
		s.printf("3. Report of number of titles in each genre\n")
		s.printf("4. Add a new book item\n")
		s.printf("5. Query or update book stock\n")
		s.printf("6. List books ordered by author\n")
		s.printf("7. Bar chart of number of books per genre\n")
		s.printf("0. Exit\n")

		choice, err := s.ask("Enter your choice (0-7): ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			answer, err := s.ask(fmt.Sprintf("How many books to show? (e.g. %d): ", s.conf.Limit))
			if err != nil {
				return ignoreEOF(err)
			}
			limit, err := strconv.Atoi(strings.TrimSpace(answer))
			if err != nil || limit <= 0 {
				limit = s.conf.Limit
			}
			s.list(limit)
		case "2":
			s.summary()
		case "3":
			s.genres()
		case "4":
			err = s.addBook()
		case "5":
			var title string
			if title, err = s.ask("Enter the book title to search: "); err == nil {
				err = s.updateStock(title)
			}
		case "6":
			s.authors(false)
		case "7":
			s.chart()
		case "0":
			s.printf("Exiting program.\n")
			return nil
		default:
			s.printf("Invalid choice. Please enter a number from 0 to 7.\n")
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			// never fatal to the menu.
			slog.Error("operation failed", "err", err)
			s.printf("Error: %v\n", err)
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
