package bookstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DecodeInventory reads an inventory from CSV data.
//
// The first row is the header, it defines the column order. Empty input
// yields an empty inventory with the required columns. Rows shorter than the
// header are padded with empty cells.
func DecodeInventory(r io.Reader) (*Inventory, error) {
	inv := NewInventory("")
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // checked below, against the header

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return inv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff") // spreadsheet tools like to add a BOM
	}
	inv.columns = header

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read row: %w", err)
		}
		if len(row) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: %d fields but the header has %d", line, len(row), len(header))
		}
		var b Book
		for i, column := range header {
			if i < len(row) {
				b.set(column, row[i])
			}
		}
		inv.books = append(inv.books, b)
	}
	return inv, nil
}

// EncodeInventory writes the inventory as CSV data: the header row followed
// by one row per book, in the inventory column order.
func EncodeInventory(w io.Writer, inv *Inventory) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(inv.columns); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}
	row := make([]string, len(inv.columns))
	for _, b := range inv.books {
		for i, column := range inv.columns {
			row[i] = b.Get(column)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("could not write %q: %w", b.Title, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
