package bookstore

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
)

// Load opens and decodes the inventory file at path.
//
// If the file does not exist, Load returns an empty inventory bound to path
// together with an error wrapping fs.ErrNotExist, so that callers can warn
// and carry on: the file is created by the first Save.
func Load(path string) (*Inventory, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewInventory(path), fmt.Errorf("inventory file %q: %w", path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w", path, err)
	}

	inv, err := DecodeInventory(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("could not decode inventory file %q: %w", path, err)
	}
	inv.path = path
	slog.Debug("inventory loaded", "path", path, "books", inv.Len())
	return inv, nil
}

// Save rewrites the whole inventory file.
//
// The content is fully encoded first, written to a temporary file next to the
// target and renamed over it, so a failed Save leaves the previous file intact.
func (inv *Inventory) Save() error {
	if inv.path == "" {
		return fmt.Errorf("cannot save an inventory without a file path")
	}

	var buf bytes.Buffer
	if err := EncodeInventory(&buf, inv); err != nil {
		return fmt.Errorf("could not encode inventory: %w", err)
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(inv.path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(inv.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", inv.path, err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(inv.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temp file: %w", err)
	}
	tmpPath := f.Name()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return errors.Join(fmt.Errorf("could not write %q: %w", tmpPath, err), f.Close(), os.Remove(tmpPath))
	}
	if err := f.Sync(); err != nil {
		return errors.Join(fmt.Errorf("could not sync %q: %w", tmpPath, err), f.Close(), os.Remove(tmpPath))
	}
	if err := f.Close(); err != nil {
		return errors.Join(fmt.Errorf("could not close %q: %w", tmpPath, err), os.Remove(tmpPath))
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return errors.Join(fmt.Errorf("could not set mode of %q: %w", tmpPath, err), os.Remove(tmpPath))
	}
	if err := os.Rename(tmpPath, inv.path); err != nil {
		return errors.Join(fmt.Errorf("could not replace %q: %w", inv.path, err), os.Remove(tmpPath))
	}
	slog.Debug("inventory saved", "path", inv.path, "books", inv.Len())
	return nil
}

// Apply runs mutate on the inventory then saves it. If mutate or Save fails,
// the inventory is restored to its state before the call, so that it always
// matches the file.
func (inv *Inventory) Apply(mutate func(*Inventory) error) error {
	columns, books := slices.Clone(inv.columns), slices.Clone(inv.books)
	err := mutate(inv)
	if err == nil {
		if err = inv.Save(); err != nil {
			err = fmt.Errorf("could not save inventory: %w", err)
		}
	}
	if err != nil {
		inv.columns, inv.books = columns, books
	}
	return err
}
