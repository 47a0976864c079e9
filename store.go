package lotkeeper

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Load reads the portfolio snapshot from the given file. A missing file is
// not an error: the portfolio simply has not been created yet, and an empty
// one is returned.
func Load(path string) (*Portfolio, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, snapshot %q does not exist, starting with an empty portfolio", path)
		return NewPortfolio(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot %q: %w", path, err)
	}
	defer f.Close()

	p, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("could not read snapshot %q: %w", path, err)
	}
	return p, nil
}

// Save replaces the snapshot file with the given portfolio. The snapshot is
// written to a temporary file in the same directory and renamed over the
// old one, so a failed write never leaves a truncated snapshot behind: the
// replacement is all-or-nothing.
func Save(path string, p *Portfolio) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for snapshot %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("could not create temporary snapshot in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeSnapshot(tmp, p); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write snapshot %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace snapshot %q: %w", path, err)
	}
	return nil
}
