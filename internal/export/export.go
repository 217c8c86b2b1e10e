// Package export writes reports and raw record rows to CSV or JSON files.
// An export never overwrites: writing to an existing path fails and leaves
// the file untouched.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrFileExists is returned when the export target is already present.
var ErrFileExists = errors.New("export file already exists")

// CSV writes a header row from fields followed by one line per row. Rows are
// expected in the field order produced by the store's List/Columns pair.
func CSV(rows [][]string, path string, fields []string) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(fields); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// JSON serializes any report or row payload as a compact UTF-8 document.
func JSON(payload any, path string) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(payload); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func create(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("export to %q: %w", path, ErrFileExists)
	}
	if err != nil {
		return nil, fmt.Errorf("create export file %q: %w", path, err)
	}
	return f, nil
}
