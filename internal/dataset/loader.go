package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads the CSV file at path and validates it against RequiredColumns.
//
// The returned error is always a *LoadError; callers decide whether to exit.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newMissingFileError(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, newMissingFileError(path, err)
	}
	if info.IsDir() {
		return nil, newMissingFileError(path, fmt.Errorf("%s is a directory", path))
	}

	t, err := ReadCSV(f, path)
	if err != nil {
		return nil, err
	}
	t.size = info.Size()

	if err := Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadCSV parses a header row followed by data rows. Column types are inferred
// from content. It does not validate the schema.
func ReadCSV(r io.Reader, source string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		// An empty file has no columns at all.
		return newTable(source, nil, nil), nil
	}
	if err != nil {
		return nil, newMalformedError(source, fmt.Errorf("read header: %w", err))
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var cells [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newMalformedError(source, err)
		}
		if len(rec) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, newMalformedError(source,
				fmt.Errorf("line %d: expected %d fields, saw %d", line, len(header), len(rec)))
		}
		cells = append(cells, rec)
	}

	return newTable(source, header, cells), nil
}

// Validate checks that every required column is present.
func Validate(t *Table) error {
	var missing []string
	for _, name := range RequiredColumns {
		if !t.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return newSchemaError(t.Source(), missing)
	}
	return nil
}
