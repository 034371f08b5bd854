package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingInputFile indicates the dataset path could not be opened.
var ErrMissingInputFile = errors.New("missing input file")

// ErrIncompleteSchema indicates the dataset lacks one or more required columns.
var ErrIncompleteSchema = errors.New("incomplete schema")

// ErrMalformedInput indicates the file opened but is not valid delimited text.
var ErrMalformedInput = errors.New("malformed input")

// LoadError describes why a dataset could not be turned into a Table.
// It unwraps to one of the sentinel errors above.
type LoadError struct {
	Path    string
	Missing []string // required columns absent from the header, in RequiredColumns order
	Err     error
	cause   error
}

func (e *LoadError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMissingInputFile):
		return fmt.Sprintf("dataset %q not found; please ensure the file path is correct", e.Path)
	case errors.Is(e.Err, ErrIncompleteSchema):
		return fmt.Sprintf("dataset %q does not contain the required columns (missing: %s); please check your data preparation",
			e.Path, strings.Join(e.Missing, ", "))
	case e.cause != nil:
		return fmt.Sprintf("dataset %q: %v: %v", e.Path, e.Err, e.cause)
	default:
		return fmt.Sprintf("dataset %q: %v", e.Path, e.Err)
	}
}

func (e *LoadError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.cause}
}

func newMissingFileError(path string, cause error) *LoadError {
	return &LoadError{Path: path, Err: ErrMissingInputFile, cause: cause}
}

func newSchemaError(path string, missing []string) *LoadError {
	return &LoadError{Path: path, Missing: missing, Err: ErrIncompleteSchema}
}

func newMalformedError(path string, cause error) *LoadError {
	return &LoadError{Path: path, Err: ErrMalformedInput, cause: cause}
}
