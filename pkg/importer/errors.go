package importer

import (
	"errors"
	"fmt"

	"github.com/soyrandom1/scrambles-matcher/pkg/importer/parser"
)

// ReadFailedMessage is the alert shown when an uploaded file cannot be read.
const ReadFailedMessage = "Couldn't load the JSON file"

// ErrReadFailed indicates the uploaded file could not be read.
var ErrReadFailed = errors.New("file could not be read")

// ErrMalformedInput indicates content that could not be turned into a WCIF.
// The import is abandoned; nothing reaches the loader.
var ErrMalformedInput = errors.New("malformed input")

// Re-exported parser errors, matched with errors.Is through ImportError.
var (
	ErrEmptySheet     = parser.ErrEmptySheet
	ErrUnknownPerson  = parser.ErrUnknownPerson
	ErrInvalidAttempt = parser.ErrInvalidAttempt
)

// ImportError represents malformed content met during an import.
type ImportError struct {
	Source Source
	// Sheet is the worksheet being folded, if any.
	Sheet string
	Err   error
}

func (e *ImportError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("import error in %s sheet %q: %v", e.Source, e.Sheet, e.Err)
	}
	return fmt.Sprintf("import error in %s: %v", e.Source, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// Is makes every ImportError match ErrMalformedInput.
func (e *ImportError) Is(target error) bool {
	return target == ErrMalformedInput
}

// NewImportError creates a new ImportError.
func NewImportError(source Source, sheet string, err error) *ImportError {
	return &ImportError{
		Source: source,
		Sheet:  sheet,
		Err:    err,
	}
}
