package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
)

// Loader receives the competition of a successful import.
type Loader func(*models.Competition)

// Alerter surfaces a blocking message to the user.
type Alerter func(message string)

// HandleWCIFUpload reads a WCIF JSON upload and hands the decoded competition
// to load. A read failure alerts once and never calls load; malformed JSON
// returns an ErrMalformedInput error without calling either.
func HandleWCIFUpload(r io.Reader, load Loader, alert Alerter) error {
	data, err := readUpload(r, alert)
	if err != nil {
		return err
	}

	comp, err := ParseWCIF(data)
	if err != nil {
		return err
	}
	load(comp)
	return nil
}

// HandleXLSXUpload reads a results workbook upload, folds every sheet into a
// WCIF and hands it to load. Errors follow HandleWCIFUpload.
func HandleXLSXUpload(r io.Reader, load Loader, alert Alerter) error {
	data, err := readUpload(r, alert)
	if err != nil {
		return err
	}

	comp, err := ParseXLSX(data)
	if err != nil {
		return err
	}
	load(comp)
	return nil
}

// HandleUpload dispatches to the handler of a file source.
func HandleUpload(source Source, r io.Reader, load Loader, alert Alerter) error {
	switch source {
	case SourceWCIF:
		return HandleWCIFUpload(r, load, alert)
	case SourceXLSX:
		return HandleXLSXUpload(r, load, alert)
	default:
		return fmt.Errorf("source %q is not a file source", source)
	}
}

// ImportFile opens path and runs the upload handler of source on it. A file
// that cannot be opened takes the same alert path as a failed read.
func ImportFile(path string, source Source, load Loader, alert Alerter) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return readFailed(alert, err)
	}
	defer f.Close()

	return HandleUpload(source, f, load, alert)
}

func readUpload(r io.Reader, alert Alerter) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, readFailed(alert, err)
	}
	return data, nil
}

func readFailed(alert Alerter, err error) error {
	if alert != nil {
		alert(ReadFailedMessage)
	}
	return fmt.Errorf("%w: %v", ErrReadFailed, err)
}
