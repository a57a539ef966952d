// Package importer loads WCIF competitions from uploaded WCIF and XLSX files.
package importer

// Source identifies where an imported competition came from.
type Source string

const (
	// SourceWCA imports a competition from the WCA website.
	SourceWCA Source = "wca"
	// SourceWCIF imports a JSON file holding an existing WCIF.
	SourceWCIF Source = "wcif"
	// SourceXLSX imports a results workbook exported by Cubecomps or Cubing China.
	SourceXLSX Source = "xlsx"
)

// Sources lists the import sources in the order they are offered.
var Sources = []Source{SourceWCA, SourceWCIF, SourceXLSX}

// Label returns the display label of the source.
func (s Source) Label() string {
	switch s {
	case SourceWCA:
		return "WCA import"
	case SourceWCIF:
		return "WCIF file"
	case SourceXLSX:
		return "XLSX file"
	default:
		return string(s)
	}
}

// Accept returns the file extension a file source accepts, or "" for SourceWCA.
func (s Source) Accept() string {
	switch s {
	case SourceWCIF:
		return ".json"
	case SourceXLSX:
		return ".xlsx"
	default:
		return ""
	}
}

// ParseSource parses a source identifier.
func ParseSource(s string) (Source, bool) {
	for _, src := range Sources {
		if string(src) == s {
			return src, true
		}
	}
	return "", false
}

// RegistrationSheet is the name of the sheet listing competitors.
const RegistrationSheet = "Registration"

// EventDelimiter separates the event id from the round part of a sheet name.
const EventDelimiter = "-"
