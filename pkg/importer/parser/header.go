package parser

import (
	"strings"

	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
)

// fallbackHeaderRow is used when no row reads "Name" in its second column.
const fallbackHeaderRow = 1

// header maps normalized header labels of a sheet to column indexes.
type header struct {
	row    int
	labels []string
}

// findHeader locates the header row: the first row whose second cell reads
// "Name". Row 0 always holds the sheet title and is skipped.
func findHeader(rows [][]string) header {
	for i := 1; i < len(rows); i++ {
		if strings.EqualFold(models.CellAt(rows, i, 1), "name") {
			return newHeader(rows, i)
		}
	}
	return newHeader(rows, fallbackHeaderRow)
}

func newHeader(rows [][]string, row int) header {
	h := header{row: row}
	if row < len(rows) {
		for col := range rows[row] {
			h.labels = append(h.labels, normalizeLabel(models.CellAt(rows, row, col)))
		}
	}
	return h
}

// column returns the first column whose label matches one of names, or def.
func (h header) column(def int, names ...string) int {
	for col, label := range h.labels {
		for _, name := range names {
			if label == name {
				return col
			}
		}
	}
	return def
}

// columnFrom is like column but only considers columns at or after start.
func (h header) columnFrom(start, def int, names ...string) int {
	for col := start; col < len(h.labels); col++ {
		for _, name := range names {
			if h.labels[col] == name {
				return col
			}
		}
	}
	return def
}

func (h header) width() int {
	return len(h.labels)
}

// dataRows returns the rows following the header.
func (h header) dataRows(rows [][]string) [][]string {
	if h.row+1 >= len(rows) {
		return nil
	}
	return rows[h.row+1:]
}

func normalizeLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, ".")
	return strings.Join(strings.Fields(s), " ")
}
