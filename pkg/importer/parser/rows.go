// Package parser turns worksheet rows into WCIF persons and rounds.
package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExtractRows extracts a sheet as a row-major array of displayed cell text.
// The header rows are kept and rows with no data are dropped.
func ExtractRows(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	result := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		result = append(result, row)
	}

	return result, nil
}

// isBlankRow reports whether every cell of row is empty or whitespace.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseInt parses displayed cell text as an integer. Spreadsheet tools often
// display whole numbers as "12.0" or "12.", so a zero fraction is accepted.
func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		return int(f), true
	}
	return 0, false
}
