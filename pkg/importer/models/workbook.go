package models

import "strings"

// Workbook represents an uploaded workbook with its sheets in tab order.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the worksheets in the order the workbook presents them.
	Sheets []Sheet `json:"sheets"`
}

// CellAt returns the trimmed text at (row, col) of a row-major array, or ""
// when out of range.
func CellAt(rows [][]string, row, col int) string {
	if row < 0 || row >= len(rows) {
		return ""
	}
	if col < 0 || col >= len(rows[row]) {
		return ""
	}
	return strings.TrimSpace(rows[row][col])
}
