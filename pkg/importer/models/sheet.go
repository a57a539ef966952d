package models

// Sheet is one worksheet converted to a row-major array of displayed cell
// text. The header rows are included and blank rows are dropped.
type Sheet struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Rows contains the non-blank rows in sheet order.
	Rows [][]string `json:"rows"`
}

// Cell returns the trimmed text at (row, col), or "" when out of range.
func (s Sheet) Cell(row, col int) string {
	return CellAt(s.Rows, row, col)
}
