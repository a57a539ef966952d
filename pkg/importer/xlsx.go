package importer

import (
	"bytes"
	"io"

	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
	"github.com/soyrandom1/scrambles-matcher/pkg/importer/parser"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads every sheet of a workbook in tab order. Each sheet is a
// row-major array of displayed text with header rows kept and blank rows
// dropped.
func ReadWorkbook(r io.Reader, bookName string) (*models.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewImportError(SourceXLSX, "", err)
	}
	defer f.Close()

	wb := &models.Workbook{BookName: bookName}
	for _, sheetName := range f.GetSheetList() {
		rows, err := parser.ExtractRows(f, sheetName)
		if err != nil {
			return nil, NewImportError(SourceXLSX, sheetName, err)
		}
		wb.Sheets = append(wb.Sheets, models.Sheet{
			Name: sheetName,
			Rows: rows,
		})
	}

	return wb, nil
}

// FoldWorkbook folds the sheets of a workbook into a new WCIF competition.
// The workbook does not carry the competition id, so it stays nil.
func FoldWorkbook(wb *models.Workbook) (*models.Competition, error) {
	comp := models.NewWorkbookCompetition()
	for _, sheet := range wb.Sheets {
		if err := LoadSheetIntoWCIF(comp, sheet.Name, sheet.Rows); err != nil {
			return nil, err
		}
	}
	return comp, nil
}

// ParseXLSX reads a results workbook and folds it into a WCIF competition.
func ParseXLSX(data []byte) (*models.Competition, error) {
	wb, err := ReadWorkbook(bytes.NewReader(data), "")
	if err != nil {
		return nil, err
	}
	return FoldWorkbook(wb)
}
