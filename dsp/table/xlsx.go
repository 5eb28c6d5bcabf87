package table

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX parses one sheet of a spreadsheet with the same rules as Parse.
// Cells are read as displayed text and joined with tabs, so formulas must
// already have cached numeric results. An empty sheet name selects the
// first sheet.
func ReadXLSX(path, sheet string) (*Matrix, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(strings.Join(r, "\t"))
		b.WriteByte('\n')
	}

	return Parse(b.String())
}
