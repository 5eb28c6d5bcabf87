package table

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signal.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"time", "left", "right"},
		{0, 1.5, -1},
		{1, 0.5, 2},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	m, err := ReadXLSX(path, "")
	if err != nil {
		t.Fatalf("ReadXLSX() error = %v", err)
	}
	requireRows(t, m, [][]float64{{0, 1.5, -1}, {1, 0.5, 2}})

	if _, err := ReadXLSX(path, "Missing"); err == nil {
		t.Fatal("ReadXLSX(missing sheet) error = nil")
	}
}
