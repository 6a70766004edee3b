package dataset

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

// workbook builds an in-memory XLSX file with a header row and data rows.
func workbook(t *testing.T, sheet string, rows [][]any) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			t.Fatalf("SetSheetName: %v", err)
		}
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("SetCellValue: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestReadXLSX(t *testing.T) {
	r := workbook(t, "Sheet1", [][]any{
		{"defect", "count"},
		{"Scratch", 10},
		{"Dent", 30},
		{"Crack", 60},
	})

	q, err := ReadXLSX(r, ReadOptions{})
	if err != nil {
		t.Fatalf("ReadXLSX error: %v", err)
	}

	if q.Category.Source != "defect" {
		t.Errorf("Source = %q, want defect", q.Category.Source)
	}
	if len(q.Category.Labels) != 3 {
		t.Fatalf("got %d labels, want 3", len(q.Category.Labels))
	}
	if q.Category.Labels[2] != "Crack" {
		t.Errorf("label[2] = %q, want Crack", q.Category.Labels[2])
	}
	if q.Value.Cells[1].Value == nil || *q.Value.Cells[1].Value != 30 {
		t.Errorf("cell[1] = %v, want 30", q.Value.Cells[1].Value)
	}
}

func TestReadXLSXNamedSheet(t *testing.T) {
	r := workbook(t, "Defects", [][]any{
		{"defect", "count"},
		{"Scratch", 10},
	})

	q, err := ReadXLSX(r, ReadOptions{Sheet: "Defects"})
	if err != nil {
		t.Fatalf("ReadXLSX error: %v", err)
	}
	if len(q.Category.Labels) != 1 {
		t.Errorf("got %d labels, want 1", len(q.Category.Labels))
	}
}

func TestReadXLSXNonNumericValues(t *testing.T) {
	r := workbook(t, "Sheet1", [][]any{
		{"defect", "count"},
		{"Scratch", 10},
		{"Dent", "pending"},
	})

	q, err := ReadXLSX(r, ReadOptions{})
	if err != nil {
		t.Fatalf("ReadXLSX error: %v", err)
	}
	if len(q.Value.Cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(q.Value.Cells))
	}
	if q.Value.Cells[1].Value != nil {
		t.Error("non-numeric cell should be nil-valued, not an error")
	}
}

func TestReadXLSXMissingSheet(t *testing.T) {
	r := workbook(t, "Sheet1", [][]any{
		{"defect", "count"},
	})

	_, err := ReadXLSX(r, ReadOptions{Sheet: "Nope"})
	if err == nil {
		t.Fatal("expected error for missing sheet")
	}
}
