package exheader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/exheader-go/pkg/exheader/models"
	"github.com/xuri/excelize/v2"
)

func saveWorkbook(t *testing.T, f *excelize.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "header.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestTranslateStyledCell(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	f.SetCellValue("Sheet1", "A1", "Total")
	f.SetCellStyle("Sheet1", "A1", "A1", styleID)

	result, err := Translate(saveWorkbook(t, f), DefaultOptions())
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	expected := strings.Join([]string{
		"template:",
		"    format:",
		"        page_header:",
		"            -",
		"                -",
		"                    value: 'Total'",
		"                    bold: true",
		"                    font_size: 14",
		"            - []",
	}, "\n")
	if result.Document != expected {
		t.Errorf("Unexpected document:\n%s\nexpected:\n%s", result.Document, expected)
	}
	if result.SheetName != "Sheet1" || len(result.Warnings) != 0 {
		t.Errorf("Unexpected result metadata %+v", result)
	}
}

func TestTranslateThemeColors(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	styleID, err := f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"AABBCC"}},
		Border: []excelize.Border{{Type: "left", Color: "00FF00", Style: 1}},
	})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	f.SetCellValue("Sheet1", "A1", "Themed")
	f.SetCellStyle("Sheet1", "A1", "A1", styleID)

	accent := 4
	xf := f.Styles.CellXfs.Xf[styleID]
	fg := f.Styles.Fills.Fill[*xf.FillID].PatternFill.FgColor
	fg.RGB, fg.Theme = "", &accent
	line := f.Styles.Borders.Border[*xf.BorderID].Left.Color
	line.RGB, line.Theme = "", &accent

	result, err := Translate(saveWorkbook(t, f), DefaultOptions())
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	expected := strings.Join([]string{
		"template:",
		"    format:",
		"        page_header:",
		"            -",
		"                -",
		"                    value: 'Themed'",
		"                    border: 1",
		"            - []",
	}, "\n")
	if result.Document != expected {
		t.Errorf("Unexpected document:\n%s\nexpected:\n%s", result.Document, expected)
	}
}

func TestTranslateLogoAndMerge(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "<Logo>")
	f.SetCellValue("Sheet1", "A2", "Don't put text here")
	f.SetCellValue("Sheet1", "B1", "Header")
	f.MergeCell("Sheet1", "B1", "D1")
	f.SetCellValue("Sheet1", "B2", "<placeholder>")

	result, err := Translate(saveWorkbook(t, f), DefaultOptions())
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	expected := strings.Join([]string{
		"template:",
		"    format:",
		"        page_header:",
		"            -",
		"                -",
		"                    type: 'logo'",
		"                    value: true",
		"                -",
		"                    merge:",
		"                        from_to: 'B1:D1'",
		"                    value: 'Header'",
		"                - null",
		"                - null",
		"            -",
		"                -",
		"                    value: 'Don''t put text here'",
		"                -",
		"                    type: 'expert'",
		`                    value: return "<placeholder>"`,
		"                - null",
		"                - null",
		"            - []",
	}, "\n")
	if result.Document != expected {
		t.Errorf("Unexpected document:\n%s\nexpected:\n%s", result.Document, expected)
	}

	if len(result.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(result.Warnings))
	}
	msg := result.Warnings[0].String()
	for _, part := range []string{"A1", "A2", "Don't put text here"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Expected warning %q to mention %q", msg, part)
		}
	}
}

func TestTranslateReader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A3", 42)

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	result, err := TranslateReader(bytes.NewReader(buf.Bytes()), DefaultOptions())
	if err != nil {
		t.Fatalf("TranslateReader failed: %v", err)
	}

	lines := strings.Split(result.Document, "\n")
	tail := lines[3:]
	expected := []string{
		"            - []",
		"            - []",
		"            -",
		"                -",
		"                    value: 42",
		"            - []",
	}
	if strings.Join(tail, "\n") != strings.Join(expected, "\n") {
		t.Errorf("Unexpected rows:\n%s", strings.Join(tail, "\n"))
	}
}

func TestTranslateSheetTrailingBlankRow(t *testing.T) {
	sheet := &models.Sheet{
		Name: "Sheet1",
		Rows: [][]models.Cell{
			{{Coord: models.Coord{Row: 1, Col: 1}, Value: "x"}},
			{{Coord: models.Coord{Row: 2, Col: 1}}},
		},
	}

	result := TranslateSheet(sheet, DefaultOptions())

	if !strings.HasSuffix(result.Document, "            - []\n            - []") {
		t.Errorf("Expected the blank last row followed by the trailing marker, got:\n%s", result.Document)
	}
}

func TestTranslateErrors(t *testing.T) {
	if _, err := Translate(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions()); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := os.WriteFile(bad, []byte("not a workbook"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := Translate(bad, DefaultOptions())
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
	var terr *TranslationError
	if !errors.As(err, &terr) || terr.Stage != "open" {
		t.Errorf("Expected TranslationError in open stage, got %v", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	opts := DefaultOptions()
	opts.Sheet = "Nope"
	if _, err := TranslateFile(f, opts); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound, got %v", err)
	}
}

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"design.xlsx", "design.yaml"},
		{"dir/my.header.xlsx", "dir/my.header.yaml"},
		{"noext", "noext.yaml"},
	}

	for _, tt := range tests {
		if got := OutputFileName(tt.input); got != tt.expected {
			t.Errorf("OutputFileName(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
