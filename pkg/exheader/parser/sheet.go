// Package parser decodes excelize workbooks into translation models.
package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/exheader-go/pkg/exheader/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoActiveSheet indicates the workbook has no active sheet.
var ErrNoActiveSheet = errors.New("workbook has no active sheet")

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ResolveSheet returns name when it exists in f, or the active sheet's name
// when name is empty.
func ResolveSheet(f *excelize.File, name string) (string, error) {
	if name != "" {
		idx, err := f.GetSheetIndex(name)
		if err != nil || idx < 0 {
			return "", fmt.Errorf("%w: %s", ErrSheetNotFound, name)
		}
		return name, nil
	}
	active := f.GetSheetName(f.GetActiveSheetIndex())
	if active == "" {
		return "", ErrNoActiveSheet
	}
	return active, nil
}

// ReadSheet decodes a whole sheet: every cell from A1 to the bottom-right
// of the used range, the merged ranges and the print area. When
// clipToPrintArea is set and the sheet has a print area, cells past the
// area's bottom-right corner are left out.
func ReadSheet(f *excelize.File, sheetName string, clipToPrintArea bool) (*models.Sheet, error) {
	merges, err := ExtractMerges(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("read merged cells: %w", err)
	}
	printArea, err := ExtractPrintArea(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("read print area: %w", err)
	}

	maxRow, maxCol, err := sheetExtent(f, sheetName, merges)
	if err != nil {
		return nil, err
	}
	if clipToPrintArea && printArea != nil {
		maxRow = min(maxRow, printArea.R2)
		maxCol = min(maxCol, printArea.C2)
		merges = mergesWithin(merges, maxRow, maxCol)
	}

	reader := newCellReader(f, sheetName)
	rows := make([][]models.Cell, maxRow)
	for r := 1; r <= maxRow; r++ {
		row := make([]models.Cell, maxCol)
		for c := 1; c <= maxCol; c++ {
			cell, err := reader.read(models.Coord{Row: r, Col: c})
			if err != nil {
				return nil, err
			}
			row[c-1] = cell
		}
		rows[r-1] = row
	}

	return &models.Sheet{
		Name:      sheetName,
		Rows:      rows,
		Merges:    merges,
		PrintArea: printArea,
	}, nil
}

func mergesWithin(merges []models.MergedRange, maxRow, maxCol int) []models.MergedRange {
	var kept []models.MergedRange
	for _, m := range merges {
		if m.Start.Row > maxRow || m.Start.Col > maxCol {
			continue
		}
		m.End.Row = min(m.End.Row, maxRow)
		m.End.Col = min(m.End.Col, maxCol)
		kept = append(kept, m)
	}
	return kept
}
