package parser

import (
	"strings"

	"github.com/ukaji3/exheader-go/pkg/exheader/models"
	"github.com/xuri/excelize/v2"
)

// sheetExtent returns the bottom-right corner of the used range. It is the
// union of the recorded sheet dimension, the cells holding values and the
// merged ranges.
func sheetExtent(f *excelize.File, sheetName string, merges []models.MergedRange) (maxRow, maxCol int, err error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, 0, err
	}
	maxRow, maxCol = findDataBounds(rows)

	if dim, err := f.GetSheetDimension(sheetName); err == nil && dim != "" {
		if area := parseRangeToArea(dim); area != nil {
			maxRow = max(maxRow, area.R2)
			maxCol = max(maxCol, area.C2)
		}
	}

	for _, m := range merges {
		maxRow = max(maxRow, m.End.Row)
		maxCol = max(maxCol, m.End.Col)
	}
	return maxRow, maxCol, nil
}

// findDataBounds finds the 1-based bottom-right corner of non-empty cells.
func findDataBounds(rows [][]string) (maxRow, maxCol int) {
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			maxRow = max(maxRow, rowIdx+1)
			maxCol = max(maxCol, colIdx+1)
		}
	}
	return maxRow, maxCol
}

// parseRangeToArea parses a range string like $A$1:$D$10, or a single cell
// reference, to a PrintArea.
func parseRangeToArea(rangeStr string) *models.PrintArea {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.PrintArea{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}
}
