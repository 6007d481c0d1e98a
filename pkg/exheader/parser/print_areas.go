package parser

import (
	"strings"

	"github.com/ukaji3/exheader-go/pkg/exheader/models"
	"github.com/xuri/excelize/v2"
)

// ExtractPrintArea returns the print area of a sheet, or nil when the
// sheet defines none. Several areas are merged into their bounding box.
func ExtractPrintArea(f *excelize.File, sheetName string) (*models.PrintArea, error) {
	var result *models.PrintArea

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		refSheet, areas := parsePrintAreaReference(dn.RefersTo)
		if refSheet != sheetName && dn.Scope != sheetName {
			continue
		}
		for _, area := range areas {
			result = unionArea(result, area)
		}
	}

	return result, nil
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var areas []models.PrintArea

	var sheetName string
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if area := parseRangeToArea(part[idx+1:]); area != nil {
			areas = append(areas, *area)
		}
	}

	return sheetName, areas
}

func unionArea(acc *models.PrintArea, area models.PrintArea) *models.PrintArea {
	if acc == nil {
		return &area
	}
	return &models.PrintArea{
		R1: min(acc.R1, area.R1),
		C1: min(acc.C1, area.C1),
		R2: max(acc.R2, area.R2),
		C2: max(acc.C2, area.C2),
	}
}
