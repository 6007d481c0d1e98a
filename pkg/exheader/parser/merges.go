package parser

import (
	"github.com/ukaji3/exheader-go/pkg/exheader/models"
	"github.com/xuri/excelize/v2"
)

// ExtractMerges returns the merged ranges of a sheet with their anchor as
// the top-left corner. References that cannot be parsed are skipped.
func ExtractMerges(f *excelize.File, sheetName string) ([]models.MergedRange, error) {
	mergeCells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	merges := make([]models.MergedRange, 0, len(mergeCells))
	for _, mc := range mergeCells {
		area := parseRangeToArea(mc.GetStartAxis() + ":" + mc.GetEndAxis())
		if area == nil {
			continue
		}
		merges = append(merges, models.MergedRange{
			Start: models.Coord{Row: area.R1, Col: area.C1},
			End:   models.Coord{Row: area.R2, Col: area.C2},
		})
	}
	return merges, nil
}
