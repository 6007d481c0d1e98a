package grid

import "github.com/ukaji3/exheader-go/pkg/exheader/models"

// Width returns the effective column count: the widest column holding a
// value, a styled cell or the edge of a merged range. It is zero when no
// cell anywhere is content-bearing.
func Width(sheet *models.Sheet, defaults models.Defaults) int {
	maxCol := 0
	for _, row := range sheet.Rows {
		for _, cell := range row {
			if cell.Coord.Col <= maxCol {
				continue
			}
			if cell.HasValue() || defaults.Styled(cell.Style) {
				maxCol = cell.Coord.Col
			}
		}
	}
	if maxCol == 0 {
		return 0
	}
	for _, m := range sheet.Merges {
		if m.End.Col > maxCol {
			maxCol = m.End.Col
		}
	}
	return maxCol
}

// mergeIndex resolves the merged range of a coordinate in constant time.
type mergeIndex map[models.Coord]*models.MergedRange

func newMergeIndex(merges []models.MergedRange) mergeIndex {
	idx := make(mergeIndex)
	for i := range merges {
		m := &merges[i]
		for r := m.Start.Row; r <= m.End.Row; r++ {
			for c := m.Start.Col; c <= m.End.Col; c++ {
				coord := models.Coord{Row: r, Col: c}
				if _, taken := idx[coord]; taken {
					// first range wins; ranges do not overlap in valid sheets
					continue
				}
				idx[coord] = m
			}
		}
	}
	return idx
}

func (idx mergeIndex) at(coord models.Coord) *models.MergedRange {
	return idx[coord]
}
