// Package grid classifies the cells of a sheet before descriptors are built.
package grid

import "github.com/ukaji3/exheader-go/pkg/exheader/models"

// Tag classifies a cell position.
type Tag int

const (
	// PlainEmpty is a cell with no value and no style deviation.
	PlainEmpty Tag = iota
	// Content is a cell with a value or a style deviation.
	Content
	// MergeLeader is the anchor cell of a merged range.
	MergeLeader
	// MergeFollower is a non-anchor cell of a merged range.
	MergeFollower
)

func (t Tag) String() string {
	switch t {
	case Content:
		return "content"
	case MergeLeader:
		return "merge-leader"
	case MergeFollower:
		return "merge-follower"
	default:
		return "plain-empty"
	}
}

// Slot is a classified cell position.
type Slot struct {
	Tag  Tag
	Cell models.Cell
	// Merge is the range the cell belongs to, set for leaders and followers.
	Merge *models.MergedRange
}

// Row is a classified sheet row.
type Row struct {
	// Index is the 1-based row number.
	Index int
	// Blank marks a row without values or style deviations.
	Blank bool
	// Slots has Width entries for non-blank rows.
	Slots []Slot
}

// Grid is the classified sheet.
type Grid struct {
	// Width is the effective column count.
	Width int
	Rows  []Row
}

// Normalize measures the sheet and classifies every cell up to the
// effective width. Measurement completes before any row is classified.
func Normalize(sheet *models.Sheet, defaults models.Defaults) *Grid {
	width := Width(sheet, defaults)
	merges := newMergeIndex(sheet.Merges)

	g := &Grid{Width: width, Rows: make([]Row, 0, len(sheet.Rows))}
	for i := range sheet.Rows {
		g.Rows = append(g.Rows, classifyRow(sheet, i+1, width, merges, defaults))
	}
	return g
}

func classifyRow(sheet *models.Sheet, rowNum, width int, merges mergeIndex, defaults models.Defaults) Row {
	row := Row{Index: rowNum}
	blank := true
	slots := make([]Slot, width)
	for col := 1; col <= width; col++ {
		coord := models.Coord{Row: rowNum, Col: col}
		cell := sheet.Cell(coord)
		if cell.HasValue() || defaults.Styled(cell.Style) {
			blank = false
		}

		slot := Slot{Tag: PlainEmpty, Cell: cell}
		if m := merges.at(coord); m != nil {
			slot.Merge = m
			if m.IsAnchor(coord) {
				slot.Tag = MergeLeader
			} else {
				slot.Tag = MergeFollower
			}
		} else if cell.HasValue() || defaults.Styled(cell.Style) {
			slot.Tag = Content
		}
		slots[col-1] = slot
	}
	if blank {
		row.Blank = true
		return row
	}
	row.Slots = slots
	return row
}
