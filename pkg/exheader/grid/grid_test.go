package grid

import (
	"testing"

	"github.com/ukaji3/exheader-go/pkg/exheader/models"
)

// newSheet builds a dense sheet of rows x cols empty cells.
func newSheet(rows, cols int) *models.Sheet {
	sheet := &models.Sheet{Name: "Sheet1", Rows: make([][]models.Cell, rows)}
	for r := range sheet.Rows {
		sheet.Rows[r] = make([]models.Cell, cols)
		for c := range sheet.Rows[r] {
			sheet.Rows[r][c].Coord = models.Coord{Row: r + 1, Col: c + 1}
		}
	}
	return sheet
}

func TestWidth(t *testing.T) {
	d := models.StandardDefaults()

	sheet := newSheet(3, 6)
	sheet.Rows[0][1].Value = "x"
	sheet.Rows[2][3].Style.Bold = true
	sheet.Rows[1][5].Style.FontName = "Calibri" // default only
	if got := Width(sheet, d); got != 4 {
		t.Errorf("Expected width 4, got %d", got)
	}

	sheet.Merges = []models.MergedRange{
		{Start: models.Coord{Row: 1, Col: 2}, End: models.Coord{Row: 1, Col: 5}},
	}
	if got := Width(sheet, d); got != 5 {
		t.Errorf("Expected merged range to widen to 5, got %d", got)
	}

	if got := Width(newSheet(2, 2), d); got != 0 {
		t.Errorf("Expected width 0 without content, got %d", got)
	}
}

func TestNormalizeBlankRows(t *testing.T) {
	sheet := newSheet(3, 2)
	sheet.Rows[1][0].Value = "Header"

	g := Normalize(sheet, models.StandardDefaults())

	if len(g.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(g.Rows))
	}
	if !g.Rows[0].Blank || !g.Rows[2].Blank {
		t.Error("Expected rows 1 and 3 to be blank")
	}
	if g.Rows[1].Blank || len(g.Rows[1].Slots) != 1 {
		t.Fatalf("Expected row 2 with 1 slot, got %+v", g.Rows[1])
	}
	if g.Rows[1].Slots[0].Tag != Content {
		t.Errorf("Expected content tag, got %s", g.Rows[1].Slots[0].Tag)
	}
}

func TestNormalizeEmptySheet(t *testing.T) {
	g := Normalize(newSheet(2, 3), models.StandardDefaults())

	if g.Width != 0 {
		t.Errorf("Expected width 0, got %d", g.Width)
	}
	for _, row := range g.Rows {
		if !row.Blank {
			t.Errorf("Expected row %d to be blank", row.Index)
		}
	}
}

func TestNormalizeMerges(t *testing.T) {
	sheet := newSheet(2, 3)
	sheet.Rows[0][0].Value = "Header"
	sheet.Rows[1][2].Value = "x"
	sheet.Merges = []models.MergedRange{
		{Start: models.Coord{Row: 1, Col: 1}, End: models.Coord{Row: 2, Col: 2}},
	}

	g := Normalize(sheet, models.StandardDefaults())

	expected := [][]Tag{
		{MergeLeader, MergeFollower, PlainEmpty},
		{MergeFollower, MergeFollower, Content},
	}
	for r, tags := range expected {
		for c, tag := range tags {
			slot := g.Rows[r].Slots[c]
			if slot.Tag != tag {
				t.Errorf("Slot (%d,%d): expected %s, got %s", r+1, c+1, tag, slot.Tag)
			}
			if (tag == MergeLeader || tag == MergeFollower) && slot.Merge != &sheet.Merges[0] {
				t.Errorf("Slot (%d,%d): expected the merged range to be attached", r+1, c+1)
			}
		}
	}
}

func TestNormalizeFollowerOnlyRowIsBlank(t *testing.T) {
	sheet := newSheet(2, 1)
	sheet.Rows[0][0].Value = "Tall"
	sheet.Merges = []models.MergedRange{
		{Start: models.Coord{Row: 1, Col: 1}, End: models.Coord{Row: 2, Col: 1}},
	}

	g := Normalize(sheet, models.StandardDefaults())

	if !g.Rows[1].Blank {
		t.Error("Expected a row holding only unstyled merge followers to be blank")
	}
}
