package models

import "fmt"

// Sheet is a decoded worksheet. It is read-only during translation.
type Sheet struct {
	// Name is the worksheet name.
	Name string
	// Rows holds the cells of each row; Rows[i] is row i+1.
	Rows [][]Cell
	// Merges contains the merged ranges of the sheet. Ranges never overlap.
	Merges []MergedRange
	// PrintArea is the user-defined print area, if any.
	PrintArea *PrintArea
}

// Cell returns the cell at coord. Coordinates outside the sheet yield an
// empty cell.
func (s *Sheet) Cell(coord Coord) Cell {
	if coord.Row >= 1 && coord.Row <= len(s.Rows) {
		row := s.Rows[coord.Row-1]
		if coord.Col >= 1 && coord.Col <= len(row) {
			return row[coord.Col-1]
		}
	}
	return Cell{Coord: coord}
}

// MergeAt returns the merged range containing coord, or nil.
func (s *Sheet) MergeAt(coord Coord) *MergedRange {
	for i := range s.Merges {
		if s.Merges[i].Contains(coord) {
			return &s.Merges[i]
		}
	}
	return nil
}

// MergedRange is an inclusive rectangular span of merged cells. Start is
// the anchor (top-left) cell.
type MergedRange struct {
	Start Coord
	End   Coord
}

// Contains reports whether coord lies inside the range.
func (m MergedRange) Contains(coord Coord) bool {
	return coord.Row >= m.Start.Row && coord.Row <= m.End.Row &&
		coord.Col >= m.Start.Col && coord.Col <= m.End.Col
}

// IsAnchor reports whether coord is the range's top-left cell.
func (m MergedRange) IsAnchor(coord Coord) bool {
	return coord == m.Start
}

// Ref returns the range reference (e.g. "A1:C1").
func (m MergedRange) Ref() string {
	return fmt.Sprintf("%s:%s", m.Start, m.End)
}
