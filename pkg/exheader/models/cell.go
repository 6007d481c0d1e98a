// Package models defines data structures for header translation.
package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Coord is a 1-based cell coordinate.
type Coord struct {
	// Row is the row index (1-based).
	Row int
	// Col is the column index (1-based).
	Col int
}

// String returns the spreadsheet-style name of the coordinate (e.g. "A1").
func (c Coord) String() string {
	name, err := excelize.CoordinatesToCellName(c.Col, c.Row)
	if err != nil {
		return fmt.Sprintf("R%dC%d", c.Row, c.Col)
	}
	return name
}

// Below returns the coordinate directly under c.
func (c Coord) Below() Coord {
	return Coord{Row: c.Row + 1, Col: c.Col}
}

// Cell is a decoded spreadsheet cell.
type Cell struct {
	// Coord is the cell position.
	Coord Coord
	// Value is nil when absent, otherwise string, int64, float64 or bool.
	Value interface{}
	// Style is the cell's style snapshot.
	Style Style
}

// HasValue reports whether the cell carries a value.
func (c Cell) HasValue() bool {
	return c.Value != nil
}

// Text returns the trimmed text form of the cell value.
func (c Cell) Text() string {
	return strings.TrimSpace(FormatValue(c.Value))
}

// FormatValue renders a cell value the way it reads in the sheet:
// integers bare, floats in shortest form with a ".0" suffix when integral,
// booleans as True/False.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return FormatFloat(val)
	default:
		return fmt.Sprint(val)
	}
}

// FormatFloat renders f in shortest round-trip form. Integral values keep a
// ".0" suffix; exponent notation is used below 1e-4 and from 1e16 upward.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
