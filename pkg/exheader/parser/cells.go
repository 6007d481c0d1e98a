package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/exheader-go/pkg/exheader/models"
	"github.com/xuri/excelize/v2"
)

var rawValue = excelize.Options{RawCellValue: true}

// cellReader decodes single cells of one sheet, caching resolved styles.
type cellReader struct {
	f         *excelize.File
	sheetName string
	styles    map[int]decodedStyle
	date1904  bool
}

func newCellReader(f *excelize.File, sheetName string) *cellReader {
	r := &cellReader{
		f:         f,
		sheetName: sheetName,
		styles:    make(map[int]decodedStyle),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	return r
}

func (r *cellReader) read(coord models.Coord) (models.Cell, error) {
	cell := models.Cell{Coord: coord}
	name, err := excelize.CoordinatesToCellName(coord.Col, coord.Row)
	if err != nil {
		return cell, err
	}

	styleID, err := r.f.GetCellStyle(r.sheetName, name)
	if err != nil {
		return cell, err
	}
	style, err := r.style(styleID)
	if err != nil {
		return cell, err
	}
	cell.Style = style.Style

	cell.Value, err = r.value(name, style)
	return cell, err
}

// value returns the typed cell value, or nil for an empty cell. Formulas
// are reported as their source text.
func (r *cellReader) value(name string, style decodedStyle) (interface{}, error) {
	formula, err := r.f.GetCellFormula(r.sheetName, name)
	if err != nil {
		return nil, err
	}
	if formula != "" {
		return "=" + formula, nil
	}

	raw, err := r.f.GetCellValue(r.sheetName, name, rawValue)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	cellType, err := r.f.GetCellType(r.sheetName, name)
	if err != nil {
		return nil, err
	}
	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError, excelize.CellTypeDate:
		return raw, nil
	}

	v := parseValue(raw)
	if style.isDate {
		if num, ok := v.(float64); ok {
			return formatDate(num, r.date1904), nil
		}
		if num, ok := v.(int64); ok {
			return formatDate(float64(num), r.date1904), nil
		}
	}
	return v, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// formatDate renders a serial date as "2006-01-02 15:04:05", or as
// "15:04:05" for pure times (serials below one day).
func formatDate(serial float64, date1904 bool) interface{} {
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return serial
	}
	if serial >= 0 && serial < 1 {
		return t.Format("15:04:05")
	}
	return t.Format("2006-01-02 15:04:05")
}
