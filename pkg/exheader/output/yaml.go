// Package output renders page header documents.
package output

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ukaji3/exheader-go/pkg/exheader/models"
)

const indent = "    "

// ToYAML renders doc under template.format.page_header. Every nesting
// level is indented by four spaces, keys keep their canonical order, and
// one empty row closes the list. Lines are joined by "\n" without a
// trailing newline.
func ToYAML(doc models.Document) string {
	lines := []string{
		"template:",
		indent + "format:",
		indent + indent + "page_header:",
	}
	rowPrefix := strings.Repeat(indent, 3)
	cellPrefix := strings.Repeat(indent, 4)
	keyPrefix := strings.Repeat(indent, 5)

	for _, row := range doc.Rows {
		if row.Blank() {
			lines = append(lines, rowPrefix+"- []")
			continue
		}
		lines = append(lines, rowPrefix+"-")
		for _, cell := range row.Cells {
			if cell == nil {
				lines = append(lines, cellPrefix+"- null")
				continue
			}
			lines = append(lines, cellPrefix+"-")
			for _, field := range cell.Fields() {
				if m, ok := field.Value.(*models.Merge); ok {
					lines = append(lines,
						keyPrefix+field.Key+":",
						keyPrefix+indent+"from_to: "+Scalar(m.FromTo))
					continue
				}
				lines = append(lines, keyPrefix+field.Key+": "+Scalar(field.Value))
			}
		}
	}
	lines = append(lines, rowPrefix+"- []")
	return strings.Join(lines, "\n")
}

// Scalar formats a value: booleans and numbers bare, expressions unquoted,
// any other text single-quoted. Text that cannot live on one single-quoted
// line is double-quoted with escapes.
func Scalar(v interface{}) string {
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return models.FormatFloat(val)
	case models.Expression:
		return string(val)
	case string:
		return quote(val)
	default:
		return quote(fmt.Sprint(val))
	}
}

func quote(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) >= 0 {
		return strconv.Quote(s)
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
