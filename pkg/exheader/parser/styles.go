package parser

import (
	"strings"

	"github.com/ukaji3/exheader-go/pkg/exheader/models"
	"github.com/xuri/excelize/v2"
)

// solidPattern is the excelize pattern index of a solid fill.
const solidPattern = 1

// borderStyleNames maps excelize border style indexes to OOXML names.
var borderStyleNames = map[int]string{
	1:  "thin",
	2:  "medium",
	3:  "dashed",
	4:  "dotted",
	5:  "thick",
	6:  "double",
	7:  "hair",
	8:  "mediumDashed",
	9:  "dashDot",
	10: "mediumDashDot",
	11: "dashDotDot",
	12: "mediumDashDotDot",
	13: "slantDashDot",
}

// decodedStyle is a style snapshot plus number format facts needed to
// decode values.
type decodedStyle struct {
	models.Style
	isDate bool
}

func (r *cellReader) style(id int) (decodedStyle, error) {
	if s, ok := r.styles[id]; ok {
		return s, nil
	}
	st, err := r.f.GetStyle(id)
	if err != nil {
		return decodedStyle{}, err
	}
	s := decodeStyle(st)
	r.sheetColors(id, &s)
	r.styles[id] = s
	return s, nil
}

// sheetColors replaces the colors decoded by GetStyle with their encodings
// in the style sheet. GetStyle resolves theme and indexed references to RGB,
// which would make them indistinguishable from direct colors.
func (r *cellReader) sheetColors(id int, s *decodedStyle) {
	ss := r.f.Styles
	if ss == nil || ss.CellXfs == nil || id < 0 || id >= len(ss.CellXfs.Xf) {
		return
	}
	xf := ss.CellXfs.Xf[id]

	if xf.FontID != nil && ss.Fonts != nil && *xf.FontID < len(ss.Fonts.Font) {
		if font := ss.Fonts.Font[*xf.FontID]; font != nil {
			s.FontColor = models.Color{}
			if c := font.Color; c != nil {
				s.FontColor = sheetColor(c.RGB, c.Theme, c.Auto)
			}
		}
	}

	if xf.FillID != nil && ss.Fills != nil && *xf.FillID < len(ss.Fills.Fill) {
		if fill := ss.Fills.Fill[*xf.FillID]; fill != nil {
			s.FillColor = models.Color{}
			if pf := fill.PatternFill; pf != nil && pf.PatternType == "solid" && pf.FgColor != nil {
				s.FillColor = sheetColor(pf.FgColor.RGB, pf.FgColor.Theme, pf.FgColor.Auto)
			}
		}
	}

	if xf.BorderID == nil || ss.Borders == nil || *xf.BorderID >= len(ss.Borders.Border) {
		return
	}
	b := ss.Borders.Border[*xf.BorderID]
	if b == nil {
		return
	}
	if s.Borders.Left.Style != "" {
		s.Borders.Left.Color = models.Color{}
		if b.Left != nil && b.Left.Color != nil {
			s.Borders.Left.Color = sheetColor(b.Left.Color.RGB, b.Left.Color.Theme, b.Left.Color.Auto)
		}
	}
	if s.Borders.Right.Style != "" {
		s.Borders.Right.Color = models.Color{}
		if b.Right != nil && b.Right.Color != nil {
			s.Borders.Right.Color = sheetColor(b.Right.Color.RGB, b.Right.Color.Theme, b.Right.Color.Auto)
		}
	}
	if s.Borders.Top.Style != "" {
		s.Borders.Top.Color = models.Color{}
		if b.Top != nil && b.Top.Color != nil {
			s.Borders.Top.Color = sheetColor(b.Top.Color.RGB, b.Top.Color.Theme, b.Top.Color.Auto)
		}
	}
	if s.Borders.Bottom.Style != "" {
		s.Borders.Bottom.Color = models.Color{}
		if b.Bottom != nil && b.Bottom.Color != nil {
			s.Borders.Bottom.Color = sheetColor(b.Bottom.Color.RGB, b.Bottom.Color.Theme, b.Bottom.Color.Auto)
		}
	}
}

// sheetColor classifies a style sheet color element. A theme reference wins
// over an rgb attribute; an element with neither is an indexed reference.
func sheetColor(rgb string, theme *int, auto bool) models.Color {
	switch {
	case theme != nil:
		return models.Color{Space: models.ColorTheme}
	case rgb != "":
		return rgbColor(rgb)
	case auto:
		return models.Color{}
	default:
		return models.Color{Space: models.ColorIndexed}
	}
}

func decodeStyle(st *excelize.Style) decodedStyle {
	var s decodedStyle
	if st == nil {
		return s
	}

	if font := st.Font; font != nil {
		s.Bold = font.Bold
		s.FontName = font.Family
		s.FontSize = font.Size
		s.FontColor = fontColor(font)
	}

	if st.Fill.Type == "pattern" && st.Fill.Pattern == solidPattern && len(st.Fill.Color) > 0 {
		s.FillColor = rgbColor(st.Fill.Color[0])
	}

	if align := st.Alignment; align != nil {
		s.Horizontal = align.Horizontal
		s.Vertical = align.Vertical
	}

	for _, b := range st.Border {
		name := borderStyleNames[b.Style]
		if name == "" {
			continue
		}
		side := models.BorderSide{Style: name, Color: rgbColor(b.Color)}
		switch b.Type {
		case "left":
			s.Borders.Left = side
		case "right":
			s.Borders.Right = side
		case "top":
			s.Borders.Top = side
		case "bottom":
			s.Borders.Bottom = side
		}
	}

	s.isDate = isDateFormat(st.NumFmt, st.CustomNumFmt)
	return s
}

func fontColor(font *excelize.Font) models.Color {
	if c := rgbColor(font.Color); c.Space == models.ColorRGB {
		return c
	}
	if font.ColorTheme != nil {
		return models.Color{Space: models.ColorTheme}
	}
	if font.ColorIndexed != 0 {
		return models.Color{Space: models.ColorIndexed}
	}
	return models.Color{}
}

// rgbColor normalizes an excelize color string to an 8-digit ARGB color.
// Six-digit codes get an opaque alpha; anything else is no color.
func rgbColor(code string) models.Color {
	code = strings.ToUpper(strings.TrimPrefix(code, "#"))
	switch len(code) {
	case 6:
		return models.RGB("FF" + code)
	case 8:
		return models.RGB(code)
	default:
		return models.Color{}
	}
}

// isDateFormat reports whether a number format renders dates or times.
func isDateFormat(numFmt int, custom *string) bool {
	switch {
	case numFmt >= 14 && numFmt <= 22, numFmt >= 45 && numFmt <= 47:
		return true
	}
	if custom == nil {
		return false
	}
	code := stripLiterals(strings.ToLower(*custom))
	return strings.ContainsAny(code, "ydh") || strings.Contains(code, "ss")
}

// stripLiterals removes quoted text, escaped characters and bracketed
// sections from a number format code.
func stripLiterals(code string) string {
	var b strings.Builder
	inQuote, inBracket, escaped := false, false, false
	for _, ch := range code {
		switch {
		case escaped:
			escaped = false
		case inQuote:
			inQuote = ch != '"'
		case inBracket:
			inBracket = ch != ']'
		case ch == '\\':
			escaped = true
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}
