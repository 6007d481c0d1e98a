package models

import "strings"

// ColorSpace identifies how a color is encoded in the workbook.
type ColorSpace int

const (
	// ColorNone means no color is set.
	ColorNone ColorSpace = iota
	// ColorRGB is a direct ARGB encoding.
	ColorRGB
	// ColorTheme is a reference into the workbook theme.
	ColorTheme
	// ColorIndexed is a reference into the legacy indexed palette.
	ColorIndexed
)

// Color is a style color.
type Color struct {
	// Space is the color encoding.
	Space ColorSpace
	// ARGB is the 8-hex-digit color code, set only for ColorRGB.
	ARGB string
}

// RGB returns a direct ARGB color.
func RGB(argb string) Color {
	return Color{Space: ColorRGB, ARGB: argb}
}

// Hex converts the color to "#RRGGBB" by dropping the alpha pair.
// It returns false for non-RGB colors or malformed codes.
func (c Color) Hex() (string, bool) {
	if c.Space != ColorRGB || len(c.ARGB) != 8 {
		return "", false
	}
	return "#" + c.ARGB[2:], true
}

// BorderSide is the border of one cell edge.
type BorderSide struct {
	// Style is the line style name (e.g. "thin"); empty means no border.
	Style string
	// Color is the line color.
	Color Color
}

// Borders holds the four cell edges.
type Borders struct {
	Left   BorderSide
	Right  BorderSide
	Top    BorderSide
	Bottom BorderSide
}

// Sides returns the edges in scan order: left, right, top, bottom.
func (b Borders) Sides() [4]BorderSide {
	return [4]BorderSide{b.Left, b.Right, b.Top, b.Bottom}
}

// Any reports whether any edge has a border style set.
func (b Borders) Any() bool {
	for _, side := range b.Sides() {
		if side.Style != "" {
			return true
		}
	}
	return false
}

// Style is the style snapshot of a cell.
type Style struct {
	Bold      bool
	FontName  string
	FontSize  float64
	FontColor Color
	// FillColor is the foreground color of a solid pattern fill.
	FillColor  Color
	Horizontal string
	Vertical   string
	Borders    Borders
}

// Defaults is the unstyled spreadsheet default every style attribute is
// compared against. Colors are "#RRGGBB".
type Defaults struct {
	FontName    string  `yaml:"font_name"`
	FontSize    float64 `yaml:"font_size"`
	FontColor   string  `yaml:"font_color"`
	FillColor   string  `yaml:"fill_color"`
	BorderColor string  `yaml:"border_color"`
	Horizontal  string  `yaml:"align"`
	Vertical    string  `yaml:"valign"`
}

// StandardDefaults returns the defaults of a fresh workbook.
func StandardDefaults() Defaults {
	return Defaults{
		FontName:    "calibri",
		FontSize:    11,
		FontColor:   "#000000",
		FillColor:   "#FFFFFF",
		BorderColor: "#000000",
		Horizontal:  "left",
		Vertical:    "bottom",
	}
}

// FontNameOf returns the lower-cased font name when it differs from the default.
func (d Defaults) FontNameOf(s Style) (string, bool) {
	if s.FontName == "" || strings.EqualFold(s.FontName, d.FontName) {
		return "", false
	}
	return strings.ToLower(s.FontName), true
}

// FontSizeOf returns the integral font size when it differs from the default.
func (d Defaults) FontSizeOf(s Style) (int, bool) {
	if s.FontSize == 0 || s.FontSize == d.FontSize {
		return 0, false
	}
	return int(s.FontSize), true
}

// FontColorOf returns the font color hex when it is RGB and not the default.
func (d Defaults) FontColorOf(s Style) (string, bool) {
	return colorOf(s.FontColor, d.FontColor)
}

// FillColorOf returns the fill color hex when it is RGB and not the default.
func (d Defaults) FillColorOf(s Style) (string, bool) {
	return colorOf(s.FillColor, d.FillColor)
}

// BorderColorOf returns the first RGB non-default border color scanning
// left, right, top, bottom.
func (d Defaults) BorderColorOf(s Style) (string, bool) {
	for _, side := range s.Borders.Sides() {
		if side.Style == "" {
			continue
		}
		if hex, ok := colorOf(side.Color, d.BorderColor); ok {
			return hex, true
		}
	}
	return "", false
}

// HorizontalOf returns the horizontal alignment when it is not the default.
func (d Defaults) HorizontalOf(s Style) (string, bool) {
	if s.Horizontal == "" || s.Horizontal == d.Horizontal {
		return "", false
	}
	return s.Horizontal, true
}

// VerticalOf returns the vertical alignment when it is not the default.
// "center" is reported as "vcenter".
func (d Defaults) VerticalOf(s Style) (string, bool) {
	if s.Vertical == "" || s.Vertical == d.Vertical {
		return "", false
	}
	if s.Vertical == "center" {
		return "vcenter", true
	}
	return s.Vertical, true
}

// Styled reports whether any attribute of s deviates from the defaults.
func (d Defaults) Styled(s Style) bool {
	if s.Bold || s.Borders.Any() {
		return true
	}
	checks := []func(Style) (string, bool){
		d.FontNameOf, d.FontColorOf, d.FillColorOf, d.HorizontalOf, d.VerticalOf,
	}
	for _, check := range checks {
		if _, ok := check(s); ok {
			return true
		}
	}
	_, ok := d.FontSizeOf(s)
	return ok
}

func colorOf(c Color, def string) (string, bool) {
	hex, ok := c.Hex()
	if !ok || strings.EqualFold(hex, def) {
		return "", false
	}
	return hex, true
}
