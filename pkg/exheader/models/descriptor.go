package models

// Expression is text the templating engine evaluates rather than reads as
// a string literal. It is written unquoted.
type Expression string

// Cell types.
const (
	TypeLogo   = "logo"
	TypeExpert = "expert"
)

// Merge describes the merged range a leader cell spans.
type Merge struct {
	// FromTo is the range reference, e.g. "A1:C1".
	FromTo string
}

// CellDescriptor holds the attributes emitted for one cell. Zero-valued
// fields are not emitted.
type CellDescriptor struct {
	Merge *Merge
	Type  string
	// Value is nil when absent, otherwise string, int64, float64, bool or Expression.
	Value       interface{}
	Bold        bool
	FontName    string
	FontSize    int
	FontColor   string
	BgColor     string
	Align       string
	VAlign      string
	Border      int
	BorderColor string
}

// Field is one emitted key. Merge fields carry a nested Merge value.
type Field struct {
	Key   string
	Value interface{}
}

// Fields returns the populated attributes in canonical order: merge, type,
// value, bold, font_name, font_size, font_color, bg_color, align, valign,
// border, border_color.
func (d *CellDescriptor) Fields() []Field {
	if d == nil {
		return nil
	}
	var fields []Field
	add := func(key string, value interface{}, ok bool) {
		if ok {
			fields = append(fields, Field{Key: key, Value: value})
		}
	}
	add("merge", d.Merge, d.Merge != nil)
	add("type", d.Type, d.Type != "")
	add("value", d.Value, d.Value != nil)
	add("bold", true, d.Bold)
	add("font_name", d.FontName, d.FontName != "")
	add("font_size", d.FontSize, d.FontSize != 0)
	add("font_color", d.FontColor, d.FontColor != "")
	add("bg_color", d.BgColor, d.BgColor != "")
	add("align", d.Align, d.Align != "")
	add("valign", d.VAlign, d.VAlign != "")
	add("border", d.Border, d.Border != 0)
	add("border_color", d.BorderColor, d.BorderColor != "")
	return fields
}

// IsEmpty reports whether the descriptor has no attributes.
func (d *CellDescriptor) IsEmpty() bool {
	return len(d.Fields()) == 0
}

// RowDescriptor is one row of the page header. A nil or empty Cells slice
// marks a blank row; otherwise it has one entry per column, nil entries
// standing for cells with nothing to express.
type RowDescriptor struct {
	Cells []*CellDescriptor
}

// Blank reports whether the row is the empty-row marker.
func (r RowDescriptor) Blank() bool {
	return len(r.Cells) == 0
}

// Document is the page header template of one sheet.
type Document struct {
	// Rows are the sheet rows in order, without the trailing empty row.
	Rows []RowDescriptor
}
