// Package descriptor turns classified cells into page header descriptors.
package descriptor

import (
	"github.com/ukaji3/exheader-go/pkg/exheader/grid"
	"github.com/ukaji3/exheader-go/pkg/exheader/models"
)

// Markers recognised in cell text.
const (
	LogoMarker        = "<Logo>"
	PlaceholderMarker = "<placeholder>"
)

// PlaceholderValue is the expression emitted for placeholder cells.
const PlaceholderValue models.Expression = `return "<placeholder>"`

// Builder builds cell descriptors against a fixed set of style defaults.
type Builder struct {
	defaults models.Defaults
}

// NewBuilder returns a Builder comparing styles against defaults.
func NewBuilder(defaults models.Defaults) *Builder {
	return &Builder{defaults: defaults}
}

// Build produces the row descriptors of g in order, plus the warnings
// raised while building them. The trailing empty row is not included.
func (b *Builder) Build(sheet *models.Sheet, g *grid.Grid) (models.Document, []models.Warning) {
	var (
		doc      models.Document
		warnings []models.Warning
	)
	doc.Rows = make([]models.RowDescriptor, 0, len(g.Rows))
	for _, row := range g.Rows {
		if row.Blank {
			doc.Rows = append(doc.Rows, models.RowDescriptor{})
			continue
		}
		cells := make([]*models.CellDescriptor, len(row.Slots))
		for i, slot := range row.Slots {
			cells[i] = b.Cell(slot)
			if w, ok := logoWarning(sheet, slot); ok {
				warnings = append(warnings, w)
			}
		}
		doc.Rows = append(doc.Rows, models.RowDescriptor{Cells: cells})
	}
	return doc, warnings
}

// Cell builds the descriptor of one slot. It returns nil when the cell has
// nothing to express. Merge followers are always nil: a merged range's
// border is reported on its leader only.
func (b *Builder) Cell(slot grid.Slot) *models.CellDescriptor {
	switch slot.Tag {
	case grid.PlainEmpty, grid.MergeFollower:
		return nil
	}

	d := &models.CellDescriptor{}
	if slot.Tag == grid.MergeLeader && slot.Merge != nil {
		d.Merge = &models.Merge{FromTo: slot.Merge.Ref()}
	}
	applyValue(d, slot.Cell)
	b.applyStyle(d, slot.Cell.Style)

	if d.IsEmpty() {
		return nil
	}
	return d
}

func applyValue(d *models.CellDescriptor, cell models.Cell) {
	if !cell.HasValue() {
		return
	}
	switch cell.Text() {
	case LogoMarker:
		d.Type = models.TypeLogo
		d.Value = true
	case PlaceholderMarker:
		d.Type = models.TypeExpert
		d.Value = PlaceholderValue
	default:
		d.Value = cell.Value
	}
}

func (b *Builder) applyStyle(d *models.CellDescriptor, s models.Style) {
	def := b.defaults
	d.Bold = s.Bold
	d.FontName, _ = def.FontNameOf(s)
	d.FontSize, _ = def.FontSizeOf(s)
	d.FontColor, _ = def.FontColorOf(s)
	d.BgColor, _ = def.FillColorOf(s)
	d.Align, _ = def.HorizontalOf(s)
	d.VAlign, _ = def.VerticalOf(s)
	if s.Borders.Any() {
		d.Border = 1
		d.BorderColor, _ = def.BorderColorOf(s)
	}
}

func logoWarning(sheet *models.Sheet, slot grid.Slot) (models.Warning, bool) {
	switch slot.Tag {
	case grid.Content, grid.MergeLeader:
	default:
		return models.Warning{}, false
	}
	if !slot.Cell.HasValue() || slot.Cell.Text() != LogoMarker {
		return models.Warning{}, false
	}
	coord := slot.Cell.Coord.Below()
	below := sheet.Cell(coord)
	if !below.HasValue() {
		return models.Warning{}, false
	}
	return models.Warning{
		Kind:     models.WarningLogo,
		Cause:    slot.Cell.Coord,
		Affected: coord,
		Content:  models.FormatValue(below.Value),
	}, true
}
