package models

import "fmt"

// WarningKind classifies advisory warnings.
type WarningKind string

// WarningLogo flags content in the cell below a logo placeholder.
const WarningLogo WarningKind = "logo"

// Warning is a non-fatal design issue found during translation.
type Warning struct {
	Kind WarningKind
	// Cause is the cell producing the issue (the logo cell).
	Cause Coord
	// Affected is the cell whose content is affected.
	Affected Coord
	// Content is the text of the affected cell.
	Content string
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningLogo:
		return fmt.Sprintf("Logo Warning: Data '%s' in cell %s may be obscured by the Logo in %s.",
			w.Content, w.Affected, w.Cause)
	default:
		return fmt.Sprintf("%s warning: cell %s affects cell %s", w.Kind, w.Cause, w.Affected)
	}
}
