// Package exheader translates spreadsheet page header designs into
// template documents.
package exheader

import (
	"log/slog"

	"github.com/ukaji3/exheader-go/pkg/exheader/models"
)

// Options configures translation behavior.
type Options struct {
	// Defaults are the style values treated as "unstyled".
	Defaults models.Defaults `yaml:"defaults"`
	// Sheet names the sheet to translate. Empty means the active sheet.
	Sheet string `yaml:"sheet"`
	// UsePrintArea clips the translated area to the sheet's print area.
	UsePrintArea bool `yaml:"print_area"`
	// Logger receives debug output. If nil, slog.Default() is used.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultOptions returns default translation options.
func DefaultOptions() Options {
	return Options{
		Defaults: models.StandardDefaults(),
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
