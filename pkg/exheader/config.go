package exheader

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// LoadConfig reads a YAML config file on top of DefaultOptions.
func LoadConfig(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return opts, opts.Validate()
}

// Validate checks that the defaults are usable for comparison.
func (o Options) Validate() error {
	d := o.Defaults
	if d.FontName == "" {
		return fmt.Errorf("%w: defaults.font_name is required", ErrInvalidConfig)
	}
	if d.FontSize <= 0 {
		return fmt.Errorf("%w: defaults.font_size must be > 0", ErrInvalidConfig)
	}
	colors := []struct {
		key, value string
	}{
		{"font_color", d.FontColor},
		{"fill_color", d.FillColor},
		{"border_color", d.BorderColor},
	}
	for _, c := range colors {
		if !hexColor.MatchString(c.value) {
			return fmt.Errorf("%w: defaults.%s must be #RRGGBB, got %q", ErrInvalidConfig, c.key, c.value)
		}
	}
	if d.Horizontal == "" || d.Vertical == "" {
		return fmt.Errorf("%w: defaults.align and defaults.valign are required", ErrInvalidConfig)
	}
	return nil
}
