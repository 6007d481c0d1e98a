package exheader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exheader.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
sheet: Design
print_area: true
defaults:
  font_name: arial
  font_size: 10
`)

	opts, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if opts.Sheet != "Design" || !opts.UsePrintArea {
		t.Errorf("Unexpected options %+v", opts)
	}
	if opts.Defaults.FontName != "arial" || opts.Defaults.FontSize != 10 {
		t.Errorf("Expected overridden font defaults, got %+v", opts.Defaults)
	}
	if opts.Defaults.FillColor != "#FFFFFF" || opts.Defaults.Vertical != "bottom" {
		t.Errorf("Expected untouched defaults to remain, got %+v", opts.Defaults)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []string{
		"defaults:\n  font_size: 0\n",
		"defaults:\n  fill_color: white\n",
		"defaults:\n  font_name: ''\n",
	}

	for _, content := range tests {
		if _, err := LoadConfig(writeConfig(t, content)); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig for %q, got %v", content, err)
		}
	}

	if _, err := LoadConfig(writeConfig(t, "defaults: [")); err == nil {
		t.Error("Expected a parse error for malformed YAML")
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}

func TestDefaultOptionsValid(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("Expected default options to validate, got %v", err)
	}
}
