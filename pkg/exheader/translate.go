package exheader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/ukaji3/exheader-go/pkg/exheader/descriptor"
	"github.com/ukaji3/exheader-go/pkg/exheader/grid"
	"github.com/ukaji3/exheader-go/pkg/exheader/models"
	"github.com/ukaji3/exheader-go/pkg/exheader/output"
	"github.com/ukaji3/exheader-go/pkg/exheader/parser"
	"github.com/xuri/excelize/v2"
)

// Result is the outcome of a successful translation.
type Result struct {
	// SheetName is the translated sheet.
	SheetName string
	// Document is the page header document text.
	Document string
	// Warnings are advisory design issues, in sheet order.
	Warnings []models.Warning
}

// Translate reads the workbook at path and translates its sheet.
func Translate(path string, opts Options) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, NewTranslationError("", "open", fmt.Errorf("%w: %w", ErrInvalidFormat, err))
	}
	defer f.Close()

	return TranslateFile(f, opts)
}

// TranslateReader reads a workbook from r and translates its sheet.
func TranslateReader(r io.Reader, opts Options) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewTranslationError("", "open", fmt.Errorf("%w: %w", ErrInvalidFormat, err))
	}
	defer f.Close()

	return TranslateFile(f, opts)
}

// TranslateFile translates a sheet of an opened workbook.
func TranslateFile(f *excelize.File, opts Options) (*Result, error) {
	sheetName, err := parser.ResolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, NewTranslationError(opts.Sheet, "open", err)
	}

	sheet, err := parser.ReadSheet(f, sheetName, opts.UsePrintArea)
	if err != nil {
		return nil, NewTranslationError(sheetName, "read", err)
	}

	return TranslateSheet(sheet, opts), nil
}

// TranslateSheet translates a decoded sheet. It does no I/O.
func TranslateSheet(sheet *models.Sheet, opts Options) *Result {
	g := grid.Normalize(sheet, opts.Defaults)
	doc, warnings := descriptor.NewBuilder(opts.Defaults).Build(sheet, g)

	opts.logger().Debug("translated sheet",
		"sheet", sheet.Name,
		"rows", len(g.Rows),
		"width", g.Width,
		"merges", len(sheet.Merges),
		"warnings", len(warnings))

	return &Result{
		SheetName: sheet.Name,
		Document:  output.ToYAML(doc),
		Warnings:  warnings,
	}
}
