package exheader

import (
	"errors"
	"fmt"

	"github.com/ukaji3/exheader-go/pkg/exheader/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoActiveSheet indicates the workbook has no active sheet.
var ErrNoActiveSheet = parser.ErrNoActiveSheet

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrInvalidConfig indicates a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// TranslationError represents an error during translation.
type TranslationError struct {
	SheetName string
	Stage     string // "open", "read"
	Err       error
}

func (e *TranslationError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("translation error (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("translation error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

// NewTranslationError creates a new TranslationError.
func NewTranslationError(sheetName, stage string, err error) *TranslationError {
	return &TranslationError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
