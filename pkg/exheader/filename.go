package exheader

import (
	"path/filepath"
	"strings"
)

// OutputFileName derives the document file name from the input name by
// replacing its extension with ".yaml".
func OutputFileName(input string) string {
	dir, base := filepath.Split(input)
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return dir + base + ".yaml"
}
