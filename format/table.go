package format

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LatexTable joins names and pre-formatted values into LaTeX tabular rows,
// one "name & value \\" row per line. The output has no trailing newline.
func LatexTable(names, formatted []string) (string, error) {
	if len(names) != len(formatted) {
		return "", fmt.Errorf("format: %d names for %d values", len(names), len(formatted))
	}

	rows := make([]string, len(names))
	for i := range names {
		rows[i] = fmt.Sprintf(`%s & %s \\`, names[i], formatted[i])
	}
	return strings.Join(rows, "\n"), nil
}

// WriteLatexTable writes the rows built by LatexTable to w.
func WriteLatexTable(w io.Writer, names, formatted []string) error {
	table, err := LatexTable(names, formatted)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, table)
	return err
}

// SaveLatexTable writes the rows built by LatexTable to a UTF-8 file,
// replacing it if it exists.
func SaveLatexTable(filename string, names, formatted []string) error {
	table, err := LatexTable(names, formatted)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, []byte(table), 0o644)
}
