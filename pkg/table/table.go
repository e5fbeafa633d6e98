// Package table renders item records as a column-aligned text table.
package table

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mcitemid/pkg/items"
	"github.com/spf13/afero"
)

const (
	// DefaultTitle is the header of the name column.
	DefaultTitle = "English Name"

	minIDWidth   = 10
	minNameWidth = 20
	padding      = 2
)

// ColumnWidths returns the identifier and name column widths: the longest
// value (in runes) plus padding, with a floor when records is empty.
func ColumnWidths(records []items.Record) (idWidth, nameWidth int) {
	if len(records) == 0 {
		return minIDWidth + padding, minNameWidth + padding
	}

	for _, r := range records {
		idWidth = max(idWidth, utf8.RuneCountInString(r.ID))
		nameWidth = max(nameWidth, utf8.RuneCountInString(r.Name))
	}
	return idWidth + padding, nameWidth + padding
}

// Render writes the header, the separator and one row per record to w.
func Render(w io.Writer, records []items.Record, title string) error {
	if title == "" {
		title = DefaultTitle
	}

	idWidth, nameWidth := ColumnWidths(records)

	bw := bufio.NewWriter(w)
	// fmt pads by rune count, matching ColumnWidths
	row := func(id, name string) {
		fmt.Fprintf(bw, "%-*s | %-*s\n", idWidth, id, nameWidth, name)
	}

	row("ID", title)
	bw.WriteString(strings.Repeat("-", idWidth) + "-+-" + strings.Repeat("-", nameWidth) + "\n")
	for _, r := range records {
		row(r.ID, r.Name)
	}

	return bw.Flush()
}

// WriteFile renders records into path, replacing any existing file.
func WriteFile(fs afero.Fs, path string, records []items.Record, title string) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Render(f, records, title); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
