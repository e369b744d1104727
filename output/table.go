package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
)

// Column describes one table column. Numeric columns are usually
// right-aligned so amounts line up on the decimal point.
type Column struct {
	Title      string
	AlignRight bool
}

// Table renders rows of cells as aligned columns separated by a two-space
// gutter. Cell widths are measured in display cells, so wide runes and
// ANSI-styled cells don't break the alignment. Truncation assumes the
// last column holds plain text.
type Table struct {
	columns  []Column
	rows     [][]string
	maxWidth int
}

// NewTable creates a table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// WithMaxWidth clamps the rendered width; the last column is truncated
// with an ellipsis when a row would overflow. Zero means no limit.
func (t *Table) WithMaxWidth(width int) *Table {
	t.maxWidth = width
	return t
}

// AddRow appends a row. Missing cells render empty; extra cells are
// ignored.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to w, header first.
func (t *Table) Render(w io.Writer) error {
	widths := t.columnWidths()

	header := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = col.Title
	}

	if err := t.renderRow(w, header, widths); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := t.renderRow(w, row, widths); err != nil {
			return err
		}
	}

	return nil
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = ansi.PrintableRuneWidth(col.Title)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := ansi.PrintableRuneWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (t *Table) renderRow(w io.Writer, cells []string, widths []int) error {
	var b strings.Builder
	used := 0
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
			used += 2
		}

		last := i == len(cells)-1
		if t.maxWidth > 0 && last {
			remaining := t.maxWidth - used
			if remaining > 0 && ansi.PrintableRuneWidth(cell) > remaining {
				cell = runewidth.Truncate(cell, remaining, "…")
			}
		}

		if t.columns[i].AlignRight {
			b.WriteString(pad(cell, widths[i], true))
		} else if last {
			// No trailing padding on the final column.
			b.WriteString(cell)
		} else {
			b.WriteString(pad(cell, widths[i], false))
		}
		used += widths[i]
	}

	_, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	return err
}

func pad(cell string, width int, right bool) string {
	gap := width - ansi.PrintableRuneWidth(cell)
	if gap <= 0 {
		return cell
	}
	if right {
		return strings.Repeat(" ", gap) + cell
	}
	return cell + strings.Repeat(" ", gap)
}
