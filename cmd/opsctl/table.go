package main

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// table renders rows as space-padded columns aligned by display width
type table struct {
	header []string
	rows   [][]string
	styles map[int]func(cell string) *color.Color
}

func newTable(header ...string) *table {
	return &table{header: header, styles: map[int]func(string) *color.Color{}}
}

// style colours a column; widths are measured on the plain text
func (t *table) style(col int, fn func(cell string) *color.Color) *table {
	t.styles[col] = fn
	return t
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(w io.Writer) error {
	widths := make([]int, len(t.header))
	for _, row := range append([][]string{t.header}, t.rows...) {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if width := runewidth.StringWidth(row[i]); width > widths[i] {
				widths[i] = width
			}
		}
	}

	var sb strings.Builder
	writeRow := func(row []string, styled bool) {
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			padded := cell
			if i < len(widths)-1 {
				padded = runewidth.FillRight(cell, widths[i]) + "  "
			}
			if fn, ok := t.styles[i]; ok && styled {
				if c := fn(cell); c != nil {
					padded = c.Sprint(padded)
				}
			}
			sb.WriteString(padded)
		}
		sb.WriteString("\n")
	}

	writeRow(t.header, false)
	separator := make([]string, len(widths))
	for i, width := range widths {
		separator[i] = strings.Repeat("-", width)
	}
	writeRow(separator, false)
	for _, row := range t.rows {
		writeRow(row, true)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// truncate shortens s to max display columns
func truncate(s string, max int) string {
	return runewidth.Truncate(s, max, "…")
}
