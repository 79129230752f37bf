package tinct

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Table lays out a grid of chunks as a column-aligned table and
// returns the flat chunk sequence ready for [Render] or [Write].
//
// Rows may have unequal lengths; short rows are padded with empty
// chunks to the longest row. Each column is as wide as its widest
// cell, measured in code points, and every cell is right-padded with
// unstyled spaces to the column width. A single unstyled space
// separates adjacent columns, and every row ends with a "\n" chunk.
// Alignment depends only on cell text, never on styling, so colouring
// a cell cannot shift its neighbours.
func Table(rows [][]Chunk) []Chunk {
	if len(rows) == 0 {
		return nil
	}

	numCols := 0
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	widths := make([]int, numCols)
	for _, row := range rows {
		for j, cell := range row {
			if w := utf8.RuneCountInString(cell.text); w > widths[j] {
				widths[j] = w
			}
		}
	}

	sep := Text(" ")
	newline := Text("\n")

	var out []Chunk
	for _, row := range rows {
		for j := 0; j < numCols; j++ {
			var cell Chunk
			if j < len(row) {
				cell = row[j]
			}
			out = append(out, cell)
			pad := widths[j] - utf8.RuneCountInString(cell.text)
			out = append(out, Text(strings.Repeat(" ", pad)))
			if j < numCols-1 {
				out = append(out, sep)
			}
		}
		out = append(out, newline)
	}
	return out
}

// WriteTable lays out rows with [Table] and writes the rendered bytes
// to w at the given capability.
func WriteTable(w io.Writer, cap Capability, rows [][]Chunk) error {
	return Write(w, cap, Table(rows)...)
}
