package textable

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// frame holds the glyphs of a rounded box: one rule per edge, each listed
// as left corner, column junction and right corner.
var frame = struct {
	rule, bar           string
	top, divide, bottom [3]string
}{
	rule:   "─",
	bar:    "│",
	top:    [3]string{"╭", "┬", "╮"},
	divide: [3]string{"├", "┼", "┤"},
	bottom: [3]string{"╰", "┴", "╯"},
}

// writeBoxed draws pairs as a two-column table inside a rounded frame, with
// the header ruled off from the body. Widths are measured in terminal cells
// so wide characters line up. The listing is written in a single call.
func writeBoxed(w io.Writer, header []string, pairs []KeyValue) error {
	rows := pairRows(pairs)
	widths := columnWidths(header, rows)

	var b strings.Builder
	edge := func(glyphs [3]string) {
		b.WriteString(glyphs[0])
		for i, width := range widths {
			if i > 0 {
				b.WriteString(glyphs[1])
			}
			b.WriteString(strings.Repeat(frame.rule, width+2))
		}
		b.WriteString(glyphs[2] + "\n")
	}
	line := func(cells []string) {
		for i, width := range widths {
			b.WriteString(frame.bar + " " + runewidth.FillRight(cells[i], width) + " ")
		}
		b.WriteString(frame.bar + "\n")
	}

	edge(frame.top)
	line(header)
	edge(frame.divide)
	for _, row := range rows {
		line(row)
	}
	edge(frame.bottom)

	_, err := io.WriteString(w, b.String())
	return err
}

func pairRows(pairs []KeyValue) [][]string {
	rows := make([][]string, len(pairs))
	for i, kv := range pairs {
		rows[i] = []string{kv.Key, kv.Value}
	}
	return rows
}

// columnWidths returns the display width of the widest cell in each header
// column, header included. Rows are as wide as header.
func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return widths
}
