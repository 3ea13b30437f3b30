package textable

import (
	"math"
	"strconv"
	"strings"
)

// parseNumber reports the finite numeric value of a cell, if it has one.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// roundCell rounds a numeric cell to o.Round decimals. Whole results drop
// the fraction when o.MakeInts is set and keep a single ".0" otherwise.
// Magnitudes from 1e16 up, or below 1e-4, are written in exponent form
// such as "1e+21" and never lose a fraction. Cells that are not numbers,
// and every cell while rounding is disabled, are returned unchanged.
func roundCell(cell string, o Options) string {
	if o.Round < 0 {
		return cell
	}
	f, ok := parseNumber(cell)
	if !ok {
		return cell
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', o.Round, 64), 64)
	if err != nil {
		return cell
	}
	if r == 0 {
		r = 0 // drop the sign of negative zero
	}
	if a := math.Abs(r); a >= 1e16 || (a != 0 && a < 1e-4) {
		return strconv.FormatFloat(r, 'e', -1, 64)
	}
	if r == math.Trunc(r) {
		if o.MakeInts {
			return strconv.FormatFloat(r, 'f', 0, 64)
		}
		return strconv.FormatFloat(r, 'f', 1, 64)
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// DefaultThresholds returns the significance levels used when
// [Table.Interpret] is called without thresholds: 0.05, 0.01 and 0.001.
func DefaultThresholds() []float64 {
	return []float64{0.05, 0.01, 0.001}
}

// marker returns one repetition of char for every threshold the numeric
// value of cell is less than or equal to. Non-numeric cells get no marker.
func marker(cell string, thresholds []float64, char string) string {
	f, ok := parseNumber(cell)
	if !ok {
		return ""
	}
	var b strings.Builder
	for _, t := range thresholds {
		if f <= t {
			b.WriteString(char)
		}
	}
	return b.String()
}

// Interpret marks cells as significant, treating numeric cells as p-values.
// Every marker is cleared first; unless reset is true, each cell then
// receives the sig_char option once per threshold its value is at or below.
// Thresholds are independent comparisons, not exclusive bands. A nil
// threshold list uses [DefaultThresholds]; an empty one marks nothing.
func (t *Table) Interpret(reset bool, thresholds ...float64) {
	if thresholds == nil {
		thresholds = DefaultThresholds()
	}
	sig := newMatrix(len(t.st.grid), t.st.width)
	if !reset {
		for i, row := range t.st.grid {
			for j, cell := range row {
				sig[i][j] = marker(cell, thresholds, t.st.opts.SigChar)
			}
		}
	}
	t.st.sig = sig
}
