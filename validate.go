package textable

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// measurePattern matches a LaTeX length: a decimal amount followed by a unit
// or a length command.
var measurePattern = regexp.MustCompile(`^\d*\.?\d+(pt|mm|cm|in|ex|em|mu|sp|` +
	`\\baselineskip|\\columnsep|\\columnwidth|\\evensidemargin|\\linewidth|` +
	`\\oddsidemargin|\\paperheight|\\paperwidth|\\parindent|\\parskip|` +
	`\\tabcolsep|\\textheight|\\textwidth|\\topmargin)$`)

// validate checks a candidate state. Structural problems are returned as
// errors; cosmetic ones are logged and kept.
func (t *Table) validate(s *state) error {
	if err := checkShape(s); err != nil {
		return err
	}
	o := s.opts

	if o.RowIndex && len(s.rows) != len(s.grid) {
		return fmt.Errorf("%w: %d row labels for %d rows", ErrDimensionMismatch, len(s.rows), len(s.grid))
	}
	if o.ColIndex && len(s.cols) != s.width {
		return fmt.Errorf("%w: %d column labels for %d columns", ErrDimensionMismatch, len(s.cols), s.width)
	}

	if !o.Align.valid() {
		t.log.Warn("align should be one of c, l, r, p, m, b", "option", OptAlign, "value", string(o.Align))
	}
	if o.Align.needsMeasure() && !measurePattern.MatchString(o.Measure) {
		t.log.Warn("measure should be a LaTeX length such as 1cm, 2in or 3pt when align is p, m or b",
			"option", OptMeasure, "value", o.Measure)
	}

	switch o.HLine {
	case HLineAll, HLineHeader, HLineNone:
	default:
		return fmt.Errorf("%w: %q must be one of all, header, none, got %q", ErrInvalidOption, OptHLine, o.HLine)
	}
	switch o.VLine {
	case VLineAll, VLineIndex, VLineNone:
	default:
		return fmt.Errorf("%w: %q must be one of all, index, none, got %q", ErrInvalidOption, OptVLine, o.VLine)
	}
	if !o.Box.valid() {
		return fmt.Errorf("%w: %q must be all, none, or contain one or more of t, b, l, r, got %q", ErrInvalidOption, OptBox, o.Box)
	}

	if utf8.RuneCountInString(o.SigChar) != 1 {
		t.log.Warn("sig_char should be a single character", "option", OptSigChar, "value", o.SigChar)
	}
	return nil
}

// checkShape verifies the grid and significance matrix are rectangular and
// agree with the recorded width.
func checkShape(s *state) error {
	for i, row := range s.grid {
		if len(row) != s.width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, i, len(row), s.width)
		}
	}
	if len(s.sig) != len(s.grid) {
		return fmt.Errorf("%w: significance markers cover %d rows, want %d", ErrInvalidDimension, len(s.sig), len(s.grid))
	}
	for i, row := range s.sig {
		if len(row) != s.width {
			return fmt.Errorf("%w: significance row %d has %d markers, want %d", ErrInvalidDimension, i, len(row), s.width)
		}
	}
	return nil
}
