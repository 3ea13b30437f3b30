package textable

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// Align is the LaTeX column alignment code.
type Align string

const (
	AlignCenter    Align = "c"
	AlignLeft      Align = "l"
	AlignRight     Align = "r"
	AlignParagraph Align = "p" // top-aligned paragraph column, needs a measure
	AlignMiddle    Align = "m" // middle-aligned paragraph column, needs a measure
	AlignBottom    Align = "b" // bottom-aligned paragraph column, needs a measure
)

func (a Align) valid() bool {
	switch a {
	case AlignCenter, AlignLeft, AlignRight, AlignParagraph, AlignMiddle, AlignBottom:
		return true
	}
	return false
}

func (a Align) needsMeasure() bool {
	return a == AlignParagraph || a == AlignMiddle || a == AlignBottom
}

// HLine controls horizontal rules between rows.
type HLine string

const (
	HLineAll    HLine = "all"
	HLineHeader HLine = "header"
	HLineNone   HLine = "none"
)

// VLine controls vertical rules between columns.
type VLine string

const (
	VLineAll   VLine = "all"
	VLineIndex VLine = "index" // only after the row label column
	VLineNone  VLine = "none"
)

// Box controls the outer border. Besides BoxAll and BoxNone, any string
// containing one or more of the sides 't', 'b', 'l', 'r' is accepted.
type Box string

const (
	BoxAll  Box = "all"
	BoxNone Box = "none"
)

func (b Box) valid() bool {
	return b == BoxAll || b == BoxNone || strings.ContainsAny(string(b), "tblr")
}

// has reports whether the border includes side.
func (b Box) has(side byte) bool {
	return b == BoxAll || strings.IndexByte(string(b), side) >= 0
}

// Option names accepted by [Table.SetOption] and [WithOptions].
const (
	OptAlign         = "align"
	OptMeasure       = "measure"
	OptHLine         = "hline"
	OptVLine         = "vline"
	OptBox           = "box"
	OptRowIndex      = "row_index"
	OptBoldRowIndex  = "bold_row_index"
	OptRowIndexStart = "row_index_start"
	OptColIndex      = "col_index"
	OptBoldColIndex  = "bold_col_index"
	OptColIndexStart = "col_index_start"
	OptRound         = "round"
	OptMakeInts      = "make_ints"
	OptTabIndent     = "tab_indent"
	OptSigChar       = "sig_char"
)

var optionNames = []string{
	OptAlign, OptMeasure, OptHLine, OptVLine, OptBox,
	OptRowIndex, OptBoldRowIndex, OptRowIndexStart,
	OptColIndex, OptBoldColIndex, OptColIndexStart,
	OptRound, OptMakeInts, OptTabIndent, OptSigChar,
}

// OptionNames returns every option name in canonical order.
func OptionNames() []string {
	out := make([]string, len(optionNames))
	copy(out, optionNames)
	return out
}

// Options is the complete rendering configuration of a [Table].
type Options struct {
	Align         Align  `json:"align" yaml:"align" toml:"align"`
	Measure       string `json:"measure" yaml:"measure" toml:"measure"`
	HLine         HLine  `json:"hline" yaml:"hline" toml:"hline"`
	VLine         VLine  `json:"vline" yaml:"vline" toml:"vline"`
	Box           Box    `json:"box" yaml:"box" toml:"box"`
	RowIndex      bool   `json:"row_index" yaml:"row_index" toml:"row_index"`
	BoldRowIndex  bool   `json:"bold_row_index" yaml:"bold_row_index" toml:"bold_row_index"`
	RowIndexStart int    `json:"row_index_start" yaml:"row_index_start" toml:"row_index_start"`
	ColIndex      bool   `json:"col_index" yaml:"col_index" toml:"col_index"`
	BoldColIndex  bool   `json:"bold_col_index" yaml:"bold_col_index" toml:"bold_col_index"`
	ColIndexStart int    `json:"col_index_start" yaml:"col_index_start" toml:"col_index_start"`
	// Round is the number of decimals numeric cells are rounded to.
	// Negative disables rounding.
	Round     int    `json:"round" yaml:"round" toml:"round"`
	MakeInts  bool   `json:"make_ints" yaml:"make_ints" toml:"make_ints"`
	TabIndent int    `json:"tab_indent" yaml:"tab_indent" toml:"tab_indent"`
	SigChar   string `json:"sig_char" yaml:"sig_char" toml:"sig_char"`
}

// DefaultOptions returns the options a new [Table] starts with.
func DefaultOptions() Options {
	return Options{
		Align:         AlignCenter,
		Measure:       "1cm",
		HLine:         HLineAll,
		VLine:         VLineAll,
		Box:           BoxAll,
		RowIndex:      true,
		BoldRowIndex:  true,
		RowIndexStart: 1,
		ColIndex:      true,
		BoldColIndex:  true,
		ColIndexStart: 1,
		Round:         -1,
		MakeInts:      true,
		TabIndent:     4,
		SigChar:       "*",
	}
}

// Pairs returns the options as name/value pairs in canonical order.
func (o Options) Pairs() []KeyValue {
	return []KeyValue{
		{OptAlign, string(o.Align)},
		{OptMeasure, o.Measure},
		{OptHLine, string(o.HLine)},
		{OptVLine, string(o.VLine)},
		{OptBox, string(o.Box)},
		{OptRowIndex, fmt.Sprint(o.RowIndex)},
		{OptBoldRowIndex, fmt.Sprint(o.BoldRowIndex)},
		{OptRowIndexStart, fmt.Sprint(o.RowIndexStart)},
		{OptColIndex, fmt.Sprint(o.ColIndex)},
		{OptBoldColIndex, fmt.Sprint(o.BoldColIndex)},
		{OptColIndexStart, fmt.Sprint(o.ColIndexStart)},
		{OptRound, fmt.Sprint(o.Round)},
		{OptMakeInts, fmt.Sprint(o.MakeInts)},
		{OptTabIndent, fmt.Sprint(o.TabIndent)},
		{OptSigChar, o.SigChar},
	}
}

// KeyValue is a single option name and its display value.
type KeyValue struct {
	Key   string
	Value string
}

// swapped exchanges every paired row/column option.
func (o Options) swapped() Options {
	o.RowIndex, o.ColIndex = o.ColIndex, o.RowIndex
	o.BoldRowIndex, o.BoldColIndex = o.BoldColIndex, o.BoldRowIndex
	o.RowIndexStart, o.ColIndexStart = o.ColIndexStart, o.RowIndexStart
	return o
}

// shows reports whether the label the bold flag name applies to is displayed.
func (o Options) shows(boldFlag string) bool {
	if boldFlag == OptBoldColIndex {
		return o.ColIndex
	}
	return o.RowIndex
}

// set assigns a single option, coercing value to the option's type.
func (o *Options) set(name string, value any) error {
	var err error
	switch name {
	case OptAlign:
		var s string
		if s, err = asString(name, value); err == nil {
			o.Align = Align(s)
		}
	case OptMeasure:
		o.Measure, err = asString(name, value)
	case OptHLine:
		var s string
		if s, err = asString(name, value); err == nil {
			o.HLine = HLine(s)
		}
	case OptVLine:
		var s string
		if s, err = asString(name, value); err == nil {
			o.VLine = VLine(s)
		}
	case OptBox:
		var s string
		if s, err = asString(name, value); err == nil {
			o.Box = Box(s)
		}
	case OptRowIndex:
		o.RowIndex, err = asBool(name, value)
	case OptBoldRowIndex:
		o.BoldRowIndex, err = asBool(name, value)
	case OptRowIndexStart:
		o.RowIndexStart, err = asInt(name, value)
	case OptColIndex:
		o.ColIndex, err = asBool(name, value)
	case OptBoldColIndex:
		o.BoldColIndex, err = asBool(name, value)
	case OptColIndexStart:
		o.ColIndexStart, err = asInt(name, value)
	case OptRound:
		o.Round, err = asInt(name, value)
	case OptMakeInts:
		o.MakeInts, err = asBool(name, value)
	case OptTabIndent:
		o.TabIndent, err = asInt(name, value)
	case OptSigChar:
		o.SigChar, err = asString(name, value)
	default:
		return fmt.Errorf("%w: unknown option %q", ErrInvalidOption, name)
	}
	return err
}

// applyOptions returns opts with values assigned. Unknown names are logged
// and skipped. A bold flag holding a non-boolean is only an error while the
// label it styles is displayed; otherwise it is logged and skipped.
func (t *Table) applyOptions(opts Options, values map[string]any) (Options, error) {
	var deferred []error
	var deferredNames []string
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if !slices.Contains(optionNames, name) {
			t.log.Warn("unknown option ignored", "option", name)
			continue
		}
		next := opts
		if err := next.set(name, values[name]); err != nil {
			if name == OptBoldRowIndex || name == OptBoldColIndex {
				deferred = append(deferred, err)
				deferredNames = append(deferredNames, name)
				continue
			}
			return opts, err
		}
		opts = next
	}
	for i, err := range deferred {
		if opts.shows(deferredNames[i]) {
			return opts, err
		}
		t.log.Warn("invalid option for hidden label ignored", "option", deferredNames[i], "error", err)
	}
	return opts, nil
}

func asString(name string, value any) (string, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		return "", fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidOption, name, value)
	}
	return rv.String(), nil
}

func asBool(name string, value any) (bool, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Bool {
		return false, fmt.Errorf("%w: %q must be true or false, got %T", ErrInvalidOption, name, value)
	}
	return rv.Bool(), nil
}

// asInt coerces value to an int on a best-effort basis: integers, floats
// (truncated), numeric strings and booleans are accepted.
func asInt(name string, value any) (int, error) {
	if value == nil {
		return 0, fmt.Errorf("%w: %q must be an integer, got nil", ErrInvalidOption, name)
	}
	n, err := cast.ToIntE(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q must be an integer: %v", ErrInvalidOption, name, err)
	}
	return n, nil
}
