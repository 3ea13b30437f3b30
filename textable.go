package textable

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidDimension  = errors.New("invalid dimension")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrInvalidOption     = errors.New("invalid option")
	ErrUnsupportedCell   = errors.New("unsupported cell")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Table holds a string grid, its row and column labels, the rendering
// options and the significance markers. A Table is not safe for concurrent
// use; it owns all of its slices exclusively.
type Table struct {
	st  state
	log *slog.Logger
}

// state is everything a render depends on. Mutations build a candidate
// state, validate it and only then replace the table's state.
type state struct {
	grid     [][]string
	width    int
	rows     []string
	cols     []string
	rowsAuto bool
	colsAuto bool
	sig      [][]string
	opts     Options
}

// BuildOption configures [New].
type BuildOption func(*builder)

type builder struct {
	rowLabels any
	colLabels any
	options   map[string]any
	logger    *slog.Logger
}

// WithRowLabels sets explicit row labels. The value must flatten to a
// one-dimensional sequence. It takes precedence over labels carried by the
// data and over generated labels.
func WithRowLabels(labels any) BuildOption {
	return func(b *builder) { b.rowLabels = labels }
}

// WithColumnLabels sets explicit column labels. See [WithRowLabels].
func WithColumnLabels(labels any) BuildOption {
	return func(b *builder) { b.colLabels = labels }
}

// WithOptions applies options by name, as [Table.SetOptions] does. Repeated
// calls merge, later values winning.
func WithOptions(values map[string]any) BuildOption {
	return func(b *builder) {
		if b.options == nil {
			b.options = make(map[string]any, len(values))
		}
		for k, v := range values {
			b.options[k] = v
		}
	}
}

// WithLogger sets the logger that receives validation warnings.
// Default: slog.Default().
func WithLogger(logger *slog.Logger) BuildOption {
	return func(b *builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New builds a Table from data. Slices and arrays of any nesting form the
// grid; every other value is a cell. One-dimensional data becomes a single
// row. Data implementing [Valuer] supplies its cells through Values, and
// data implementing [RowLabeler] or [ColumnLabeler] supplies labels.
func New(data any, opts ...BuildOption) (*Table, error) {
	b := builder{logger: slog.Default()}
	for _, opt := range opts {
		opt(&b)
	}

	grid, width, err := buildGrid(data)
	if err != nil {
		return nil, err
	}
	st := state{
		grid:  grid,
		width: width,
		sig:   newMatrix(len(grid), width),
		opts:  DefaultOptions(),
	}

	st.rows, st.rowsAuto, err = resolveLabels("row labels", b.rowLabels, intrinsicRowLabels(data))
	if err != nil {
		return nil, err
	}
	st.cols, st.colsAuto, err = resolveLabels("column labels", b.colLabels, intrinsicColumnLabels(data))
	if err != nil {
		return nil, err
	}
	st.relabel()

	t := &Table{st: st, log: b.logger}
	if err := t.SetOptions(b.options); err != nil {
		return nil, err
	}
	return t, nil
}

// Options returns a copy of the current options.
func (t *Table) Options() Options { return t.st.opts }

// Grid returns a copy of the unformatted cells.
func (t *Table) Grid() [][]string { return copyMatrix(t.st.grid) }

// RowLabels returns a copy of the row labels.
func (t *Table) RowLabels() []string { return append([]string(nil), t.st.rows...) }

// ColumnLabels returns a copy of the column labels.
func (t *Table) ColumnLabels() []string { return append([]string(nil), t.st.cols...) }

// Significance returns a copy of the significance markers, one per cell.
func (t *Table) Significance() [][]string { return copyMatrix(t.st.sig) }

// SetOption sets a single option by name. Unknown names are logged and
// ignored. On error the table is left unchanged.
func (t *Table) SetOption(name string, value any) error {
	return t.SetOptions(map[string]any{name: value})
}

// SetOptions sets several options by name and validates once. Unknown names
// are logged and ignored. On error the table is left unchanged.
func (t *Table) SetOptions(values map[string]any) error {
	next := t.st
	opts, err := t.applyOptions(next.opts, values)
	if err != nil {
		return err
	}
	next.opts = opts
	next.relabel()
	if err := t.validate(&next); err != nil {
		return err
	}
	t.st = next
	return nil
}

// Transpose swaps rows and columns in place: the grid and significance
// markers are transposed, the labels swap, and so do the paired row/column
// options. It returns the receiver for chaining.
func (t *Table) Transpose() (*Table, error) {
	cur := t.st
	next := state{
		grid:     transposeMatrix(cur.grid, cur.width),
		width:    len(cur.grid),
		rows:     cur.cols,
		cols:     cur.rows,
		rowsAuto: cur.colsAuto,
		colsAuto: cur.rowsAuto,
		sig:      transposeMatrix(cur.sig, cur.width),
		opts:     cur.opts.swapped(),
	}
	next.relabel()
	if err := t.validate(&next); err != nil {
		return t, err
	}
	t.st = next
	return t, nil
}

// String renders the table as a LaTeX tabular environment.
func (t *Table) String() string { return render(&t.st) }

// WriteTo writes the rendered table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}

// WriteFile writes the rendered table to path, creating or truncating it.
func (t *Table) WriteFile(path string) (err error) {
	if path == "" {
		return fmt.Errorf("%w: empty output path", ErrInvalidInput)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	_, err = t.WriteTo(f)
	return err
}

// relabel regenerates labels that were generated rather than supplied, so
// they follow the current start offsets and grid shape.
func (s *state) relabel() {
	if s.rowsAuto {
		s.rows = sequence(s.opts.RowIndexStart, len(s.grid))
	}
	if s.colsAuto {
		s.cols = sequence(s.opts.ColIndexStart, s.width)
	}
}
