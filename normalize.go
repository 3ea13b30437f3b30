package textable

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/spf13/cast"
)

// Valuer supplies the cells of a structured input. [New] uses Values in
// place of the input itself.
type Valuer interface {
	Values() any
}

// RowLabeler supplies labels intrinsic to a structured input, such as the
// index of a data frame. A nil result means no labels.
type RowLabeler interface {
	RowLabels() []string
}

// ColumnLabeler supplies column names intrinsic to a structured input.
// A nil result means no labels.
type ColumnLabeler interface {
	ColumnLabels() []string
}

// array is a flattened n-dimensional value: its shape and its cells in
// row-major order.
type array struct {
	shape  []int
	cells  []string
	sealed bool // a cell has been seen, so the shape cannot grow
}

// flatten walks v, treating slices and arrays as dimensions and everything
// else as a cell. Nesting must be regular.
func flatten(v any) (array, error) {
	var a array
	if isNil(v) {
		return a, fmt.Errorf("%w: nil", ErrInvalidInput)
	}
	if err := a.walk(reflect.ValueOf(v), 0); err != nil {
		return array{}, err
	}
	return a, nil
}

func (a *array) walk(rv reflect.Value, depth int) error {
	for rv.Kind() == reflect.Interface || (rv.Kind() == reflect.Pointer && !rv.IsNil() && isSequence(rv.Elem())) {
		rv = rv.Elem()
	}
	if !isSequence(rv) {
		if depth != len(a.shape) {
			return fmt.Errorf("%w: ragged nesting, cell at depth %d of %d", ErrInvalidInput, depth, len(a.shape))
		}
		a.sealed = true
		s, err := stringify(rv)
		if err != nil {
			return err
		}
		a.cells = append(a.cells, s)
		return nil
	}

	n := rv.Len()
	switch {
	case depth < len(a.shape):
		if a.shape[depth] != n {
			return fmt.Errorf("%w: ragged nesting, length %d where %d expected", ErrInvalidInput, n, a.shape[depth])
		}
	case a.sealed:
		return fmt.Errorf("%w: ragged nesting, sequence at depth %d", ErrInvalidInput, depth)
	default:
		a.shape = append(a.shape, n)
	}
	for i := range n {
		if err := a.walk(rv.Index(i), depth+1); err != nil {
			return err
		}
	}
	return nil
}

// isSequence reports whether rv is a dimension rather than a cell. Byte
// slices are cells.
func isSequence(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Slice:
		return rv.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	}
	return false
}

// stringify converts a cell to its canonical string form.
func stringify(rv reflect.Value) (string, error) {
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return "", nil
	}
	if rv.CanInterface() {
		if s, ok := rv.Interface().(fmt.Stringer); ok {
			return s.String(), nil
		}
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	}
	if !rv.CanInterface() {
		return "", fmt.Errorf("%w: %w: %s", ErrInvalidInput, ErrUnsupportedCell, rv.Type())
	}
	s, err := cast.ToStringE(rv.Interface())
	if err != nil {
		return "", fmt.Errorf("%w: %w: %s", ErrInvalidInput, ErrUnsupportedCell, rv.Type())
	}
	return s, nil
}

// buildGrid normalizes data into a rectangular grid. Zero- and
// one-dimensional data become a single row; dimensions past the second are
// squeezed away when they all have length one.
func buildGrid(data any) ([][]string, int, error) {
	if v, ok := data.(Valuer); ok {
		data = v.Values()
	}
	a, err := flatten(data)
	if err != nil {
		return nil, 0, err
	}

	var rows, width int
	switch len(a.shape) {
	case 0:
		rows, width = 1, 1
	case 1:
		rows, width = 1, a.shape[0]
	default:
		for _, d := range a.shape[2:] {
			if d != 1 {
				return nil, 0, fmt.Errorf("%w: table must have 1 or 2 dimensions, got shape %v", ErrInvalidDimension, a.shape)
			}
		}
		rows, width = a.shape[0], a.shape[1]
	}

	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, width)
		copy(grid[i], a.cells[i*width:(i+1)*width])
	}
	return grid, width, nil
}

// buildLabels flattens a label value to one dimension, squeezing away
// dimensions of length one.
func buildLabels(what string, v any) ([]string, error) {
	a, err := flatten(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	dims := 0
	for _, d := range a.shape {
		if d != 1 {
			dims++
		}
	}
	if len(a.shape) > 1 && dims > 1 {
		return nil, fmt.Errorf("%w: %s must be flat, got shape %v", ErrInvalidDimension, what, a.shape)
	}
	labels := make([]string, len(a.cells))
	copy(labels, a.cells)
	return labels, nil
}

// resolveLabels picks explicit labels over intrinsic ones. When neither is
// present it reports that labels must be generated.
func resolveLabels(what string, explicit any, intrinsic []string) ([]string, bool, error) {
	if !isNil(explicit) {
		labels, err := buildLabels(what, explicit)
		return labels, false, err
	}
	if intrinsic != nil {
		return append([]string(nil), intrinsic...), false, nil
	}
	return nil, true, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Pointer, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func intrinsicRowLabels(data any) []string {
	if l, ok := data.(RowLabeler); ok {
		return l.RowLabels()
	}
	return nil
}

func intrinsicColumnLabels(data any) []string {
	if l, ok := data.(ColumnLabeler); ok {
		return l.ColumnLabels()
	}
	return nil
}

// sequence returns the labels start, start+1, ..., start+n-1.
func sequence(start, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(start + i)
	}
	return out
}

func newMatrix(rows, cols int) [][]string {
	m := make([][]string, rows)
	for i := range m {
		m[i] = make([]string, cols)
	}
	return m
}

func copyMatrix(m [][]string) [][]string {
	out := make([][]string, len(m))
	for i, row := range m {
		out[i] = make([]string, len(row))
		copy(out[i], row)
	}
	return out
}

// transposeMatrix transposes m, whose rows have the given width.
func transposeMatrix(m [][]string, width int) [][]string {
	out := newMatrix(width, len(m))
	for i, row := range m {
		for j, cell := range row {
			out[j][i] = cell
		}
	}
	return out
}
