package textable

import (
	"iter"
)

// Rower provides the cells of one table row.
type Rower interface {
	Row() []string
}

// Headed provides column labels. [FromRows] reads it from the first item.
type Headed interface {
	Header() []string
}

// RowLabeled provides the label of the row an item renders as.
type RowLabeled interface {
	RowLabel() string
}

// FromRows builds a Table with one row per item. When the first item
// implements [Headed], its header becomes the column labels; when it
// implements [RowLabeled], every item's RowLabel becomes a row label.
// Labels given through opts take precedence.
func FromRows[T Rower](items []T, opts ...BuildOption) (*Table, error) {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = item.Row()
	}

	var derived []BuildOption
	if len(items) > 0 {
		first := any(items[0])
		if h, ok := first.(Headed); ok {
			derived = append(derived, WithColumnLabels(h.Header()))
		}
		if _, ok := first.(RowLabeled); ok {
			labels := make([]string, len(items))
			for i, item := range items {
				labels[i] = any(item).(RowLabeled).RowLabel()
			}
			derived = append(derived, WithRowLabels(labels))
		}
	}
	return New(rows, append(derived, opts...)...)
}

// FromSeq collects items from seq and builds a Table as [FromRows] does.
// Layout needs every row, so the whole sequence is read first.
func FromSeq[T Rower](seq iter.Seq[T], opts ...BuildOption) (*Table, error) {
	var items []T
	for item := range seq {
		items = append(items, item)
	}
	return FromRows(items, opts...)
}

// FromChan drains ch and builds a Table as [FromRows] does.
// It is a thin wrapper around [FromSeq].
func FromChan[T Rower](ch <-chan T, opts ...BuildOption) (*Table, error) {
	return FromSeq(chanToIter(ch), opts...)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
