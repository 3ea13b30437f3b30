// Package textable renders rectangular data as LaTeX tabular environments.
//
// The central type is [Table]. [New] accepts any Go value: nested slices and
// arrays form the grid, every other value is a cell, and one-dimensional data
// becomes a single row. Labels come from [WithRowLabels] and
// [WithColumnLabels], from the data itself when it implements [RowLabeler]
// or [ColumnLabeler], or are generated as 1, 2, 3, ...
//
//	t, err := textable.New([][]float64{{0.5, 0.01}, {0.002, 0.2}},
//		textable.WithColumnLabels([]string{"a", "b"}),
//		textable.WithOptions(map[string]any{"round": 2}),
//	)
//	t.Interpret(false) // 0.05, 0.01, 0.001
//	fmt.Print(t)
//
// # Rows
//
// Items implementing [Rower] build a table with [FromRows], one row per item.
// Optional interfaces add labels:
//
//   - [Headed] → column labels, read from the first item
//   - [RowLabeled] → one row label per item
//
// [FromSeq] and [FromChan] collect rows from iterators and channels.
//
// # Options
//
// Options are set by name with [Table.SetOption] and [Table.SetOptions], or
// at construction with [WithOptions]. Values are coerced to the option's
// type; integer options accept numeric strings and floats.
//
//   - align: c, l, r, p, m, b (default c)
//   - measure: column width for p, m and b (default 1cm)
//   - hline: all, header, none (default all)
//   - vline: all, index, none (default all)
//   - box: all, none, or any of t, b, l, r (default all)
//   - row_index, col_index: show labels (default true)
//   - bold_row_index, bold_col_index: bold labels (default true)
//   - row_index_start, col_index_start: first generated label (default 1)
//   - round: decimals, negative disables (default -1)
//   - make_ints: render whole rounded numbers without ".0" (default true)
//   - tab_indent: spaces before each body line (default 4)
//   - sig_char: significance marker (default *)
//
// Unknown names and cosmetic problems (alignment, measure, marker length) are
// logged as warnings through the [WithLogger] logger. Structural problems are
// returned as errors and leave the table unchanged.
//
// [Table.WriteOptions] lists the current options in any of [Formats]. The
// JSON, YAML and TOML listings can be read back as option files.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidInput]: data or labels cannot form the required shape
//   - [ErrInvalidDimension]: data has more than two real dimensions, or labels are not flat
//   - [ErrDimensionMismatch]: displayed labels disagree with the grid
//   - [ErrInvalidOption]: an option value is outside its domain
//   - [ErrUnsupportedCell]: a cell has no string form
//   - [ErrUnsupportedFormat]: unknown listing format
package textable
