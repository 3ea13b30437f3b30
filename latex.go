package textable

import (
	"strings"
)

const (
	cellSep    = " & "
	rowEnd     = ` \\` + "\n"
	ruleLine   = `\hline` + "\n"
	tabularEnd = `\end{tabular}` + "\n"
)

// render assembles the tabular environment for s. It reads s only.
func render(s *state) string {
	o := s.opts
	indent := strings.Repeat(" ", max(o.TabIndent, 0))

	var b strings.Builder
	lastRule := false
	rule := func() {
		b.WriteString(indent)
		b.WriteString(ruleLine)
		lastRule = true
	}
	row := func(fields []string) {
		b.WriteString(indent)
		b.WriteString(strings.Join(fields, cellSep))
		b.WriteString(rowEnd)
		lastRule = false
	}

	b.WriteString(`\begin{tabular}{`)
	b.WriteString(columnSpec(o, s.width))
	b.WriteString("}\n")

	if o.Box.has('t') {
		rule()
	}

	if o.ColIndex {
		fields := make([]string, 0, s.width+1)
		if o.RowIndex {
			fields = append(fields, "")
		}
		for _, label := range s.cols {
			fields = append(fields, bold(label, o.BoldColIndex))
		}
		row(fields)
		if o.HLine == HLineHeader || o.HLine == HLineAll {
			rule()
		}
	}

	for i, cells := range s.grid {
		fields := make([]string, 0, s.width+1)
		if o.RowIndex {
			fields = append(fields, bold(s.rows[i], o.BoldRowIndex))
		}
		for j, cell := range cells {
			fields = append(fields, roundCell(cell, o)+s.sig[i][j])
		}
		row(fields)
		if o.HLine == HLineAll {
			rule()
		}
	}

	if o.Box.has('b') && !lastRule {
		rule()
	}
	b.WriteString(tabularEnd)

	return strings.ReplaceAll(b.String(), "_", `\_`)
}

// columnSpec builds the column specification of the tabular environment.
func columnSpec(o Options, width int) string {
	code := string(o.Align)
	if o.Align.needsMeasure() {
		code += "{" + o.Measure + "}"
	}
	if o.VLine == VLineAll {
		code += "|"
	}

	var b strings.Builder
	if o.Box.has('l') {
		b.WriteByte('|')
	}
	if o.RowIndex {
		b.WriteString(code)
		if o.VLine != VLineNone {
			b.WriteByte('|')
		}
	}
	for range width {
		b.WriteString(code)
	}

	spec := b.String()
	for strings.Contains(spec, "||") {
		spec = strings.ReplaceAll(spec, "||", "|")
	}
	if o.Box.has('r') {
		if !strings.HasSuffix(spec, "|") {
			spec += "|"
		}
	} else {
		spec = strings.TrimSuffix(spec, "|")
	}
	return spec
}

func bold(s string, on bool) string {
	if !on {
		return s
	}
	return `\textbf{` + s + `}`
}
