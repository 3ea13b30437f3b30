package textable

import (
	"io"
)

// PipeConfig selects the steps [Table.Pipe] runs. The zero value runs none.
type PipeConfig struct {
	Transpose bool
	// Options are applied as [Table.SetOptions] does.
	Options map[string]any
	// Interpret runs [Table.Interpret] with Reset and Thresholds.
	Interpret bool
	Reset     bool
	// Thresholds is passed as is, so nil means [DefaultThresholds] and an
	// empty slice means no markers.
	Thresholds []float64
	// Print receives the rendered table when non-nil.
	Print io.Writer
	// File receives the rendered table when non-empty.
	File string
}

// Pipe runs, in order: transpose, option update, significance
// interpretation, print and write-to-file. It stops at the first error.
func (t *Table) Pipe(cfg PipeConfig) (*Table, error) {
	if cfg.Transpose {
		if _, err := t.Transpose(); err != nil {
			return t, err
		}
	}
	if cfg.Options != nil {
		if err := t.SetOptions(cfg.Options); err != nil {
			return t, err
		}
	}
	if cfg.Interpret {
		t.Interpret(cfg.Reset, cfg.Thresholds...)
	}
	if cfg.Print != nil {
		if _, err := t.WriteTo(cfg.Print); err != nil {
			return t, err
		}
	}
	if cfg.File != "" {
		if err := t.WriteFile(cfg.File); err != nil {
			return t, err
		}
	}
	return t, nil
}
