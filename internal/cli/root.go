package cli

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bjaus/textable"
	"github.com/bjaus/textable/internal/logging"
	"github.com/bjaus/textable/internal/source"
)

type flags struct {
	inputFormat string
	header      bool
	rowLabels   bool
	optionsFile string
	set         []string
	transpose   bool
	interpret   bool
	reset       bool
	thresholds  []float64
	out         string
	quiet       bool
	listOptions string
	debug       bool
	logFormat   string
}

func (f *flags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.inputFormat, "input-format", "f", "", "Input format: csv|tsv|json|yaml|toml (default from extension, csv for stdin)")
	fs.BoolVar(&f.header, "header", false, "Use the first csv/tsv record as column labels")
	fs.BoolVar(&f.rowLabels, "row-labels", false, "Use the first csv/tsv field of each record as its row label")
	fs.StringVar(&f.optionsFile, "options", "", "Read options from a yaml, json or toml file")
	fs.StringArrayVarP(&f.set, "set", "s", nil, "Set an option as name=value (repeatable)")
	fs.BoolVarP(&f.transpose, "transpose", "t", false, "Transpose the table")
	fs.BoolVar(&f.interpret, "interpret", false, "Mark numeric cells as significant p-values")
	fs.BoolVar(&f.reset, "reset", false, "With --interpret, clear markers without recomputing")
	fs.Float64SliceVar(&f.thresholds, "thresholds", textable.DefaultThresholds(), "Significance thresholds")
	fs.StringVarP(&f.out, "out", "o", "", "Write the table to this path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "Do not print the table")
	fs.StringVar(&f.listOptions, "list-options", "", "Print the resulting options (plain|table|markdown|csv|json|yaml|toml) and exit")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.logFormat, "log-format", "text", "Log format: text|json")
}

func newRootCmd(app *App) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "textable [FILE|-]",
		Short:         "Render tabular data as a LaTeX tabular environment",
		Args:          cobra.MaximumNArgs(1),
		Version:       app.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return run(app, &f, path)
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func run(app *App, f *flags, path string) error {
	logger := logging.New(f.debug, app.Stderr, logging.Format(f.logFormat))

	doc, err := readDocument(app.Stdin, path, f)
	if err != nil {
		return err
	}
	logger.Debug("document read", "path", path)

	values := map[string]any{}
	if f.optionsFile != "" {
		fromFile, err := source.ReadOptionsFile(f.optionsFile)
		if err != nil {
			return err
		}
		maps.Copy(values, fromFile)
	}
	for _, s := range f.set {
		name, v, err := source.ParseAssignment(s)
		if err != nil {
			return err
		}
		values[name] = v
	}

	t, err := textable.New(doc, textable.WithLogger(logger))
	if err != nil {
		return err
	}

	cfg := textable.PipeConfig{
		Transpose:  f.transpose,
		Options:    values,
		Interpret:  f.interpret,
		Reset:      f.reset,
		Thresholds: f.thresholds,
		File:       f.out,
	}
	if f.listOptions != "" {
		format, err := textable.ParseFormat(f.listOptions)
		if err != nil {
			return err
		}
		if _, err := t.Pipe(textable.PipeConfig{Transpose: cfg.Transpose, Options: cfg.Options}); err != nil {
			return err
		}
		return t.WriteOptions(app.Stdout, format)
	}
	if !f.quiet {
		cfg.Print = app.Stdout
	}
	if _, err := t.Pipe(cfg); err != nil {
		return err
	}
	if f.out != "" {
		logger.Debug("table written", "path", f.out)
	}
	return nil
}

var errNoInput = errors.New("no input: pass a FILE or pipe data on stdin")

func readDocument(stdin io.Reader, path string, f *flags) (*source.Document, error) {
	opts := source.ReadOptions{Header: f.header, RowLabels: f.rowLabels}
	if path == "-" {
		if isTerminal(stdin) {
			return nil, errNoInput
		}
		format := f.inputFormat
		if format == "" {
			format = source.CSV
		}
		return source.Read(stdin, format, opts)
	}
	format := f.inputFormat
	if format == "" {
		format = source.InferFormat(path)
		if format == "" {
			return nil, fmt.Errorf("%w: cannot infer format of %s, use --input-format", source.ErrUnsupportedFormat, path)
		}
	}
	return source.ReadFile(path, format, opts)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
