// Package cli implements the textable command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Exit codes returned by [ExitCode].
const (
	ExitOK    = 0
	ExitUsage = 1 // invalid input, options or flags
	ExitIO    = 2 // reading or writing files failed
)

// App owns CLI wiring and execution configuration.
type App struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Version string
}

// NewApp constructs an App bound to the process streams.
func NewApp() *App {
	return &App{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Version: "dev",
	}
}

// Execute runs the command with args.
func (a *App) Execute(ctx context.Context, args []string) error {
	if args == nil {
		args = []string{}
	}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(a.Stderr, "textable:", err)
		return err
	}
	return nil
}

// ExitCode maps an error returned by [App.Execute] to a process exit code.
func ExitCode(err error) int {
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &pathErr):
		return ExitIO
	default:
		return ExitUsage
	}
}
