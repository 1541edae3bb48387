package cmdtree

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// App describes an application: the root command plus process metadata and runtime options.
// Build one, then call [App.Run] once with the process arguments.
type App struct {
	// Name is the program name. If empty, the base name of the first argument passed to Run is
	// used.
	Name        string
	Author      string
	Description string
	Usage       string
	Version     string

	// Flags, Commands and Action make up the root command.
	Flags    []*Flag
	Commands []*Command
	Action   Action

	// Stdin, Stdout, and Stderr are the standard input, output, and error streams handed to
	// actions and used for help output. If any of these are nil, [os.Stdin], [os.Stdout] and
	// [os.Stderr] are used.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Logger receives debug logs about dispatch. If nil, logs are discarded.
	Logger *slog.Logger

	// NoColor disables styling of help output. Styling is also disabled when the NO_COLOR
	// environment variable is set or the output is not a terminal.
	NoColor bool
}

// root builds the root command from the App's fields. The App itself is never modified.
func (a *App) root(args []string) *Command {
	name := a.Name
	if name == "" && len(args) > 0 && args[0] != "" {
		name = filepath.Base(args[0])
	}
	return &Command{
		Name:        name,
		Usage:       a.Usage,
		Description: a.Description,
		Flags:       a.Flags,
		SubCommands: a.Commands,
		Action:      a.Action,
	}
}

type runOptions struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	logger         *slog.Logger
}

func (a *App) runOptions() runOptions {
	opt := runOptions{
		stdin:  a.Stdin,
		stdout: a.Stdout,
		stderr: a.Stderr,
		logger: a.Logger,
	}
	if opt.stdin == nil {
		opt.stdin = os.Stdin
	}
	if opt.stdout == nil {
		opt.stdout = os.Stdout
	}
	if opt.stderr == nil {
		opt.stderr = os.Stderr
	}
	if opt.logger == nil {
		opt.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return opt
}
