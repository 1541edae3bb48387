package cmdtree

import (
	"fmt"
	"io"

	"github.com/google/shlex"

	"github.com/mfridman/cmdtree/pkg/style"
)

// Run dispatches args to the matching command and runs its action. args is the full argument
// vector, typically os.Args, with the program name first.
//
// Leading arguments are matched against subcommand names and aliases one level at a time. The
// first argument that does not match ends the descent, and it and everything after it are handed
// to the action. Flags are not parsed here; actions read them through the [Context].
//
// Run returns the action's error unchanged, or an [*ActionError] if the resolved command has no
// action. -h/--help prints usage and -v/--version prints the version unless the command defines a
// flag with the same spelling.
func (a *App) Run(args []string) error {
	opts := a.runOptions()
	logger := opts.logger

	root := a.root(args)
	if err := validateCommands(root, nil); err != nil {
		return fmt.Errorf("invalid command tree: %w", err)
	}

	var tokens []string
	if len(args) > 1 {
		tokens = args[1:]
	}

	current := root
	path := []*Command{root}
	for len(tokens) > 0 {
		sub := current.findSubCommand(tokens[0])
		if sub == nil {
			break
		}
		current = sub
		path = append(path, sub)
		tokens = tokens[1:]
	}
	logger.Debug("resolved command", "path", getCommandPath(path), "tokens", len(tokens))

	if builtinRequested(current, tokens, "help", "h") {
		logger.Debug("showing help", "path", getCommandPath(path))
		return a.writeHelp(opts.stdout, path)
	}
	if current == root && a.Version != "" && builtinRequested(current, tokens, "version", "v") {
		_, err := fmt.Fprintf(opts.stdout, "%s %s\n", root.Name, a.Version)
		return err
	}

	if current.Action == nil {
		logger.Debug("command has no action", "path", getCommandPath(path))
		return &ActionError{Kind: ActionNotFound, Command: getCommandPath(path)}
	}
	return current.Action(newContext(path, tokens, opts))
}

// RunString splits line into words using shell quoting rules and calls [App.Run]. The first word
// is the program name.
func (a *App) RunString(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("failed to split command line: %w", err)
	}
	return a.Run(args)
}

// builtinRequested reports whether --long or -short appears before any "--" and the command does
// not define a flag spelled the same way.
func builtinRequested(cmd *Command, tokens []string, long, short string) bool {
	for _, tok := range tokens {
		if tok == "--" {
			return false
		}
		if tok != "--"+long && tok != "-"+short {
			continue
		}
		if spelledFlag(tok, cmd.Flags) == nil {
			return true
		}
	}
	return false
}

func (a *App) writeHelp(w io.Writer, path []*Command) error {
	s := style.New(w, a.NoColor)
	text := renderUsage(path, s)
	if len(path) == 1 {
		text = a.header(s, path[0].Name) + text
	}
	_, err := io.WriteString(w, text+"\n")
	return err
}

// header renders the application metadata shown above the root command's usage.
func (a *App) header(s *style.Styler, name string) string {
	var out string
	if a.Version != "" {
		out += s.Title(name) + " " + s.Muted(a.Version) + "\n"
	}
	if a.Author != "" {
		out += s.Muted(a.Author) + "\n"
	}
	if out != "" {
		out += "\n"
	}
	return out
}
