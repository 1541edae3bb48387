package cmdtree

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Action is the work bound to a command. It receives a fresh [Context] for each invocation and
// returns an error if execution fails. The error is returned unchanged from [App.Run].
type Action func(c *Context) error

// Command represents a CLI command or subcommand within the application's command hierarchy.
type Command struct {
	// Name is always a single word representing the command's name. It is matched exactly and
	// case-sensitively against the command line.
	Name string

	// Aliases are alternative single word names. They are tried, in order, after Name.
	Aliases []string

	// Usage provides the command's full usage pattern.
	//
	// Example: "app hello(he, h) [name]"
	Usage string

	// Description is a brief description of the command's purpose, shown in help text.
	Description string

	// Flags are the flags this command understands. Flags are not inherited by subcommands.
	Flags []*Flag

	// SubCommands is a list of nested commands that exist under this command.
	SubCommands []*Command

	// Action is invoked when this command is the last one matched on the command line. A command
	// without an action that is invoked directly makes [App.Run] return an [ActionError].
	Action Action
}

// matches reports whether token equals the command's name or one of its aliases.
func (c *Command) matches(token string) bool {
	if c.Name == token {
		return true
	}
	for _, a := range c.Aliases {
		if a == token {
			return true
		}
	}
	return false
}

// MatchCommand returns the first command in candidates whose name or alias equals token. Each
// candidate's name is checked before its aliases and candidates are checked in declaration order.
// Matching is exact and case-sensitive. It returns nil if nothing matches, in which case the token
// is an ordinary argument.
func MatchCommand(token string, candidates []*Command) *Command {
	for _, c := range candidates {
		if c != nil && c.matches(token) {
			return c
		}
	}
	return nil
}

// findSubCommand is MatchCommand over the command's own children.
func (c *Command) findSubCommand(token string) *Command {
	return MatchCommand(token, c.SubCommands)
}

func validateCommands(root *Command, path []string) error {
	if root.Name == "" {
		if len(path) == 0 {
			return errors.New("root command has no name")
		}
		return fmt.Errorf("subcommand in path %q has no name", strings.Join(path, " "))
	}
	if strings.ContainsFunc(root.Name, unicode.IsSpace) {
		return fmt.Errorf("command name %q contains spaces", root.Name)
	}
	for _, a := range root.Aliases {
		if a == "" || strings.ContainsFunc(a, unicode.IsSpace) {
			return fmt.Errorf("command %q has invalid alias %q", root.Name, a)
		}
	}

	currentPath := append(path[:len(path):len(path)], root.Name)

	for i, f := range root.Flags {
		if err := validateFlag(f); err != nil {
			return fmt.Errorf("command %q: flag %d: %w", strings.Join(currentPath, " "), i, err)
		}
	}

	for _, sub := range root.SubCommands {
		if sub == nil {
			return fmt.Errorf("command %q has a nil subcommand", strings.Join(currentPath, " "))
		}
		if err := validateCommands(sub, currentPath); err != nil {
			return err
		}
	}
	return nil
}

func validateFlag(f *Flag) error {
	if f == nil {
		return errors.New("flag is nil")
	}
	if f.Name == "" {
		return errors.New("flag has no name")
	}
	if strings.HasPrefix(f.Name, "-") {
		return fmt.Errorf("flag name %q must not start with a dash", f.Name)
	}
	if f.Type < BoolFlag || f.Type > StringListFlag {
		return fmt.Errorf("flag %q has unknown type %s", f.Name, f.Type)
	}
	for _, a := range f.Aliases {
		if a == "" || strings.HasPrefix(a, "-") {
			return fmt.Errorf("flag %q has invalid alias %q", f.Name, a)
		}
	}
	return nil
}

func getCommandPath(commands []*Command) string {
	var commandPath []string
	for _, c := range commands {
		commandPath = append(commandPath, c.Name)
	}
	return strings.Join(commandPath, " ")
}
