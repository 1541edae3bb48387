package cmdtree

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/mfridman/xflag"
)

// Context is the read-only view handed to an [Action]. It is built immediately before the action
// runs and should not be retained after the action returns.
//
// Flags are not parsed up front. Each accessor ([Context.Int], [GetFlag], ...) resolves its flag
// from the raw arguments when called, so an action only pays for, and only has to handle errors
// from, the flags it actually reads.
type Context struct {
	// Args contains the positional arguments: everything after the command path, minus the
	// command's own flags, their values and a "--" terminator.
	Args []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Logger is the application's logger, never nil.
	Logger *slog.Logger

	path   []*Command
	tokens []string
}

func newContext(path []*Command, tokens []string, opts runOptions) *Context {
	c := &Context{
		Stdin:  opts.stdin,
		Stdout: opts.stdout,
		Stderr: opts.stderr,
		Logger: opts.logger,
		path:   path,
		tokens: tokens,
	}
	c.Args = positional(tokens, c.flags())
	return c
}

// Command returns the command being executed.
func (c *Context) Command() *Command {
	if len(c.path) == 0 {
		return nil
	}
	return c.path[len(c.path)-1]
}

// CommandPath returns the names of the matched commands joined by spaces, starting with the
// application name.
func (c *Context) CommandPath() string {
	return getCommandPath(c.path)
}

// Tokens returns a copy of the unprocessed arguments for the command, flags included.
func (c *Context) Tokens() []string {
	out := make([]string, len(c.tokens))
	copy(out, c.tokens)
	return out
}

// Help returns the usage text for the command being executed.
func (c *Context) Help() string {
	return DefaultUsage(c.path)
}

func (c *Context) flags() []*Flag {
	if cmd := c.Command(); cmd != nil {
		return cmd.Flags
	}
	return nil
}

// Bool reports whether the boolean flag is set. Any error, including an undefined flag, reads
// as false; use [Context.LookupBool] to see it.
func (c *Context) Bool(name string) bool {
	v, err := GetFlag[bool](c, name)
	return err == nil && v
}

// LookupBool is like [Context.Bool] but returns the resolution error.
func (c *Context) LookupBool(name string) (bool, error) {
	return GetFlag[bool](c, name)
}

// Int returns the value of an [IntFlag].
func (c *Context) Int(name string) (int, error) {
	return GetFlag[int](c, name)
}

// Float returns the value of a [FloatFlag].
func (c *Context) Float(name string) (float64, error) {
	return GetFlag[float64](c, name)
}

// String returns the value of a [StringFlag].
func (c *Context) String(name string) (string, error) {
	return GetFlag[string](c, name)
}

// Ints returns the values of an [IntListFlag].
func (c *Context) Ints(name string) ([]int, error) {
	return GetFlag[[]int](c, name)
}

// Floats returns the values of a [FloatListFlag].
func (c *Context) Floats(name string) ([]float64, error) {
	return GetFlag[[]float64](c, name)
}

// Strings returns the values of a [StringListFlag].
func (c *Context) Strings(name string) ([]string, error) {
	return GetFlag[[]string](c, name)
}

// ParseFlagSet parses the command's arguments into a standard library flag set, for actions that
// already define their options with package flag. Flags may appear anywhere among the
// positional arguments. After a successful parse fs.Args() holds the positional arguments.
//
// This is an eager alternative to the lazy accessors and does not change c.Args.
func (c *Context) ParseFlagSet(fs *flag.FlagSet) error {
	if fs == nil {
		return fmt.Errorf("command %q: flag set is nil", c.CommandPath())
	}
	fs.SetOutput(io.Discard)
	if err := xflag.ParseToEnd(fs, c.tokens); err != nil {
		return fmt.Errorf("command %q: %w", c.CommandPath(), err)
	}
	return nil
}

// positional strips the tokens that belong to flags, along with the values those flags consume,
// and the first "--". Tokens that look like flags but are not defined are kept.
func positional(tokens []string, flags []*Flag) []string {
	var args []string
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "--" {
			args = append(args, tokens[i+1:]...)
			break
		}
		f := spelledFlag(tok, flags)
		if f == nil {
			args = append(args, tok)
			continue
		}
		i += consumed(f, tok, tokens[i+1:])
	}
	return args
}

func spelledFlag(tok string, flags []*Flag) *Flag {
	for _, f := range flags {
		if f != nil && f.spelled(tok) {
			return f
		}
	}
	return nil
}

// consumed returns how many of the tokens following a flag token are the flag's value. It mirrors
// the value extraction in ResolveFlag.
func consumed(f *Flag, tok string, rest []string) int {
	if f.Type == BoolFlag {
		return 0
	}
	if occ, _ := f.find([]string{tok}); occ.hasInline {
		return 0
	}
	if f.Type.isList() {
		n := 0
		for _, r := range rest {
			if len(r) > 0 && r[0] == '-' {
				break
			}
			n++
		}
		return n
	}
	if len(rest) == 0 || rest[0] == "--" {
		return 0
	}
	return 1
}
