package cmdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCommand(t *testing.T) {
	t.Parallel()

	add := &Command{Name: "add", Aliases: []string{"a"}}
	hello := &Command{Name: "hello", Aliases: []string{"h", "he"}}
	help := &Command{Name: "help", Aliases: []string{"h"}}
	candidates := []*Command{add, hello, help}

	tests := []struct {
		name     string
		token    string
		expected *Command
	}{
		{name: "by name", token: "hello", expected: hello},
		{name: "by first alias", token: "a", expected: add},
		{name: "by second alias", token: "he", expected: hello},
		{name: "shared alias goes to first declared", token: "h", expected: hello},
		{name: "name of later command", token: "help", expected: help},
		{name: "case sensitive", token: "Hello", expected: nil},
		{name: "no prefix matching", token: "hel", expected: nil},
		{name: "empty token", token: "", expected: nil},
		{name: "flag token", token: "--hello", expected: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Same(t, tt.expected, MatchCommand(tt.token, candidates))
		})
	}

	t.Run("declaration order decides collisions", func(t *testing.T) {
		t.Parallel()
		// A name that is also an earlier command's alias resolves to the earlier command.
		first := &Command{Name: "list", Aliases: []string{"ls"}}
		second := &Command{Name: "ls"}
		require.Same(t, first, MatchCommand("ls", []*Command{first, second}))
		require.Same(t, second, MatchCommand("ls", []*Command{second, first}))
	})
	t.Run("reordering aliases does not change the match", func(t *testing.T) {
		t.Parallel()
		a := &Command{Name: "remote", Aliases: []string{"r", "rem"}}
		b := &Command{Name: "remote", Aliases: []string{"rem", "r"}}
		for _, tok := range []string{"r", "rem", "remote"} {
			require.Same(t, a, MatchCommand(tok, []*Command{a}))
			require.Same(t, b, MatchCommand(tok, []*Command{b}))
		}
	})
	t.Run("nil entries are skipped", func(t *testing.T) {
		t.Parallel()
		require.Same(t, add, MatchCommand("add", []*Command{nil, add}))
		require.Nil(t, MatchCommand("add", nil))
	})
}

func TestValidateCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		root    *Command
		wantErr string
	}{
		{
			name: "valid tree",
			root: &Command{
				Name:  "app",
				Flags: []*Flag{NewFlag("verbose", BoolFlag, "v")},
				SubCommands: []*Command{
					{Name: "remote", SubCommands: []*Command{{Name: "add", Aliases: []string{"a"}}}},
				},
			},
		},
		{name: "root without name", root: &Command{}, wantErr: "root command has no name"},
		{
			name:    "subcommand without name",
			root:    &Command{Name: "app", SubCommands: []*Command{{Name: "remote", SubCommands: []*Command{{}}}}},
			wantErr: `subcommand in path "app remote" has no name`,
		},
		{name: "name with spaces", root: &Command{Name: "my app"}, wantErr: `command name "my app" contains spaces`},
		{name: "empty alias", root: &Command{Name: "app", Aliases: []string{""}}, wantErr: `invalid alias ""`},
		{name: "nil subcommand", root: &Command{Name: "app", SubCommands: []*Command{nil}}, wantErr: "nil subcommand"},
		{name: "nil flag", root: &Command{Name: "app", Flags: []*Flag{nil}}, wantErr: "flag is nil"},
		{name: "flag without name", root: &Command{Name: "app", Flags: []*Flag{{}}}, wantErr: "flag has no name"},
		{
			name:    "flag with dashes",
			root:    &Command{Name: "app", Flags: []*Flag{NewFlag("--age", IntFlag)}},
			wantErr: `flag name "--age" must not start with a dash`,
		},
		{
			name:    "flag alias with dashes",
			root:    &Command{Name: "app", Flags: []*Flag{NewFlag("age", IntFlag, "-a")}},
			wantErr: `flag "age" has invalid alias "-a"`,
		},
		{
			name:    "unknown flag type",
			root:    &Command{Name: "app", Flags: []*Flag{NewFlag("age", FlagType(99))}},
			wantErr: "unknown type FlagType(99)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateCommands(tt.root, nil)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
