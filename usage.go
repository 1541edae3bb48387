package cmdtree

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mfridman/cmdtree/pkg/style"
	"github.com/mfridman/cmdtree/pkg/textutil"
)

const usageWidth = 80

// DefaultUsage returns the plain help text for the last command in path. path starts at the root
// command, as returned by walking the tree from the application down.
func DefaultUsage(path []*Command) string {
	return renderUsage(path, style.Plain())
}

func renderUsage(path []*Command, s *style.Styler) string {
	if len(path) == 0 {
		return ""
	}
	cmd := path[len(path)-1]

	var b strings.Builder

	if cmd.Description != "" {
		for _, line := range textutil.Wrap(cmd.Description, usageWidth) {
			b.WriteString(line)
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}

	b.WriteString(s.Section("Usage:") + "\n  ")
	if cmd.Usage != "" {
		b.WriteString(cmd.Usage)
	} else {
		usage := getCommandPath(path)
		if len(cmd.Flags) > 0 {
			usage += " [flags]"
		}
		if len(cmd.SubCommands) > 0 {
			usage += " <command>"
		}
		b.WriteString(usage)
	}
	b.WriteString("\n\n")

	if len(cmd.SubCommands) > 0 {
		sorted := slices.Clone(cmd.SubCommands)
		slices.SortFunc(sorted, func(a, b *Command) int {
			return cmp.Compare(a.Name, b.Name)
		})
		rows := make([]row, 0, len(sorted))
		for _, sub := range sorted {
			name := sub.Name
			if len(sub.Aliases) > 0 {
				name += ", " + strings.Join(sub.Aliases, ", ")
			}
			rows = append(rows, row{name: name, text: sub.Description})
		}
		b.WriteString(s.Section("Available Commands:") + "\n")
		writeRows(&b, rows, s)
		b.WriteRune('\n')
	}

	if len(cmd.Flags) > 0 {
		rows := make([]row, 0, len(cmd.Flags))
		for _, f := range cmd.Flags {
			rows = append(rows, row{name: f.displayName(), text: f.Description})
		}
		b.WriteString(s.Section("Flags:") + "\n")
		writeRows(&b, rows, s)
		b.WriteRune('\n')
	}

	if len(cmd.SubCommands) > 0 {
		fmt.Fprintf(&b, "Use \"%s [command] --help\" for more information about a command.\n",
			getCommandPath(path))
	}

	return strings.TrimRight(b.String(), "\n")
}

type row struct {
	name string
	text string
}

// writeRows writes a two column list, wrapping the description column.
func writeRows(b *strings.Builder, rows []row, s *style.Styler) {
	maxLen := 0
	for _, r := range rows {
		maxLen = max(maxLen, len(r.name))
	}
	nameWidth := maxLen + 4
	wrapWidth := usageWidth - nameWidth

	for _, r := range rows {
		lines := textutil.Wrap(r.text, wrapWidth)
		if len(lines) == 0 {
			fmt.Fprintf(b, "  %s\n", s.Name(r.name))
			continue
		}
		padding := strings.Repeat(" ", maxLen-len(r.name)+4)
		fmt.Fprintf(b, "  %s%s%s\n", s.Name(r.name), padding, lines[0])

		indent := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indent, line)
		}
	}
}
