package cmdtree

import (
	"fmt"
	"strings"
)

// FlagType is the declared value type of a [Flag]. The set is fixed.
type FlagType int

const (
	BoolFlag FlagType = iota
	IntFlag
	FloatFlag
	StringFlag
	IntListFlag
	FloatListFlag
	StringListFlag
)

func (t FlagType) String() string {
	switch t {
	case BoolFlag:
		return "bool"
	case IntFlag:
		return "int"
	case FloatFlag:
		return "float"
	case StringFlag:
		return "string"
	case IntListFlag:
		return "[]int"
	case FloatListFlag:
		return "[]float"
	case StringListFlag:
		return "[]string"
	default:
		return fmt.Sprintf("FlagType(%d)", int(t))
	}
}

func (t FlagType) isList() bool {
	return t == IntListFlag || t == FloatListFlag || t == StringListFlag
}

// Flag describes a single command-line flag owned by a [Command] or an [App].
//
// On the command line a flag is written as --name, --name=value, or -alias.
type Flag struct {
	// Name is the long name of the flag, without leading dashes.
	Name string

	// Type determines how the flag's value is parsed and which accessor may read it.
	Type FlagType

	// Aliases are short names, matched as -alias. Order matters when names collide.
	Aliases []string

	// Description is shown in help text.
	Description string
}

// NewFlag is a small helper for building flags inline:
//
//	cmdtree.NewFlag("age", cmdtree.IntFlag, "a", "ag")
func NewFlag(name string, typ FlagType, aliases ...string) *Flag {
	return &Flag{Name: name, Type: typ, Aliases: aliases}
}

// WithDescription sets the description and returns the flag for chaining.
func (f *Flag) WithDescription(desc string) *Flag {
	f.Description = desc
	return f
}

// hasName reports whether id is the flag's name or one of its aliases.
func (f *Flag) hasName(id string) bool {
	if f.Name == id {
		return true
	}
	for _, a := range f.Aliases {
		if a == id {
			return true
		}
	}
	return false
}

// occurrence describes where a flag was found in a token slice.
type occurrence struct {
	index     int
	inline    string
	hasInline bool
}

// find scans tokens left to right for the first token naming this flag. Scanning stops at a bare
// "--".
func (f *Flag) find(tokens []string) (occurrence, bool) {
	long := "--" + f.Name
	for i, tok := range tokens {
		if tok == "--" {
			break
		}
		if tok == long {
			return occurrence{index: i}, true
		}
		if v, ok := strings.CutPrefix(tok, long+"="); ok {
			return occurrence{index: i, inline: v, hasInline: true}, true
		}
		for _, a := range f.Aliases {
			if tok == "-"+a {
				return occurrence{index: i}, true
			}
		}
	}
	return occurrence{}, false
}

// spelled reports whether tok refers to this flag in any accepted form.
func (f *Flag) spelled(tok string) bool {
	_, ok := f.find([]string{tok})
	return ok
}

// displayName renders the flag the way help text shows it, e.g. "--age, -a, -ag".
func (f *Flag) displayName() string {
	names := make([]string, 0, len(f.Aliases)+1)
	names = append(names, "--"+f.Name)
	for _, a := range f.Aliases {
		names = append(names, "-"+a)
	}
	s := strings.Join(names, ", ")
	if f.Type != BoolFlag {
		s += " <" + f.Type.String() + ">"
	}
	return s
}
