package cmdtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mfridman/cmdtree/pkg/suggest"
)

// LookupFlag returns the first flag, in declaration order, whose name or alias equals id.
func LookupFlag(id string, flags []*Flag) *Flag {
	for _, f := range flags {
		if f != nil && f.hasName(id) {
			return f
		}
	}
	return nil
}

// ResolveFlag finds the flag identified by name (a name or an alias) in flags, locates it in
// tokens, and returns its value converted to want. The concrete type of the returned value is
// bool, int, float64, string, []int, []float64 or []string.
//
// Checks run in a fixed order: the flag must be defined (FlagUndefined), want must match the
// declared type (FlagTypeError), the flag must be present (FlagNotFound), and finally the value
// must be present (FlagArgumentError) and parse (FlagValueTypeError).
//
// ResolveFlag never modifies tokens and keeps no state, so repeated calls return the same result.
func ResolveFlag(name string, want FlagType, tokens []string, flags []*Flag) (any, error) {
	f := LookupFlag(name, flags)
	if f == nil {
		ferr := newFlagError(FlagUndefined, name)
		ferr.Suggestions = suggest.FindSimilar(name, flagNames(flags), 3)
		return nil, ferr
	}
	if f.Type != want {
		ferr := newFlagError(FlagTypeError, name)
		ferr.Err = typeMismatch{declared: f.Type, requested: want}
		return nil, ferr
	}
	occ, ok := f.find(tokens)
	if !ok {
		return nil, newFlagError(FlagNotFound, name)
	}
	return extract(name, f.Type, occ, tokens)
}

func extract(name string, typ FlagType, occ occurrence, tokens []string) (any, error) {
	switch {
	case typ == BoolFlag:
		if !occ.hasInline {
			return true, nil
		}
		return parseValue(name, typ, occ.inline)
	case typ.isList():
		raw := listValues(occ, tokens)
		if len(raw) == 0 {
			return nil, newFlagError(FlagArgumentError, name)
		}
		return parseList(name, typ, raw)
	default:
		raw, ok := singleValue(occ, tokens)
		if !ok {
			return nil, newFlagError(FlagArgumentError, name)
		}
		return parseValue(name, typ, raw)
	}
}

// singleValue returns the inline value or the token immediately after the flag.
func singleValue(occ occurrence, tokens []string) (string, bool) {
	if occ.hasInline {
		return occ.inline, true
	}
	next := occ.index + 1
	if next >= len(tokens) || tokens[next] == "--" {
		return "", false
	}
	return tokens[next], true
}

// listValues returns the comma separated inline value, or every following token up to the next
// one beginning with "-".
func listValues(occ occurrence, tokens []string) []string {
	if occ.hasInline {
		if occ.inline == "" {
			return nil
		}
		return strings.Split(occ.inline, ",")
	}
	var values []string
	for _, tok := range tokens[occ.index+1:] {
		if strings.HasPrefix(tok, "-") {
			break
		}
		values = append(values, tok)
	}
	return values
}

func parseValue(name string, typ FlagType, raw string) (any, error) {
	var (
		v   any
		err error
	)
	switch typ {
	case BoolFlag:
		v, err = strconv.ParseBool(raw)
	case IntFlag, IntListFlag:
		v, err = strconv.Atoi(raw)
	case FloatFlag, FloatListFlag:
		v, err = strconv.ParseFloat(raw, 64)
	default:
		v = raw
	}
	if err != nil {
		ferr := newFlagError(FlagValueTypeError, name)
		ferr.Value = raw
		ferr.Err = err
		return nil, ferr
	}
	return v, nil
}

func parseList(name string, typ FlagType, raw []string) (any, error) {
	switch typ {
	case IntListFlag:
		return parseEach[int](name, typ, raw)
	case FloatListFlag:
		return parseEach[float64](name, typ, raw)
	default:
		out := make([]string, len(raw))
		copy(out, raw)
		return out, nil
	}
}

func parseEach[T int | float64](name string, typ FlagType, raw []string) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		v, err := parseValue(name, typ, r)
		if err != nil {
			return nil, err
		}
		out = append(out, v.(T))
	}
	return out, nil
}

// flagTypeOf maps a Go type to the FlagType that produces it.
func flagTypeOf[T any]() (FlagType, bool) {
	var zero T
	switch any(zero).(type) {
	case bool:
		return BoolFlag, true
	case int:
		return IntFlag, true
	case float64:
		return FloatFlag, true
	case string:
		return StringFlag, true
	case []int:
		return IntListFlag, true
	case []float64:
		return FloatListFlag, true
	case []string:
		return StringListFlag, true
	}
	return 0, false
}

// GetFlag resolves a flag of the active command with type inference. Example usage:
//
//	age, err := cmdtree.GetFlag[int](c, "age")
//	tags, err := cmdtree.GetFlag[[]string](c, "tag")
//
// T must be one of bool, int, float64, string, []int, []float64 or []string. Any other T is
// reported as a FlagTypeError.
func GetFlag[T any](c *Context, name string) (T, error) {
	var zero T
	want, ok := flagTypeOf[T]()
	if !ok {
		ferr := newFlagError(FlagTypeError, name)
		ferr.Err = unsupportedType{v: zero}
		return zero, ferr
	}
	v, err := ResolveFlag(name, want, c.tokens, c.flags())
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

func flagNames(flags []*Flag) []string {
	var names []string
	for _, f := range flags {
		if f == nil {
			continue
		}
		names = append(names, f.Name)
		names = append(names, f.Aliases...)
	}
	return names
}

type typeMismatch struct {
	declared, requested FlagType
}

func (e typeMismatch) Error() string {
	return "registered " + e.declared.String() + ", requested " + e.requested.String()
}

type unsupportedType struct{ v any }

func (e unsupportedType) Error() string {
	return fmt.Sprintf("unsupported flag type %T", e.v)
}
