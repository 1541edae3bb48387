package cmdtree

import (
	"fmt"
	"strings"
)

// ActionErrorKind classifies an [ActionError].
type ActionErrorKind int

const (
	// ActionNotFound is returned when dispatch ends at a command with no action.
	ActionNotFound ActionErrorKind = iota + 1
)

func (k ActionErrorKind) String() string {
	switch k {
	case ActionNotFound:
		return "NotFound"
	default:
		return "unknown action error"
	}
}

// ActionError is returned by [App.Run] when the resolved command cannot be executed.
type ActionError struct {
	Kind ActionErrorKind
	// Command is the space separated path of the resolved command, e.g. "app remote add".
	Command string
}

func (e *ActionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("command %q has no action: %s", e.Command, e.Kind)
}

// Is reports whether target is an *ActionError of the same kind. This lets callers write
// errors.Is(err, &cmdtree.ActionError{Kind: cmdtree.ActionNotFound}).
func (e *ActionError) Is(target error) bool {
	t, ok := target.(*ActionError)
	return ok && t.Kind == e.Kind
}

// FlagErrorKind classifies a [FlagError].
type FlagErrorKind int

const (
	// FlagNotFound means the flag is defined but does not appear in the arguments.
	FlagNotFound FlagErrorKind = iota + 1
	// FlagUndefined means no flag with the requested name or alias is defined on the command.
	FlagUndefined
	// FlagTypeError means the flag was read with an accessor for a different type.
	FlagTypeError
	// FlagValueTypeError means the flag's value could not be parsed as the declared type.
	FlagValueTypeError
	// FlagArgumentError means the flag requires a value and none was given.
	FlagArgumentError
)

func (k FlagErrorKind) String() string {
	switch k {
	case FlagNotFound:
		return "NotFound"
	case FlagUndefined:
		return "Undefined"
	case FlagTypeError:
		return "TypeError"
	case FlagValueTypeError:
		return "ValueTypeError"
	case FlagArgumentError:
		return "ArgumentError"
	default:
		return "unknown flag error"
	}
}

// Description returns a short human readable explanation of the kind.
func (k FlagErrorKind) Description() string {
	switch k {
	case FlagNotFound:
		return "flag not found"
	case FlagUndefined:
		return "flag undefined"
	case FlagTypeError:
		return "flag type mismatch"
	case FlagValueTypeError:
		return "value type mismatch"
	case FlagArgumentError:
		return "illegal argument"
	default:
		return "unknown flag error"
	}
}

// FlagError is returned by flag accessors. Whether it is fatal is up to the caller.
type FlagError struct {
	Kind FlagErrorKind
	// Flag is the name the caller asked for.
	Flag string
	// Value is the raw value that failed to parse, if any.
	Value string
	// Err is the underlying cause, typically a *strconv.NumError.
	Err error
	// Suggestions holds similar flag names for FlagUndefined.
	Suggestions []string
}

func (e *FlagError) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "flag %q: %s", e.Flag, e.Kind.Description())
	if e.Value != "" {
		fmt.Fprintf(&b, " (value %q)", e.Value)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, ". Did you mean %s?", strings.Join(e.Suggestions, ", "))
	}
	return b.String()
}

func (e *FlagError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *FlagError of the same kind.
func (e *FlagError) Is(target error) bool {
	t, ok := target.(*FlagError)
	return ok && t.Kind == e.Kind
}

func newFlagError(kind FlagErrorKind, name string) *FlagError {
	return &FlagError{Kind: kind, Flag: name}
}
