package design

import "fmt"

// UnknownAliasError reports a shorthand key missing from the theme's property table.
// OrMacro is set when the key came from a document, where it names neither
// an alias nor a macro.
type UnknownAliasError struct {
	Alias   string
	OrMacro bool
}

func (e *UnknownAliasError) Error() string {
	if e.OrMacro {
		return fmt.Sprintf("unknown style alias or macro %q", e.Alias)
	}
	return fmt.Sprintf("unknown style alias %q", e.Alias)
}

// UnknownMacroError reports a macro name outside the macro set.
type UnknownMacroError struct {
	Macro string
}

func (e *UnknownMacroError) Error() string {
	return fmt.Sprintf("unknown style macro %q", e.Macro)
}

// UnknownTokenError reports a token reference with no matching value.
type UnknownTokenError struct {
	Category Category
	Key      string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token %q in category %q", e.Key, e.Category)
}

// UnknownBreakpointError reports a directive tagged with an undeclared breakpoint.
type UnknownBreakpointError struct {
	Breakpoint string
}

func (e *UnknownBreakpointError) Error() string {
	return fmt.Sprintf("unknown breakpoint %q", e.Breakpoint)
}

// InvalidTriggerError reports a macro invoked with a value outside its input domain.
type InvalidTriggerError struct {
	Macro    Macro
	Trigger  any
	Expected string
}

func (e *InvalidTriggerError) Error() string {
	return fmt.Sprintf("macro %q: invalid trigger %v (expected %s)", e.Macro, e.Trigger, e.Expected)
}

// DirectiveError locates a resolution failure within the directive list.
type DirectiveError struct {
	Index int
	Err   error
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("directive %d: %v", e.Index, e.Err)
}

// Unwrap exposes the underlying resolution error.
func (e *DirectiveError) Unwrap() error {
	return e.Err
}
