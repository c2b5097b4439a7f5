package design

type directiveKind int

const (
	directiveLiteral directiveKind = iota
	directiveAlias
	directiveMacro
)

// Directive is one entry of a style request: a literal style, an alias with a
// value, or a macro with a trigger. Any directive may be gated on a breakpoint.
type Directive struct {
	kind       directiveKind
	style      Style
	alias      string
	macro      Macro
	value      any
	breakpoint string

	// bareKey marks an alias read from a document key, which could equally
	// have been meant as a macro.
	bareKey bool
}

// Literal passes a style object through unchanged, apart from token substitution.
func Literal(style Style) Directive {
	return Directive{kind: directiveLiteral, style: style.Clone()}
}

// Alias assigns value to every property the alias expands to.
func Alias(alias string, value any) Directive {
	return Directive{kind: directiveAlias, alias: alias, value: value}
}

// Use invokes a macro with a trigger value.
func Use(macro Macro, trigger any) Directive {
	return Directive{kind: directiveMacro, macro: macro, value: trigger}
}

// At gates the directive on the named breakpoint: it applies only when the
// viewport is at least that wide.
func (d Directive) At(breakpoint string) Directive {
	d.breakpoint = breakpoint
	return d
}

// Breakpoint returns the breakpoint tag, if any.
func (d Directive) Breakpoint() string {
	return d.breakpoint
}

// Resolve flattens directives into a single style. Directives apply in order
// and a later write to a property key replaces an earlier one, even when the
// two writes came from different aliases.
func Resolve(theme *Theme, directives []Directive, viewportWidth float64) (Style, error) {
	out := Style{}
	for i, d := range directives {
		fragment, err := theme.expand(d, viewportWidth)
		if err != nil {
			return nil, &DirectiveError{Index: i, Err: err}
		}
		for key, value := range fragment {
			out[key] = value
		}
	}
	return out, nil
}

// Resolve is shorthand for Resolve(t, directives, viewportWidth).
func (t *Theme) Resolve(viewportWidth float64, directives ...Directive) (Style, error) {
	return Resolve(t, directives, viewportWidth)
}

func (t *Theme) expand(d Directive, viewportWidth float64) (Style, error) {
	if d.breakpoint != "" {
		threshold, ok := t.breakpoints[d.breakpoint]
		if !ok {
			return nil, &UnknownBreakpointError{Breakpoint: d.breakpoint}
		}
		if viewportWidth < threshold {
			return nil, nil
		}
	}

	switch d.kind {
	case directiveAlias:
		names, ok := t.properties[d.alias]
		if !ok {
			return nil, &UnknownAliasError{Alias: d.alias, OrMacro: d.bareKey}
		}
		value, err := t.substitute(d.value)
		if err != nil {
			return nil, err
		}
		fragment := make(Style, len(names))
		for _, name := range names {
			fragment[name] = value
		}
		return fragment, nil

	case directiveMacro:
		fn, ok := macroTable[d.macro]
		if !ok {
			return nil, &UnknownMacroError{Macro: string(d.macro)}
		}
		trigger, err := t.substitute(d.value)
		if err != nil {
			return nil, err
		}
		return fn(trigger, t.tokens)

	default:
		fragment := make(Style, len(d.style))
		for key, value := range d.style {
			resolved, err := t.substitute(value)
			if err != nil {
				return nil, err
			}
			fragment[key] = resolved
		}
		return fragment, nil
	}
}

func (t *Theme) substitute(value any) (any, error) {
	switch ref := value.(type) {
	case TokenRef:
		return t.tokens.Lookup(ref.Category, ref.Key)
	case *TokenRef:
		if ref == nil {
			return nil, nil
		}
		return t.tokens.Lookup(ref.Category, ref.Key)
	default:
		return value, nil
	}
}
