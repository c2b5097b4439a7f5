package design

import (
	"fmt"
	"sort"
	"strings"

	"dario.cat/mergo"
	"github.com/lucasb-eyer/go-colorful"

	skyerrors "github.com/alexisbeaulieu97/skyui/pkg/errors"
)

// Config is the raw material a Theme is compiled from.
type Config struct {
	Tokens      Tokens
	Properties  map[string][]string
	Breakpoints map[string]float64
}

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	return Config{
		Tokens:      c.Tokens.Clone(),
		Properties:  cloneProperties(c.Properties),
		Breakpoints: cloneBreakpoints(c.Breakpoints),
	}
}

// Theme is a validated, read-only set of tokens, property aliases and
// breakpoints. Themes are safe for concurrent use.
type Theme struct {
	name        string
	tokens      Tokens
	properties  map[string][]string
	breakpoints map[string]float64
}

// New validates cfg and compiles it into a Theme. Invalid aliases, colour
// tokens or breakpoints are rejected here rather than at resolution time.
func New(name string, cfg Config) (*Theme, error) {
	cfg = cfg.Clone()
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &Theme{
		name:        name,
		tokens:      cfg.Tokens,
		properties:  cfg.Properties,
		breakpoints: cfg.Breakpoints,
	}, nil
}

func mustNew(name string, cfg Config) *Theme {
	theme, err := New(name, cfg)
	if err != nil {
		panic(fmt.Sprintf("design: built-in theme %s is invalid: %v", name, err))
	}
	return theme
}

// Light builds the light theme.
func Light() *Theme {
	return mustNew(string(ModeLight), Config{
		Tokens:      lightTokens(),
		Properties:  defaultProperties(),
		Breakpoints: defaultBreakpoints(),
	})
}

// Dark builds the dark theme: the light theme with its colour category replaced.
func Dark() *Theme {
	dark, err := Light().Derive(string(ModeDark), Config{
		Tokens: Tokens{CategoryColor: darkColors()},
	})
	if err != nil {
		panic(fmt.Sprintf("design: built-in theme dark is invalid: %v", err))
	}
	return dark
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.name
}

// Config returns a copy of the configuration the theme was built from.
func (t *Theme) Config() Config {
	return Config{
		Tokens:      t.tokens.Clone(),
		Properties:  cloneProperties(t.properties),
		Breakpoints: cloneBreakpoints(t.breakpoints),
	}
}

// Tokens returns a copy of the token set.
func (t *Theme) Tokens() Tokens {
	return t.tokens.Clone()
}

// Token resolves tokens[category][key].
func (t *Theme) Token(category Category, key string) (any, error) {
	return t.tokens.Lookup(category, key)
}

// Properties returns the property names an alias expands to.
func (t *Theme) Properties(alias string) ([]string, bool) {
	names, ok := t.properties[alias]
	if !ok {
		return nil, false
	}
	return append([]string(nil), names...), true
}

// Aliases lists the theme's aliases in sorted order.
func (t *Theme) Aliases() []string {
	out := make([]string, 0, len(t.properties))
	for alias := range t.properties {
		out = append(out, alias)
	}
	sort.Strings(out)
	return out
}

// Breakpoint returns the width threshold for a named breakpoint.
func (t *Theme) Breakpoint(name string) (float64, bool) {
	width, ok := t.breakpoints[name]
	return width, ok
}

// Derive returns a new theme that replaces whole token categories with those
// present in overrides, and adds or replaces aliases and breakpoints.
func (t *Theme) Derive(name string, overrides Config) (*Theme, error) {
	cfg := t.Config()
	for category, values := range overrides.Tokens {
		cfg.Tokens[category] = cloneValues(values)
	}
	for alias, names := range overrides.Properties {
		cfg.Properties[alias] = append([]string(nil), names...)
	}
	for bp, width := range overrides.Breakpoints {
		cfg.Breakpoints[bp] = width
	}
	return New(name, cfg)
}

// Merge returns a new theme with overrides applied key by key: individual
// tokens replace their counterparts while the rest of each category is kept.
func (t *Theme) Merge(name string, overrides Config) (*Theme, error) {
	cfg := t.Config()
	if cfg.Tokens == nil {
		cfg.Tokens = Tokens{}
	}
	for category, values := range overrides.Tokens {
		dst := cfg.Tokens[category]
		if dst == nil {
			dst = make(map[string]any, len(values))
		}
		if err := mergo.Merge(&dst, values, mergo.WithOverride); err != nil {
			return nil, skyerrors.NewValidationError("tokens."+string(category), "merge tokens", err)
		}
		cfg.Tokens[category] = dst
	}

	if cfg.Breakpoints == nil {
		cfg.Breakpoints = make(map[string]float64, len(overrides.Breakpoints))
	}
	if len(overrides.Breakpoints) > 0 {
		if err := mergo.Merge(&cfg.Breakpoints, overrides.Breakpoints, mergo.WithOverride); err != nil {
			return nil, skyerrors.NewValidationError("breakpoints", "merge breakpoints", err)
		}
	}

	if cfg.Properties == nil {
		cfg.Properties = make(map[string][]string, len(overrides.Properties))
	}
	for alias, names := range overrides.Properties {
		cfg.Properties[alias] = append([]string(nil), names...)
	}
	return New(name, cfg)
}

func validateConfig(cfg Config) error {
	if len(cfg.Tokens) == 0 {
		return skyerrors.NewValidationError("tokens", "theme declares no tokens", nil)
	}

	for _, category := range cfg.Tokens.Categories() {
		values := cfg.Tokens[category]
		for _, key := range sortedKeys(values) {
			if err := validateToken(category, key, values[key]); err != nil {
				return err
			}
		}
	}

	aliases := make([]string, 0, len(cfg.Properties))
	for alias := range cfg.Properties {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		field := "properties." + alias
		if strings.TrimSpace(alias) == "" {
			return skyerrors.NewValidationError("properties", "alias name is empty", nil)
		}
		if IsMacro(alias) {
			return skyerrors.NewValidationError(field, fmt.Sprintf("alias collides with macro %q", alias), nil)
		}
		if IsReservedKey(alias) {
			return skyerrors.NewValidationError(field, fmt.Sprintf("%q is a reserved document key", alias), nil)
		}
		names := cfg.Properties[alias]
		if len(names) == 0 {
			return skyerrors.NewValidationError(field, "alias must expand to at least one property", nil)
		}
		for _, name := range names {
			if strings.TrimSpace(name) == "" {
				return skyerrors.NewValidationError(field, "property name is empty", nil)
			}
		}
	}

	for name, width := range cfg.Breakpoints {
		if strings.TrimSpace(name) == "" {
			return skyerrors.NewValidationError("breakpoints", "breakpoint name is empty", nil)
		}
		if width <= 0 {
			return skyerrors.NewValidationError("breakpoints."+name, fmt.Sprintf("threshold must be positive, got %v", width), nil)
		}
	}

	return nil
}

func validateToken(category Category, key string, value any) error {
	field := fmt.Sprintf("tokens.%s.%s", category, key)
	switch category {
	case CategoryColor:
		s, ok := value.(string)
		if !ok {
			return skyerrors.NewValidationError(field, "colour token must be a string", nil)
		}
		if _, err := colorful.Hex(s); err != nil {
			return skyerrors.NewValidationError(field, fmt.Sprintf("invalid hex colour %q", s), err)
		}
	case CategorySpace, CategoryFontSize, CategoryLineHeight:
		if _, ok := toFloat(value); !ok {
			return skyerrors.NewValidationError(field, "token must be numeric", nil)
		}
	case CategoryFontFamily:
		if _, ok := value.(string); !ok {
			return skyerrors.NewValidationError(field, "font family must be a string", nil)
		}
	default:
		switch value.(type) {
		case string:
		default:
			if _, ok := toFloat(value); !ok {
				return skyerrors.NewValidationError(field, fmt.Sprintf("unsupported token value of type %T", value), nil)
			}
		}
	}
	return nil
}

func sortedKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
