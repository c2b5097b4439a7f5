package design

import (
	"context"
	"fmt"
	"strings"
)

// Mode selects between the light and dark theme variants.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode parses a mode name, case-insensitively. An empty name selects light.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	default:
		return "", fmt.Errorf("unknown theme mode %q (expected light or dark)", s)
	}
}

// ForMode builds the theme for mode.
func ForMode(mode Mode) (*Theme, error) {
	switch mode {
	case ModeLight, "":
		return Light(), nil
	case ModeDark:
		return Dark(), nil
	default:
		return nil, fmt.Errorf("unknown theme mode %q", mode)
	}
}

type themeKey struct{}

// WithTheme attaches a theme to the context so view code can find it without
// package-level state.
func WithTheme(ctx context.Context, theme *Theme) context.Context {
	return context.WithValue(ctx, themeKey{}, theme)
}

// FromContext returns the theme stored by WithTheme.
func FromContext(ctx context.Context) (*Theme, bool) {
	if ctx == nil {
		return nil, false
	}
	theme, ok := ctx.Value(themeKey{}).(*Theme)
	return theme, ok && theme != nil
}
